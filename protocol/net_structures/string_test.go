package net_structures

import (
	"bytes"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := String("hello").Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x05, 0x68, 0x65, 0x6C, 0x6C, 0x6F}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("Encode(\"hello\") = % X, want % X", buf.Bytes(), want)
	}
	got, err := DecodeString(bytes.NewReader(want), 32767)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if got != "hello" {
		t.Fatalf("DecodeString = %q, want %q", got, "hello")
	}
}

func TestDecodeStringRejectsInvalidUTF8(t *testing.T) {
	// A declared length of 3 followed by a truncated multi-byte sequence: 0xE2 0x82
	// opens a three-byte rune that 0x41 cannot close.
	malformed := []byte{0x03, 0xE2, 0x82, 0x41}
	if _, err := DecodeString(bytes.NewReader(malformed), 32767); err == nil {
		t.Fatal("expected error decoding invalid UTF-8 bytes")
	}
	lone := []byte{0x01, 0xFF}
	if _, err := DecodeString(bytes.NewReader(lone), 32767); err == nil {
		t.Fatal("expected error decoding a lone 0xFF byte")
	}
}

func TestStringRejectsOverLongRuneCount(t *testing.T) {
	var buf bytes.Buffer
	if err := String("hello").Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := DecodeString(bytes.NewReader(buf.Bytes()), 4); err == nil {
		t.Fatal("expected error decoding a string exceeding maxLen runes")
	}
}

func TestIdentifierNamespaceAndPath(t *testing.T) {
	id := Identifier("minecraft:overworld")
	if id.Namespace() != "minecraft" {
		t.Errorf("Namespace() = %q, want %q", id.Namespace(), "minecraft")
	}
	if id.Path() != "overworld" {
		t.Errorf("Path() = %q, want %q", id.Path(), "overworld")
	}
	bare := Identifier("overworld")
	if bare.Namespace() != "minecraft" {
		t.Errorf("Namespace() of bare identifier = %q, want default %q", bare.Namespace(), "minecraft")
	}
	if bare.Path() != "overworld" {
		t.Errorf("Path() of bare identifier = %q, want %q", bare.Path(), "overworld")
	}
}
