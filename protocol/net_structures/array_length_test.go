package net_structures

import (
	"bytes"
	"testing"
)

func readU8(buf *PacketBuffer) (Uint8, error) { return buf.ReadUint8() }
func writeU8(buf *PacketBuffer, v Uint8) error { return buf.WriteUint8(v) }

func TestVarIntLengthByteArrayRoundTrip(t *testing.T) {
	buf := NewWriter()
	if err := buf.WriteByteArray([]byte{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("WriteByteArray: %v", err)
	}
	want := []byte{0x05, 1, 2, 3, 4, 5}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("WriteByteArray([1..5]) = % X, want % X", buf.Bytes(), want)
	}
	got, err := NewReader(want).ReadByteArray(0)
	if err != nil {
		t.Fatalf("ReadByteArray: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("ReadByteArray = % X, want % X", got, []byte{1, 2, 3, 4, 5})
	}
}

func TestVarIntLengthByteArrayTruncatedFails(t *testing.T) {
	truncated := []byte{0x05, 1, 2, 3, 4}
	if _, err := NewReader(truncated).ReadByteArray(0); err == nil {
		t.Fatal("expected error decoding a byte array whose declared length exceeds the available bytes")
	}
}

func TestArrayInBytesCrossingBudgetFails(t *testing.T) {
	// A declared byte size of 3 with two 2-byte elements (VarInt 128, 128) crosses
	// the boundary partway through the second element.
	raw := []byte{0x03, 0x80, 0x01, 0x80}
	buf := NewReader(raw)
	decodeVarInt := func(b *PacketBuffer) (VarInt, error) { return b.ReadVarInt() }
	if _, err := DecodeArrayInBytes(buf, decodeVarInt); err == nil {
		t.Fatal("expected error when an element decode crosses the byte budget")
	}
}

func TestArrayInBytesRoundTrip(t *testing.T) {
	items := []Uint8{10, 20, 30}
	buf := NewWriter()
	if err := EncodeArrayInBytes(buf, items, writeU8); err != nil {
		t.Fatalf("EncodeArrayInBytes: %v", err)
	}
	got, err := DecodeArrayInBytes(NewReader(buf.Bytes()), readU8)
	if err != nil {
		t.Fatalf("DecodeArrayInBytes: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("DecodeArrayInBytes returned %d elements, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], items[i])
		}
	}
}
