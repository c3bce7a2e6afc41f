package net_structures

import (
	"bytes"
	"testing"
)

func TestVarIntTable(t *testing.T) {
	cases := []struct {
		value VarInt
		bytes []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xFF, 0x01}},
		{25565, []byte{0xDD, 0xC7, 0x01}},
		{2097151, []byte{0xFF, 0xFF, 0x7F}},
		{2147483647, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x07}},
		{-1, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{-2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}
	for _, c := range cases {
		got, err := c.value.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", c.value, err)
		}
		if !bytes.Equal(got, c.bytes) {
			t.Errorf("ToBytes(%d) = % X, want % X", c.value, got, c.bytes)
		}
		decoded, err := DecodeVarInt(bytes.NewReader(c.bytes))
		if err != nil {
			t.Fatalf("DecodeVarInt(% X): %v", c.bytes, err)
		}
		if decoded != c.value {
			t.Errorf("DecodeVarInt(% X) = %d, want %d", c.bytes, decoded, c.value)
		}
	}
}

func TestVarIntTooBig(t *testing.T) {
	overlong := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	if _, err := DecodeVarInt(bytes.NewReader(overlong)); err == nil {
		t.Fatal("expected error decoding an oversized VarInt")
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []VarLong{0, 1, -1, 1 << 40, -(1 << 40)}
	for _, v := range values {
		b, err := v.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes(%d): %v", v, err)
		}
		got, err := DecodeVarLong(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("DecodeVarLong(% X): %v", b, err)
		}
		if got != v {
			t.Errorf("round trip %d -> % X -> %d", v, b, got)
		}
	}
}
