package net_structures

import (
	"bytes"
	"testing"
)

func TestPrefixedOptionalUint8RoundTrip(t *testing.T) {
	some := Some(Uint8(5))
	buf := NewWriter()
	if err := some.EncodeWith(buf, writeU8); err != nil {
		t.Fatalf("EncodeWith(Some): %v", err)
	}
	if want := []byte{0x01, 0x05}; !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("EncodeWith(Some(5)) = % X, want % X", buf.Bytes(), want)
	}
	var decodedSome PrefixedOptional[Uint8]
	if err := decodedSome.DecodeWith(NewReader(buf.Bytes()), readU8); err != nil {
		t.Fatalf("DecodeWith(Some bytes): %v", err)
	}
	if v, ok := decodedSome.Get(); !ok || v != 5 {
		t.Fatalf("decoded Some = (%v, %v), want (5, true)", v, ok)
	}

	none := None[Uint8]()
	buf2 := NewWriter()
	if err := none.EncodeWith(buf2, writeU8); err != nil {
		t.Fatalf("EncodeWith(None): %v", err)
	}
	if want := []byte{0x00}; !bytes.Equal(buf2.Bytes(), want) {
		t.Fatalf("EncodeWith(None) = % X, want % X", buf2.Bytes(), want)
	}
	var decodedNone PrefixedOptional[Uint8]
	if err := decodedNone.DecodeWith(NewReader(buf2.Bytes()), readU8); err != nil {
		t.Fatalf("DecodeWith(None bytes): %v", err)
	}
	if _, ok := decodedNone.Get(); ok {
		t.Fatal("decoded None reported present")
	}
}

func TestPrefixedOptionalInvalidPresenceByteFails(t *testing.T) {
	var o PrefixedOptional[Uint8]
	if err := o.DecodeWith(NewReader([]byte{0x02}), readU8); err == nil {
		t.Fatal("expected error decoding presence byte 0x02")
	}
}

func TestPrefixedArrayRoundTrip(t *testing.T) {
	items := PrefixedArray[Uint8]{1, 2, 3}
	buf := NewWriter()
	if err := items.EncodeWith(buf, writeU8); err != nil {
		t.Fatalf("EncodeWith: %v", err)
	}
	var decoded PrefixedArray[Uint8]
	if err := decoded.DecodeWith(NewReader(buf.Bytes()), readU8); err != nil {
		t.Fatalf("DecodeWith: %v", err)
	}
	if decoded.Len() != 3 {
		t.Fatalf("decoded.Len() = %d, want 3", decoded.Len())
	}
}

func TestBitSetGetSetClear(t *testing.T) {
	bs := NewBitSet(128)
	bs.Set(5)
	bs.Set(130 % 128)
	if !bs.Get(5) {
		t.Error("expected bit 5 set")
	}
	bs.Clear(5)
	if bs.Get(5) {
		t.Error("expected bit 5 cleared")
	}
}
