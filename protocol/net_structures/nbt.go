package net_structures

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
)

// NBT wraps an opaque, network-format NBT compound: the protocol treats its contents
// as a black box (registry codec, height maps, block entity payloads) and only needs
// to round-trip it faithfully, so Data is whatever Go value the caller encoded with it.
type NBT struct {
	Data any
}

// NewNBT wraps an arbitrary value as an NBT compound.
func NewNBT(data any) NBT {
	return NBT{Data: data}
}

// NewEmptyNBT returns the TAG_End sentinel (encodes as a single 0x00 byte).
func NewEmptyNBT() NBT {
	return NBT{Data: nil}
}

// IsEmpty reports whether the NBT value is the TAG_End sentinel.
func (n NBT) IsEmpty() bool {
	return n.Data == nil
}

// Encode writes the NBT value to w in network format (no root name).
func (n NBT) Encode(w io.Writer) error {
	if n.Data == nil {
		_, err := w.Write([]byte{0x00})
		return err
	}
	enc := nbt.NewEncoder(w)
	enc.NetworkFormat(true)
	if err := enc.Encode(n.Data, ""); err != nil {
		return fmt.Errorf("encode NBT: %w", err)
	}
	return nil
}

// DecodeNBTInto decodes an NBT compound from r into dest, a pointer to the Go
// structure the caller expects the compound to match.
func DecodeNBTInto(r io.Reader, dest any) error {
	dec := nbt.NewDecoder(r)
	dec.NetworkFormat(true)
	if _, err := dec.Decode(dest); err != nil {
		return fmt.Errorf("decode NBT: %w", err)
	}
	return nil
}

// ReadNBT decodes an NBT compound from buf into dest (as DecodeNBTInto does) and
// returns dest wrapped as an NBT value. NBT compounds are length-implicit (no outer
// VarInt prefix), so the raw bytes the compound occupied are not kept.
func ReadNBT(buf *PacketBuffer, dest any) (NBT, error) {
	if err := DecodeNBTInto(buf.Reader(), dest); err != nil {
		return NBT{}, err
	}
	return NBT{Data: dest}, nil
}

// WriteNBT writes an NBT value to buf.
func WriteNBT(buf *PacketBuffer, n NBT) error {
	return n.Encode(buf.Writer())
}

// EncodedNBTBytes renders an NBT value to a standalone byte slice, useful when a
// packet needs to know the compound's encoded length up front.
func EncodedNBTBytes(n NBT) ([]byte, error) {
	var b bytes.Buffer
	if err := n.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
