package net_structures

import (
	"fmt"
)

// ElementDecoder decodes a single element of type T from buf.
type ElementDecoder[T any] func(buf *PacketBuffer) (T, error)

// ElementEncoder encodes a single element of type T to buf.
type ElementEncoder[T any] func(buf *PacketBuffer, v T) error

// PrefixedArray is Array<VarIntLength,T>: a VarInt element count followed by that
// many elements.
type PrefixedArray[T any] []T

// DecodeWith reads a VarInt count then that many elements via decode.
func (a *PrefixedArray[T]) DecodeWith(buf *PacketBuffer, decode ElementDecoder[T]) error {
	n, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("decode PrefixedArray length: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("decode PrefixedArray: negative length %d", n)
	}
	out := make([]T, 0, n)
	for i := VarInt(0); i < n; i++ {
		v, err := decode(buf)
		if err != nil {
			return fmt.Errorf("decode PrefixedArray element %d: %w", i, err)
		}
		out = append(out, v)
	}
	*a = out
	return nil
}

// EncodeWith writes the VarInt count then each element via encode.
func (a PrefixedArray[T]) EncodeWith(buf *PacketBuffer, encode ElementEncoder[T]) error {
	if err := buf.WriteVarInt(VarInt(len(a))); err != nil {
		return fmt.Errorf("encode PrefixedArray length: %w", err)
	}
	for i, v := range a {
		if err := encode(buf, v); err != nil {
			return fmt.Errorf("encode PrefixedArray element %d: %w", i, err)
		}
	}
	return nil
}

// Len reports the element count.
func (a PrefixedArray[T]) Len() int { return len(a) }

// PrefixedOptional is BoolConditional<T>: a boolean presence flag followed by T
// only when present.
type PrefixedOptional[T any] struct {
	Present bool
	Value   T
}

// Some wraps v as a present PrefixedOptional.
func Some[T any](v T) PrefixedOptional[T] {
	return PrefixedOptional[T]{Present: true, Value: v}
}

// None builds an absent PrefixedOptional.
func None[T any]() PrefixedOptional[T] {
	return PrefixedOptional[T]{}
}

// DecodeWith reads the presence flag and, if set, the value via decode.
func (o *PrefixedOptional[T]) DecodeWith(buf *PacketBuffer, decode ElementDecoder[T]) error {
	present, err := buf.ReadBool()
	if err != nil {
		return fmt.Errorf("decode PrefixedOptional presence: %w", err)
	}
	o.Present = bool(present)
	if !o.Present {
		var zero T
		o.Value = zero
		return nil
	}
	v, err := decode(buf)
	if err != nil {
		return fmt.Errorf("decode PrefixedOptional value: %w", err)
	}
	o.Value = v
	return nil
}

// EncodeWith writes the presence flag and, if set, the value via encode.
func (o PrefixedOptional[T]) EncodeWith(buf *PacketBuffer, encode ElementEncoder[T]) error {
	if err := buf.WriteBool(Boolean(o.Present)); err != nil {
		return fmt.Errorf("encode PrefixedOptional presence: %w", err)
	}
	if !o.Present {
		return nil
	}
	if err := encode(buf, o.Value); err != nil {
		return fmt.Errorf("encode PrefixedOptional value: %w", err)
	}
	return nil
}

// Get returns the value and whether it was present.
func (o PrefixedOptional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// GetOrDefault returns the value if present, else def.
func (o PrefixedOptional[T]) GetOrDefault(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

// BitSet is a VarInt-length-prefixed array of int64s used as a dynamically sized
// bitflag set (e.g. an enabled-features mask indexed by an external registry).
type BitSet struct {
	data []int64
}

// NewBitSet allocates a BitSet with enough longs to hold capacity bits.
func NewBitSet(capacity int) BitSet {
	return BitSet{data: make([]int64, (capacity+63)/64)}
}

// BitSetFromLongs wraps an existing long slice as a BitSet.
func BitSetFromLongs(longs []int64) BitSet {
	return BitSet{data: longs}
}

// Longs returns the backing int64 slice.
func (s BitSet) Longs() []int64 { return s.data }

// Get reports whether bit i is set.
func (s BitSet) Get(i int) bool {
	word := i / 64
	if word < 0 || word >= len(s.data) {
		return false
	}
	return s.data[word]&(int64(1)<<uint(i%64)) != 0
}

// Set sets bit i, growing the backing storage if needed.
func (s *BitSet) Set(i int) {
	word := i / 64
	for word >= len(s.data) {
		s.data = append(s.data, 0)
	}
	s.data[word] |= int64(1) << uint(i%64)
}

// Clear clears bit i.
func (s *BitSet) Clear(i int) {
	word := i / 64
	if word < 0 || word >= len(s.data) {
		return
	}
	s.data[word] &^= int64(1) << uint(i%64)
}

// Decode reads a BitSet from buf: a VarInt long-count then that many Int64s.
func (s *BitSet) Decode(buf *PacketBuffer) error {
	n, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("decode BitSet length: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("decode BitSet: negative length %d", n)
	}
	data := make([]int64, n)
	for i := range data {
		v, err := buf.ReadInt64()
		if err != nil {
			return fmt.Errorf("decode BitSet word %d: %w", i, err)
		}
		data[i] = int64(v)
	}
	s.data = data
	return nil
}

// Encode writes the BitSet to buf.
func (s BitSet) Encode(buf *PacketBuffer) error {
	if err := buf.WriteVarInt(VarInt(len(s.data))); err != nil {
		return fmt.Errorf("encode BitSet length: %w", err)
	}
	for i, w := range s.data {
		if err := buf.WriteInt64(Int64(w)); err != nil {
			return fmt.Errorf("encode BitSet word %d: %w", i, err)
		}
	}
	return nil
}

// FixedBitSet is a fixed-size bitflag set occupying exactly ceil(size/8) bytes, with
// no length prefix.
type FixedBitSet struct {
	data []byte
	size int
}

// NewFixedBitSet allocates a FixedBitSet of size bits.
func NewFixedBitSet(size int) FixedBitSet {
	return FixedBitSet{data: make([]byte, (size+7)/8), size: size}
}

// Get reports whether bit i is set.
func (s FixedBitSet) Get(i int) bool {
	idx := i / 8
	if idx < 0 || idx >= len(s.data) {
		return false
	}
	return s.data[idx]&(1<<uint(i%8)) != 0
}

// Set sets bit i.
func (s *FixedBitSet) Set(i int) {
	idx := i / 8
	if idx < 0 || idx >= len(s.data) {
		return
	}
	s.data[idx] |= 1 << uint(i%8)
}

// Clear clears bit i.
func (s *FixedBitSet) Clear(i int) {
	idx := i / 8
	if idx < 0 || idx >= len(s.data) {
		return
	}
	s.data[idx] &^= 1 << uint(i%8)
}

// Decode reads exactly ceil(size/8) bytes from buf into the FixedBitSet.
func (s *FixedBitSet) Decode(buf *PacketBuffer, size int) error {
	n := (size + 7) / 8
	data, err := buf.ReadFixedByteArray(n)
	if err != nil {
		return fmt.Errorf("decode FixedBitSet: %w", err)
	}
	s.data = data
	s.size = size
	return nil
}

// Encode writes the FixedBitSet's backing bytes to buf.
func (s FixedBitSet) Encode(buf *PacketBuffer) error {
	return buf.WriteFixedByteArray(s.data)
}
