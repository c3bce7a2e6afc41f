package net_structures

import (
	"fmt"
	"io"
)

// DecodeArrayInBytes reads Array<VarIntLengthInBytes,T>: a VarInt byte-size prefix
// followed by elements decoded until exactly that many bytes have been consumed. If
// the final element's decode would read past the declared byte budget, the
// underlying read fails and that failure is surfaced as a malformed frame.
func DecodeArrayInBytes[T any](buf *PacketBuffer, decode ElementDecoder[T]) ([]T, error) {
	byteLen, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("decode Array<VarIntLengthInBytes> size: %w", err)
	}
	if byteLen < 0 {
		return nil, fmt.Errorf("decode Array<VarIntLengthInBytes>: negative size %d", byteLen)
	}
	lr := &io.LimitedReader{R: buf.reader, N: int64(byteLen)}
	sub := NewReaderFrom(lr)
	var out []T
	for lr.N > 0 {
		v, err := decode(sub)
		if err != nil {
			return nil, fmt.Errorf("decode Array<VarIntLengthInBytes> element: %w", err)
		}
		out = append(out, v)
	}
	if lr.N != 0 {
		return nil, fmt.Errorf("decode Array<VarIntLengthInBytes>: element crossed byte budget")
	}
	return out, nil
}

// EncodeArrayInBytes writes Array<VarIntLengthInBytes,T>: the encoded byte size of
// the elements as a VarInt prefix, followed by the elements themselves.
func EncodeArrayInBytes[T any](buf *PacketBuffer, items []T, encode ElementEncoder[T]) error {
	tmp := NewWriter()
	for i, v := range items {
		if err := encode(tmp, v); err != nil {
			return fmt.Errorf("encode Array<VarIntLengthInBytes> element %d: %w", i, err)
		}
	}
	if err := buf.WriteVarInt(VarInt(tmp.Len())); err != nil {
		return fmt.Errorf("encode Array<VarIntLengthInBytes> size: %w", err)
	}
	if _, err := buf.Write(tmp.Bytes()); err != nil {
		return fmt.Errorf("encode Array<VarIntLengthInBytes> body: %w", err)
	}
	return nil
}

// DecodeFixedLengthArray reads Array<FixedLength<N>,T>: no prefix, exactly n elements.
func DecodeFixedLengthArray[T any](buf *PacketBuffer, n int, decode ElementDecoder[T]) ([]T, error) {
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := decode(buf)
		if err != nil {
			return nil, fmt.Errorf("decode Array<FixedLength<%d>> element %d: %w", n, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// EncodeFixedLengthArray writes Array<FixedLength<N>,T>: no prefix, every element
// in order. The caller is responsible for ensuring len(items) == N.
func EncodeFixedLengthArray[T any](buf *PacketBuffer, items []T, encode ElementEncoder[T]) error {
	for i, v := range items {
		if err := encode(buf, v); err != nil {
			return fmt.Errorf("encode Array<FixedLength> element %d: %w", i, err)
		}
	}
	return nil
}
