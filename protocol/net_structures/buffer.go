package net_structures

import (
	"bytes"
	"fmt"
	"io"
)

// PacketBuffer wraps either an io.Reader or an io.Writer (never both at once in
// practice) and exposes one typed Read/Write method per primitive, so that packet
// Read/Write implementations read as a flat sequence of field accesses instead of
// hand-rolled byte arithmetic.
type PacketBuffer struct {
	reader io.Reader
	writer io.Writer
	buf    *bytes.Buffer
}

// NewReader builds a PacketBuffer over an in-memory byte slice.
func NewReader(data []byte) *PacketBuffer {
	return &PacketBuffer{reader: bytes.NewReader(data)}
}

// NewReaderFrom builds a PacketBuffer reading from an arbitrary io.Reader.
func NewReaderFrom(r io.Reader) *PacketBuffer {
	return &PacketBuffer{reader: r}
}

// NewWriter builds a PacketBuffer that accumulates into an internal buffer,
// retrievable with Bytes.
func NewWriter() *PacketBuffer {
	buf := &bytes.Buffer{}
	return &PacketBuffer{writer: buf, buf: buf}
}

// NewWriterTo builds a PacketBuffer writing directly to an arbitrary io.Writer.
func NewWriterTo(w io.Writer) *PacketBuffer {
	return &PacketBuffer{writer: w}
}

// Bytes returns the accumulated bytes of a PacketBuffer created with NewWriter.
func (b *PacketBuffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf.Bytes()
}

// Len reports the number of accumulated bytes, for a PacketBuffer created with NewWriter.
func (b *PacketBuffer) Len() int {
	if b.buf == nil {
		return 0
	}
	return b.buf.Len()
}

// Reader exposes the underlying io.Reader, for components that need raw access
// (e.g. opaque NBT decoding).
func (b *PacketBuffer) Reader() io.Reader { return b.reader }

// Writer exposes the underlying io.Writer.
func (b *PacketBuffer) Writer() io.Writer { return b.writer }

func (b *PacketBuffer) Read(p []byte) (int, error)  { return b.reader.Read(p) }
func (b *PacketBuffer) Write(p []byte) (int, error) { return b.writer.Write(p) }

func (b *PacketBuffer) ReadByte() (byte, error) {
	var one [1]byte
	if _, err := io.ReadFull(b.reader, one[:]); err != nil {
		return 0, err
	}
	return one[0], nil
}

func (b *PacketBuffer) WriteByte(c byte) error {
	_, err := b.writer.Write([]byte{c})
	return err
}

func (b *PacketBuffer) ReadVarInt() (VarInt, error)   { return DecodeVarInt(b.reader) }
func (b *PacketBuffer) WriteVarInt(v VarInt) error    { return v.Encode(b.writer) }
func (b *PacketBuffer) ReadVarLong() (VarLong, error) { return DecodeVarLong(b.reader) }
func (b *PacketBuffer) WriteVarLong(v VarLong) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadBool() (Boolean, error) { return DecodeBoolean(b.reader) }
func (b *PacketBuffer) WriteBool(v Boolean) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadInt8() (Int8, error) { return DecodeInt8(b.reader) }
func (b *PacketBuffer) WriteInt8(v Int8) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadUint8() (Uint8, error) { return DecodeUint8(b.reader) }
func (b *PacketBuffer) WriteUint8(v Uint8) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadInt16() (Int16, error) { return DecodeInt16(b.reader) }
func (b *PacketBuffer) WriteInt16(v Int16) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadUint16() (Uint16, error) { return DecodeUint16(b.reader) }
func (b *PacketBuffer) WriteUint16(v Uint16) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadInt32() (Int32, error) { return DecodeInt32(b.reader) }
func (b *PacketBuffer) WriteInt32(v Int32) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadInt64() (Int64, error) { return DecodeInt64(b.reader) }
func (b *PacketBuffer) WriteInt64(v Int64) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadUint64() (Uint64, error) { return DecodeUint64(b.reader) }
func (b *PacketBuffer) WriteUint64(v Uint64) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadFloat32() (Float32, error) { return DecodeFloat32(b.reader) }
func (b *PacketBuffer) WriteFloat32(v Float32) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadFloat64() (Float64, error) { return DecodeFloat64(b.reader) }
func (b *PacketBuffer) WriteFloat64(v Float64) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadString(maxLen int) (String, error) { return DecodeString(b.reader, maxLen) }
func (b *PacketBuffer) WriteString(v String) error            { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadIdentifier() (Identifier, error) { return DecodeIdentifier(b.reader) }
func (b *PacketBuffer) WriteIdentifier(v Identifier) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadUUID() (UUID, error) { return DecodeUUID(b.reader) }
func (b *PacketBuffer) WriteUUID(v UUID) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadAngle() (Angle, error) { return DecodeAngle(b.reader) }
func (b *PacketBuffer) WriteAngle(v Angle) error  { return v.Encode(b.writer) }

func (b *PacketBuffer) ReadPosition() (Position, error) { return DecodePosition(b.reader) }
func (b *PacketBuffer) WritePosition(v Position) error  { return v.Encode(b.writer) }

// ReadByteArray reads a VarInt-length-prefixed byte array (Array<VarIntLength,u8>),
// rejecting a declared length over maxLen.
func (b *PacketBuffer) ReadByteArray(maxLen int) (ByteArray, error) {
	n, err := DecodeVarInt(b.reader)
	if err != nil {
		return nil, fmt.Errorf("read ByteArray length: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("read ByteArray: negative length %d", n)
	}
	if maxLen > 0 && int(n) > maxLen {
		return nil, fmt.Errorf("read ByteArray: length %d exceeds maximum %d", n, maxLen)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(b.reader, out); err != nil {
		return nil, fmt.Errorf("read ByteArray bytes: %w", err)
	}
	return out, nil
}

// WriteByteArray writes v as a VarInt-length-prefixed byte array.
func (b *PacketBuffer) WriteByteArray(v ByteArray) error {
	if err := VarInt(len(v)).Encode(b.writer); err != nil {
		return fmt.Errorf("write ByteArray length: %w", err)
	}
	_, err := b.writer.Write(v)
	return err
}

// ReadFixedByteArray reads exactly n bytes with no length prefix (Array<FixedLength<N>,u8>).
func (b *PacketBuffer) ReadFixedByteArray(n int) (ByteArray, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(b.reader, out); err != nil {
		return nil, fmt.Errorf("read FixedByteArray: %w", err)
	}
	return out, nil
}

// WriteFixedByteArray writes v with no length prefix.
func (b *PacketBuffer) WriteFixedByteArray(v ByteArray) error {
	_, err := b.writer.Write(v)
	return err
}

// ReadRemainder reads every remaining byte of the underlying reader
// (Array<PacketInferredInBytes,u8>) — valid only for a tail field, since the frame
// length itself is the implicit terminator.
func (b *PacketBuffer) ReadRemainder() (ByteArray, error) {
	out, err := io.ReadAll(b.reader)
	if err != nil {
		return nil, fmt.Errorf("read remainder: %w", err)
	}
	return out, nil
}

// WriteRemainder writes v verbatim with no length prefix, for a PacketInferredInBytes
// tail field.
func (b *PacketBuffer) WriteRemainder(v ByteArray) error {
	_, err := b.writer.Write(v)
	return err
}
