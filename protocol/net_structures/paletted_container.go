package net_structures

import "fmt"

// PalettedContainer is a chunk section's block-state or biome storage: a bit width
// per entry, a palette whose shape depends on that width, and a packed data array.
//
// Only the single-valued form (BitsPerEntry == 0, the whole section/biome is one
// value) is implemented; the indirect and direct palette forms are not (see
// DESIGN.md). A section or biome storage using those forms fails to decode here
// with a named error rather than silently producing wrong data.
type PalettedContainer struct {
	BitsPerEntry Uint8
	Value        VarInt
	DataArray    []int64
}

// SingleValued builds a PalettedContainer whose whole container is one value
// (BitsPerEntry 0), e.g. an all-air block-state section or a single-biome section.
func SingleValued(value VarInt) PalettedContainer {
	return PalettedContainer{BitsPerEntry: 0, Value: value}
}

// Decode reads a PalettedContainer from buf.
func (c *PalettedContainer) Decode(buf *PacketBuffer) error {
	bits, err := buf.ReadUint8()
	if err != nil {
		return fmt.Errorf("decode PalettedContainer.BitsPerEntry: %w", err)
	}
	if bits != 0 {
		return fmt.Errorf("decode PalettedContainer: bits_per_entry %d (indirect/direct palette) not supported", bits)
	}
	value, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("decode PalettedContainer.Value: %w", err)
	}
	n, err := buf.ReadVarInt()
	if err != nil {
		return fmt.Errorf("decode PalettedContainer.DataArray length: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("decode PalettedContainer: negative data array length %d", n)
	}
	data := make([]int64, n)
	for i := range data {
		v, err := buf.ReadInt64()
		if err != nil {
			return fmt.Errorf("decode PalettedContainer.DataArray[%d]: %w", i, err)
		}
		data[i] = int64(v)
	}
	c.BitsPerEntry, c.Value, c.DataArray = bits, value, data
	return nil
}

// Encode writes the PalettedContainer to buf.
func (c PalettedContainer) Encode(buf *PacketBuffer) error {
	if c.BitsPerEntry != 0 {
		return fmt.Errorf("encode PalettedContainer: bits_per_entry %d (indirect/direct palette) not supported", c.BitsPerEntry)
	}
	if err := buf.WriteUint8(c.BitsPerEntry); err != nil {
		return fmt.Errorf("encode PalettedContainer.BitsPerEntry: %w", err)
	}
	if err := buf.WriteVarInt(c.Value); err != nil {
		return fmt.Errorf("encode PalettedContainer.Value: %w", err)
	}
	if err := buf.WriteVarInt(VarInt(len(c.DataArray))); err != nil {
		return fmt.Errorf("encode PalettedContainer.DataArray length: %w", err)
	}
	for i, v := range c.DataArray {
		if err := buf.WriteInt64(Int64(v)); err != nil {
			return fmt.Errorf("encode PalettedContainer.DataArray[%d]: %w", i, err)
		}
	}
	return nil
}

// ChunkSection is one 16x16x16 vertical slice of a chunk column.
type ChunkSection struct {
	BlockCount  Int16
	BlockStates PalettedContainer
	Biomes      PalettedContainer
}

// Decode reads a ChunkSection from buf.
func (s *ChunkSection) Decode(buf *PacketBuffer) error {
	count, err := buf.ReadInt16()
	if err != nil {
		return fmt.Errorf("decode ChunkSection.BlockCount: %w", err)
	}
	var blocks, biomes PalettedContainer
	if err := blocks.Decode(buf); err != nil {
		return fmt.Errorf("decode ChunkSection.BlockStates: %w", err)
	}
	if err := biomes.Decode(buf); err != nil {
		return fmt.Errorf("decode ChunkSection.Biomes: %w", err)
	}
	s.BlockCount, s.BlockStates, s.Biomes = count, blocks, biomes
	return nil
}

// Encode writes the ChunkSection to buf.
func (s ChunkSection) Encode(buf *PacketBuffer) error {
	if err := buf.WriteInt16(s.BlockCount); err != nil {
		return fmt.Errorf("encode ChunkSection.BlockCount: %w", err)
	}
	if err := s.BlockStates.Encode(buf); err != nil {
		return fmt.Errorf("encode ChunkSection.BlockStates: %w", err)
	}
	if err := s.Biomes.Encode(buf); err != nil {
		return fmt.Errorf("encode ChunkSection.Biomes: %w", err)
	}
	return nil
}

// DecodeChunkSection reads a single ChunkSection, for use as an ElementDecoder with
// DecodeArrayInBytes.
func DecodeChunkSection(buf *PacketBuffer) (ChunkSection, error) {
	var s ChunkSection
	err := s.Decode(buf)
	return s, err
}

// EncodeChunkSection writes a single ChunkSection, for use as an ElementEncoder with
// EncodeArrayInBytes.
func EncodeChunkSection(buf *PacketBuffer, s ChunkSection) error {
	return s.Encode(buf)
}
