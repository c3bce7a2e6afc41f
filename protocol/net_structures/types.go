// Package net_structures provides the primitive value domain for the Minecraft Java
// Edition 1.20.1 (protocol 763) wire format: fixed-width integers, floats, booleans,
// VarInt/VarLong, length-prefixed strings, UUIDs, bit-packed positions, angles, and the
// parametric combinators (optional, array, bitflag set) built on top of them.
//
// Every type here knows how to Encode itself to an io.Writer and how to be decoded from
// an io.Reader; nothing in this package relies on reflection.
//
// https://minecraft.wiki/w/Java_Edition_protocol/Data_types
package net_structures

// ByteArray is a raw byte sequence used throughout the protocol.
type ByteArray = []byte
