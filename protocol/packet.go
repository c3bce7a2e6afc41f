package protocol

import (
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// Packet is implemented by every entry in the packet catalog (protocol/packets).
// Encode/Decode operate on a packet's body only; id and framing are handled by
// EncodePacketBody/WriteFrame (wire.go) and Connection.
type Packet interface {
	// ID is the packet's numeric id within its phase and direction.
	ID() ns.VarInt
	// Encode writes the packet's fields, in declaration order, to buf.
	Encode(buf *ns.PacketBuffer) error
}

// ClientBoundPacket additionally declares the single Phase in which the packet is
// legal to send.
type ClientBoundPacket interface {
	Packet
	Phase() Phase
}

// ServerBoundDecoder decodes one server-bound packet body (the id has already been
// read and dispatched on) from buf.
type ServerBoundDecoder func(buf *ns.PacketBuffer) (Packet, error)
