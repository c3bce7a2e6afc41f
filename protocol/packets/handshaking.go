// Package packets is the catalog: every packet shape the core understands or
// emits, tagged with its numeric id and, for client-bound packets, its legal Phase.
// Each server-bound phase exposes a Parse function implementing discriminated
// union dispatch: read the id, select the matching packet, decode it, return the
// tagged value.
package packets

import (
	"fmt"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// Handshake is the sole entry point of a session: it carries the client's declared
// protocol version and its intent to proceed to Status or Login.
type Handshake struct {
	ProtocolVersion ns.VarInt
	ServerAddress   ns.String
	ServerPort      ns.Uint16
	NextState       ns.NextState
}

func (Handshake) ID() ns.VarInt { return 0x00 }

func (p Handshake) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return fmt.Errorf("encode Handshake.ProtocolVersion: %w", err)
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return fmt.Errorf("encode Handshake.ServerAddress: %w", err)
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return fmt.Errorf("encode Handshake.ServerPort: %w", err)
	}
	if err := p.NextState.Encode(buf); err != nil {
		return fmt.Errorf("encode Handshake.NextState: %w", err)
	}
	return nil
}

func decodeHandshake(buf *ns.PacketBuffer) (protocol.Packet, error) {
	protocolVersion, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("decode Handshake.ProtocolVersion: %w", err)
	}
	addr, err := buf.ReadString(255)
	if err != nil {
		return nil, fmt.Errorf("decode Handshake.ServerAddress: %w", err)
	}
	port, err := buf.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("decode Handshake.ServerPort: %w", err)
	}
	next, err := ns.DecodeNextState(buf)
	if err != nil {
		return nil, fmt.Errorf("decode Handshake.NextState: %w", err)
	}
	return Handshake{ProtocolVersion: protocolVersion, ServerAddress: addr, ServerPort: port, NextState: next}, nil
}

// LegacyServerListPing is the pre-Netty legacy ping probe, kept only so the union
// recognizes it by id instead of failing with an unknown id. ParseHandshaking
// returns it like any other packet; Session.Run ends the session on it.
type LegacyServerListPing struct {
	Payload ns.Uint8
}

func (LegacyServerListPing) ID() ns.VarInt { return 0xFE }

func (p LegacyServerListPing) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(p.Payload)
}

func decodeLegacyServerListPing(buf *ns.PacketBuffer) (protocol.Packet, error) {
	payload, err := buf.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("decode LegacyServerListPing.Payload: %w", err)
	}
	return LegacyServerListPing{Payload: payload}, nil
}

// ParseHandshaking reads a server-bound packet id from frame and decodes the
// matching Handshaking-phase packet.
func ParseHandshaking(frame *protocol.Frame) (protocol.Packet, error) {
	buf := frame.Buffer()
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("read Handshaking packet id: %w", err)
	}
	switch id {
	case 0x00:
		return decodeHandshake(buf)
	case 0xFE:
		return decodeLegacyServerListPing(buf)
	default:
		return nil, fmt.Errorf("unknown packet id 0x%02X in phase Handshaking", id)
	}
}
