package packets

import (
	"fmt"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// StatusRequest asks for the server-list JSON payload; it carries no fields.
type StatusRequest struct{}

func (StatusRequest) ID() ns.VarInt { return 0x00 }

func (StatusRequest) Encode(buf *ns.PacketBuffer) error { return nil }

func decodeStatusRequest(buf *ns.PacketBuffer) (protocol.Packet, error) {
	return StatusRequest{}, nil
}

// PingRequest carries an opaque payload the server must echo back unchanged in
// PongResponse (not itself in this catalog's required subset).
type PingRequest struct {
	Payload ns.Int64
}

func (PingRequest) ID() ns.VarInt { return 0x01 }

func (p PingRequest) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

func decodePingRequest(buf *ns.PacketBuffer) (protocol.Packet, error) {
	payload, err := buf.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("decode PingRequest.Payload: %w", err)
	}
	return PingRequest{Payload: payload}, nil
}

// ParseStatus reads a server-bound packet id from frame and decodes the matching
// Status-phase packet.
func ParseStatus(frame *protocol.Frame) (protocol.Packet, error) {
	buf := frame.Buffer()
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("read Status packet id: %w", err)
	}
	switch id {
	case 0x00:
		return decodeStatusRequest(buf)
	case 0x01:
		return decodePingRequest(buf)
	default:
		return nil, fmt.Errorf("unknown packet id 0x%02X in phase Status", id)
	}
}

// StatusResponse answers StatusRequest with the server-list JSON document.
type StatusResponse struct {
	JSONResponse ns.String
}

func (StatusResponse) ID() ns.VarInt         { return 0x00 }
func (StatusResponse) Phase() protocol.Phase { return protocol.PhaseStatus }

func (p StatusResponse) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSONResponse)
}
