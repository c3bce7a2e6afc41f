package protocol

import (
	"net"
	"testing"

	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// phasePacket is a minimal ClientBoundPacket fixture for driver tests.
type phasePacket struct {
	phase Phase
}

func (phasePacket) ID() ns.VarInt { return 0x7F }

func (phasePacket) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(0xAB)
}

func (p phasePacket) Phase() Phase { return p.phase }

func TestSendTypedPhaseMismatchPanics(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	conn := NewConnection(serverConn)
	defer func() {
		if recover() == nil {
			t.Fatal("expected SendTyped to panic on a phase-mismatched packet")
		}
	}()
	_ = conn.SendTyped(phasePacket{phase: PhasePlay})
}

func TestSendTypedMatchingPhaseWritesFrame(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	conn := NewConnection(serverConn)
	conn.SetPhase(PhasePlay)

	type result struct {
		id      ns.VarInt
		payload ns.Uint8
		err     error
	}
	got := make(chan result, 1)
	go func() {
		frame, err := ReadFrame(clientConn, CompressionDisabled)
		if err != nil {
			got <- result{err: err}
			return
		}
		id, err := frame.Buffer().ReadVarInt()
		if err != nil {
			got <- result{err: err}
			return
		}
		payload, err := frame.Buffer().ReadUint8()
		got <- result{id: id, payload: payload, err: err}
	}()

	if err := conn.SendTyped(phasePacket{phase: PhasePlay}); err != nil {
		t.Fatalf("SendTyped: %v", err)
	}
	r := <-got
	if r.err != nil {
		t.Fatalf("client read: %v", r.err)
	}
	if r.id != 0x7F || r.payload != 0xAB {
		t.Fatalf("client read id=0x%02X payload=0x%02X, want id=0x7F payload=0xAB", r.id, r.payload)
	}
}
