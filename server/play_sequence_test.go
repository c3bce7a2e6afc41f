package server

import (
	"net"
	"testing"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// readFrameIDs drains count frames off conn and returns their packet ids in order.
func readFrameIDs(conn net.Conn, count int, ids chan<- []ns.VarInt, fail chan<- error) {
	out := make([]ns.VarInt, 0, count)
	for i := 0; i < count; i++ {
		frame, err := protocol.ReadFrame(conn, protocol.CompressionDisabled)
		if err != nil {
			fail <- err
			return
		}
		id, err := frame.Buffer().ReadVarInt()
		if err != nil {
			fail <- err
			return
		}
		out = append(out, id)
	}
	ids <- out
}

func TestDefaultPlayEntrySequencePacketOrder(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	session := NewSession(serverConn, nil)
	session.Connection().SetPhase(protocol.PhasePlay)

	cfg := DefaultPlayEntryConfig()
	cfg.RegistryCodec = ns.NewEmptyNBT()
	profile := ns.GameProfile{
		UUID:     ns.UUIDFromInt64s(1, 2),
		Username: "Alice",
	}

	want := []ns.VarInt{0x28, 0x6B, 0x17, 0x0C, 0x34, 0x4D, 0x24, 0x01, 0x3C}
	ids := make(chan []ns.VarInt, 1)
	fail := make(chan error, 1)
	go readFrameIDs(clientConn, len(want), ids, fail)

	if err := DefaultPlayEntrySequence(session, profile, cfg); err != nil {
		t.Fatalf("DefaultPlayEntrySequence: %v", err)
	}

	select {
	case err := <-fail:
		t.Fatalf("client read: %v", err)
	case got := <-ids:
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("frame %d has id 0x%02X, want 0x%02X (full order % 02X)", i, got[i], want[i], got)
			}
		}
	}
}
