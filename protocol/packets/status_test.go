package packets

import (
	"testing"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

func TestParseStatusPingRequest(t *testing.T) {
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(0x01); err != nil {
		t.Fatalf("write id: %v", err)
	}
	if err := buf.WriteInt64(0x0123456789ABCDEF); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	frame := protocol.NewFrame(buf.Bytes())
	pkt, err := ParseStatus(frame)
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		t.Fatalf("AssertConsumed: %v", err)
	}
	ping, ok := pkt.(PingRequest)
	if !ok {
		t.Fatalf("ParseStatus returned %T, want PingRequest", pkt)
	}
	if ping.Payload != 0x0123456789ABCDEF {
		t.Fatalf("Payload = 0x%X, want 0x0123456789ABCDEF", ping.Payload)
	}
}

func TestParseStatusRequestIsEmpty(t *testing.T) {
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(0x00); err != nil {
		t.Fatalf("write id: %v", err)
	}
	frame := protocol.NewFrame(buf.Bytes())
	pkt, err := ParseStatus(frame)
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		t.Fatalf("AssertConsumed: %v", err)
	}
	if _, ok := pkt.(StatusRequest); !ok {
		t.Fatalf("ParseStatus returned %T, want StatusRequest", pkt)
	}
}
