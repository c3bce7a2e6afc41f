package packets

import (
	"testing"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

func TestParseHandshakingHappyPath(t *testing.T) {
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(0x00); err != nil {
		t.Fatalf("write id: %v", err)
	}
	if err := buf.WriteVarInt(763); err != nil {
		t.Fatalf("write protocol version: %v", err)
	}
	if err := buf.WriteString("localhost"); err != nil {
		t.Fatalf("write server address: %v", err)
	}
	if err := buf.WriteUint16(25565); err != nil {
		t.Fatalf("write server port: %v", err)
	}
	if err := ns.NextStateLogin.Encode(buf.Writer()); err != nil {
		t.Fatalf("write next state: %v", err)
	}

	frame := protocol.NewFrame(buf.Bytes())
	pkt, err := ParseHandshaking(frame)
	if err != nil {
		t.Fatalf("ParseHandshaking: %v", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		t.Fatalf("AssertConsumed: %v", err)
	}
	hs, ok := pkt.(Handshake)
	if !ok {
		t.Fatalf("ParseHandshaking returned %T, want Handshake", pkt)
	}
	want := Handshake{ProtocolVersion: 763, ServerAddress: "localhost", ServerPort: 25565, NextState: ns.NextStateLogin}
	if hs != want {
		t.Fatalf("ParseHandshaking = %+v, want %+v", hs, want)
	}
}
