package packets

import (
	"strings"
	"testing"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

func TestParsePlaySetPlayerPositionAndRotationRoundTrip(t *testing.T) {
	sent := SetPlayerPositionAndRotation{
		X: 100.5, FeetY: 64, Z: -32.25,
		Yaw: 90, Pitch: -45,
		OnGround: true,
	}
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(sent.ID()); err != nil {
		t.Fatalf("write id: %v", err)
	}
	if err := sent.Encode(buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	frame := protocol.NewFrame(buf.Bytes())
	pkt, err := ParsePlay(frame)
	if err != nil {
		t.Fatalf("ParsePlay: %v", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		t.Fatalf("AssertConsumed: %v", err)
	}
	got, ok := pkt.(SetPlayerPositionAndRotation)
	if !ok {
		t.Fatalf("ParsePlay returned %T, want SetPlayerPositionAndRotation", pkt)
	}
	if got != sent {
		t.Fatalf("ParsePlay = %+v, want %+v", got, sent)
	}
}

func TestParsePlayPluginMessageConsumesRemainder(t *testing.T) {
	sent := ServerBoundPluginMessage{Channel: "minecraft:brand", Data: []byte{0x07, 'v', 'a', 'n', 'i', 'l', 'l', 'a'}}
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(sent.ID()); err != nil {
		t.Fatalf("write id: %v", err)
	}
	if err := sent.Encode(buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	frame := protocol.NewFrame(buf.Bytes())
	pkt, err := ParsePlay(frame)
	if err != nil {
		t.Fatalf("ParsePlay: %v", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		t.Fatalf("AssertConsumed: %v", err)
	}
	got, ok := pkt.(ServerBoundPluginMessage)
	if !ok {
		t.Fatalf("ParsePlay returned %T, want ServerBoundPluginMessage", pkt)
	}
	if got.Channel != sent.Channel || string(got.Data) != string(sent.Data) {
		t.Fatalf("ParsePlay = %+v, want %+v", got, sent)
	}
}

func TestParsePlayUnknownIDNamesIDAndPhase(t *testing.T) {
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(0x42); err != nil {
		t.Fatalf("write id: %v", err)
	}
	_, err := ParsePlay(protocol.NewFrame(buf.Bytes()))
	if err == nil {
		t.Fatal("expected error parsing an unknown Play packet id")
	}
	if !strings.Contains(err.Error(), "0x42") || !strings.Contains(err.Error(), "Play") {
		t.Fatalf("error %q does not name the id and phase", err)
	}
}
