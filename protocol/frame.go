package protocol

import (
	"bytes"
	"fmt"

	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// Frame is a self-contained byte cursor over one packet's body (packet id plus
// payload, post length-prefix-stripping). Decoding a typed packet from a Frame must
// leave the cursor at end-of-frame; AssertConsumed enforces that invariant.
type Frame struct {
	data   []byte
	cursor *bytes.Reader
	buf    *ns.PacketBuffer
}

// NewFrame wraps body as a Frame ready for sequential field decodes.
func NewFrame(body []byte) *Frame {
	r := bytes.NewReader(body)
	return &Frame{data: body, cursor: r, buf: ns.NewReaderFrom(r)}
}

// Buffer exposes the Frame's PacketBuffer for field-level decode calls.
func (f *Frame) Buffer() *ns.PacketBuffer {
	return f.buf
}

// Remaining reports how many bytes of the Frame have not yet been consumed.
func (f *Frame) Remaining() int {
	return f.cursor.Len()
}

// AssertConsumed enforces the end-of-frame invariant: a decoder that returns with
// unconsumed frame bytes is a bug in that decoder, not a legitimate protocol
// condition.
func (f *Frame) AssertConsumed() error {
	return assertFrameConsumed(f.Remaining())
}

func frameNotConsumedMessage(remaining int) string {
	return fmt.Sprintf("frame decode left %d unconsumed byte(s): decoder bug", remaining)
}
