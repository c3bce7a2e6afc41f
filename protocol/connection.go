package protocol

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/emberhollow/mcserver-core/crypto"
)

// cryptoConn wraps a net.Conn so that once an *crypto.Encryption is enabled, every
// byte crossing the wire in either direction is transparently passed through the
// AES/CFB8 stream cipher. Before EnableEncryption is called, reads and writes pass
// through unmodified.
type cryptoConn struct {
	net.Conn
	encryption *crypto.Encryption
}

func (c *cryptoConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 && c.encryption.IsEnabled() {
		copy(p[:n], c.encryption.Decrypt(p[:n]))
	}
	return n, err
}

func (c *cryptoConn) Write(p []byte) (int, error) {
	if c.encryption.IsEnabled() {
		p = c.encryption.Encrypt(p)
	}
	return c.Conn.Write(p)
}

// Connection owns one peer's byte streams for the lifetime of a session: a buffered
// reader and writer over the (possibly encrypted) socket, plus its Phase and
// transform state.
type Connection struct {
	netConn *cryptoConn
	reader  *bufio.Reader
	writer  *bufio.Writer

	phase                Phase
	compression          Compression
	compressionThreshold int
	encryption           Encryption
	cipher               *crypto.Encryption

	logger *log.Logger
	debug  bool
}

// NewConnection wraps conn as a Connection with Phase=Handshaking and both
// transforms Disabled.
func NewConnection(conn net.Conn) *Connection {
	cipher := crypto.NewEncryption()
	cc := &cryptoConn{Conn: conn, encryption: cipher}
	return &Connection{
		netConn: cc,
		reader:  bufio.NewReader(cc),
		writer:  bufio.NewWriter(cc),
		phase:   PhaseHandshaking,
		cipher:  cipher,
		logger:  log.New(os.Stderr, "protocol: ", log.LstdFlags),
	}
}

// SetLogger replaces the Connection's logger.
func (c *Connection) SetLogger(logger *log.Logger) {
	c.logger = logger
}

// EnableDebug turns on frame-level trace logging.
func (c *Connection) EnableDebug(debug bool) {
	c.debug = debug
}

// Phase returns the connection's current Phase.
func (c *Connection) Phase() Phase {
	return c.phase
}

// SetPhase transitions the connection's Phase unconditionally; sequencing which
// transitions are legal (Handshaking→{Status,Login}, Login→Play, Play→Play) is the
// caller's responsibility.
func (c *Connection) SetPhase(phase Phase) {
	c.debugf("phase %s -> %s", c.phase, phase)
	c.phase = phase
}

// SetCompression enables frame compression with the given threshold. Must only be
// called after a SetCompression packet has actually been sent to the peer.
func (c *Connection) SetCompression(threshold int) {
	c.compression = CompressionEnabled
	c.compressionThreshold = threshold
	c.debugf("compression enabled, threshold=%d", threshold)
}

// EnableEncryption switches the connection onto the AES/CFB8 stream cipher built
// from sharedSecret, wrapping every subsequent read and write.
func (c *Connection) EnableEncryption(sharedSecret []byte) error {
	c.cipher.SetSharedSecret(sharedSecret)
	if err := c.cipher.EnableEncryption(); err != nil {
		return fmt.Errorf("enable encryption: %w", err)
	}
	c.encryption = EncryptionEnabled
	c.debugf("encryption enabled")
	return nil
}

// ReceiveFrame reads one full frame under the connection's current Compression,
// returning an untagged Frame the caller interprets under the current Phase.
func (c *Connection) ReceiveFrame() (*Frame, error) {
	frame, err := ReadFrame(c.reader, c.compression)
	if err != nil {
		return nil, fmt.Errorf("receive frame (phase=%s): %w", c.phase, err)
	}
	if c.debug {
		c.debugf("<- recv: phase=%s bytes=%d %s", c.phase, len(frame.data), hexSnippet(frame.data, 32))
	}
	return frame, nil
}

// SendTyped encodes and sends a client-bound packet, asserting that its declared
// legal Phase matches the connection's current Phase (a mismatch is a programmer
// error and aborts the connection).
func (c *Connection) SendTyped(p ClientBoundPacket) error {
	if p.Phase() != c.phase {
		panic(fmt.Sprintf("send_typed: packet %T is legal only in phase %s, connection is in phase %s", p, p.Phase(), c.phase))
	}
	body, err := EncodePacketBody(p)
	if err != nil {
		return fmt.Errorf("send %T: %w", p, err)
	}
	if err := WriteFrame(c.writer, body, c.compression, c.compressionThreshold); err != nil {
		return fmt.Errorf("send %T: %w", p, err)
	}
	if err := c.writer.Flush(); err != nil {
		return fmt.Errorf("send %T: flush: %w", p, err)
	}
	if c.debug {
		c.debugf("-> send: phase=%s id=0x%02X bytes=%d %s", c.phase, p.ID(), len(body), hexSnippet(body, 32))
	}
	return nil
}

// Close closes the underlying network connection.
func (c *Connection) Close() error {
	return c.netConn.Close()
}

// NetConn exposes the underlying net.Conn, e.g. for remote-address logging.
func (c *Connection) NetConn() net.Conn {
	return c.netConn.Conn
}

func (c *Connection) debugf(format string, args ...any) {
	if c.debug && c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func hexSnippet(data []byte, max int) string {
	n := len(data)
	truncated := n > max
	if truncated {
		data = data[:max]
	}
	s := fmt.Sprintf("%X", data)
	if truncated {
		s += fmt.Sprintf("...(%d more bytes)", n-max)
	}
	return s
}

var _ io.ReadWriter = (*Connection)(nil)

// Read satisfies io.Reader by delegating to the buffered read half, so a
// Connection itself can stand in where raw stream access is needed.
func (c *Connection) Read(p []byte) (int, error) { return c.reader.Read(p) }

// Write satisfies io.Writer by delegating to the buffered write half.
func (c *Connection) Write(p []byte) (int, error) { return c.writer.Write(p) }
