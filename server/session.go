package server

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/emberhollow/mcserver-core/crypto"
	"github.com/emberhollow/mcserver-core/protocol"
	"github.com/emberhollow/mcserver-core/protocol/packets"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// Session drives a single peer from its opening Handshake through the Play loop:
// one Handshaking frame selects Status or Login, Login ends in LoginSuccess and a
// transition to Play, and Play is then an open-ended receive loop until the peer
// disconnects. Accepting the socket and choosing when to spawn a Session is left
// to the caller.
type Session struct {
	conn *protocol.Connection
	app  Application
}

// NewSession wraps conn as a Connection in phase Handshaking and pairs it with app.
func NewSession(conn net.Conn, app Application) *Session {
	return &Session{conn: protocol.NewConnection(conn), app: app}
}

// Connection exposes the underlying protocol.Connection, e.g. so an Application can
// call SendTyped, SetCompression, or EnableEncryption directly.
func (s *Session) Connection() *protocol.Connection {
	return s.conn
}

// Run reads the Handshake and then drives Status or Login to completion, returning
// when the peer disconnects or a protocol error terminates the connection. It does
// not close the underlying socket; the caller owns that.
func (s *Session) Run() error {
	frame, err := s.conn.ReceiveFrame()
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	pkt, err := packets.ParseHandshaking(frame)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	hs, ok := pkt.(packets.Handshake)
	if !ok {
		// LegacyServerListPing or any other recognized-but-non-Handshake packet:
		// nothing further is defined for it, the session simply ends here.
		return nil
	}
	if err := s.app.HandleHandshake(s, hs); err != nil {
		return fmt.Errorf("session: handshake: %w", err)
	}
	switch hs.NextState {
	case ns.NextStateStatus:
		s.conn.SetPhase(protocol.PhaseStatus)
		return s.runStatus()
	case ns.NextStateLogin:
		s.conn.SetPhase(protocol.PhaseLogin)
		return s.runLogin()
	default:
		return fmt.Errorf("session: handshake declared unhandled next state %v", hs.NextState)
	}
}

// runStatus answers at most one StatusRequest with the Application's StatusProvider,
// if any, then returns. Ping/pong completion is outside this server's surface, so a
// PingRequest is observed and otherwise ignored.
func (s *Session) runStatus() error {
	frame, err := s.conn.ReceiveFrame()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("session: status: %w", err)
	}
	pkt, err := packets.ParseStatus(frame)
	if err != nil {
		return fmt.Errorf("session: status: %w", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		return fmt.Errorf("session: status: %w", err)
	}
	if _, ok := pkt.(packets.StatusRequest); !ok {
		return nil
	}
	provider, ok := s.app.(StatusProvider)
	if !ok {
		return nil
	}
	body, err := provider.StatusResponseJSON(s)
	if err != nil {
		return fmt.Errorf("session: status: %w", err)
	}
	return s.conn.SendTyped(packets.StatusResponse{JSONResponse: ns.String(body)})
}

// runLogin completes authentication and then drives the Play loop until the peer
// disconnects.
func (s *Session) runLogin() error {
	frame, err := s.conn.ReceiveFrame()
	if err != nil {
		return fmt.Errorf("session: login: %w", err)
	}
	pkt, err := packets.ParseLogin(frame)
	if err != nil {
		return fmt.Errorf("session: login: %w", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		return fmt.Errorf("session: login: %w", err)
	}
	ls, ok := pkt.(packets.LoginStart)
	if !ok {
		return fmt.Errorf("session: login: expected LoginStart, got %T", pkt)
	}
	profile, err := s.app.HandleLoginStart(s, ls)
	if err != nil {
		return fmt.Errorf("session: login: %w", err)
	}
	if provider, ok := s.app.(EncryptionProvider); ok {
		if err := s.performEncryptionHandshake(provider); err != nil {
			return fmt.Errorf("session: login: %w", err)
		}
	}
	success := packets.LoginSuccess{
		UUID:       profile.UUID,
		UserName:   profile.Username,
		Properties: profile.Properties,
	}
	if err := s.conn.SendTyped(success); err != nil {
		return fmt.Errorf("session: login: %w", err)
	}
	s.conn.SetPhase(protocol.PhasePlay)
	if err := s.app.EnterPlay(s, profile); err != nil {
		return fmt.Errorf("session: play: %w", err)
	}
	return s.runPlay()
}

// performEncryptionHandshake runs the server side of the protocol encryption
// exchange: generate a per-session RSA key pair, send EncryptionRequest with
// a fresh verify token, and validate the client's EncryptionResponse before
// switching the Connection onto the AES/CFB8 stream cipher. The verify token round
// trip proves the client encrypted against the public key it was handed (only this
// key pair's private key can recover the token); a mismatch aborts the connection.
func (s *Session) performEncryptionHandshake(provider EncryptionProvider) error {
	keyPair, err := crypto.GenerateServerKeyPair()
	if err != nil {
		return fmt.Errorf("encryption: generate server key pair: %w", err)
	}
	publicKey, err := keyPair.PublicKeyBytes()
	if err != nil {
		return fmt.Errorf("encryption: marshal server public key: %w", err)
	}
	verifyToken := make([]byte, 4)
	if _, err := rand.Read(verifyToken); err != nil {
		return fmt.Errorf("encryption: generate verify token: %w", err)
	}

	request := packets.EncryptionRequest{
		ServerID:    ns.String(provider.ServerID()),
		PublicKey:   publicKey,
		VerifyToken: verifyToken,
	}
	if err := s.conn.SendTyped(request); err != nil {
		return fmt.Errorf("encryption: send EncryptionRequest: %w", err)
	}

	frame, err := s.conn.ReceiveFrame()
	if err != nil {
		return fmt.Errorf("encryption: receive EncryptionResponse: %w", err)
	}
	pkt, err := packets.ParseLogin(frame)
	if err != nil {
		return fmt.Errorf("encryption: %w", err)
	}
	if err := frame.AssertConsumed(); err != nil {
		return fmt.Errorf("encryption: %w", err)
	}
	response, ok := pkt.(packets.EncryptionResponse)
	if !ok {
		return fmt.Errorf("encryption: expected EncryptionResponse, got %T", pkt)
	}

	decryptedToken, err := keyPair.Decrypt(response.VerifyToken)
	if err != nil {
		return fmt.Errorf("encryption: decrypt verify token: %w", err)
	}
	if !bytes.Equal(decryptedToken, verifyToken) {
		return fmt.Errorf("encryption: verify token mismatch")
	}

	sharedSecret, err := keyPair.Decrypt(response.SharedSecret)
	if err != nil {
		return fmt.Errorf("encryption: decrypt shared secret: %w", err)
	}
	if err := s.conn.EnableEncryption(sharedSecret); err != nil {
		return fmt.Errorf("encryption: %w", err)
	}
	return nil
}

// runPlay receives Play-phase frames until the peer disconnects, dispatching each
// to the Application.
func (s *Session) runPlay() error {
	for {
		frame, err := s.conn.ReceiveFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("session: play: %w", err)
		}
		pkt, err := packets.ParsePlay(frame)
		if err != nil {
			return fmt.Errorf("session: play: %w", err)
		}
		if err := frame.AssertConsumed(); err != nil {
			return fmt.Errorf("session: play: %w", err)
		}
		if err := s.app.HandlePlayPacket(s, pkt); err != nil {
			return fmt.Errorf("session: play: %w", err)
		}
	}
}
