// Package server is the accept-to-Play session driver sitting above the protocol
// layer. It stays out of the TCP listener loop itself (an application concern) and
// delegates every decision that belongs to world simulation, authentication, or
// chunk generation to an injected Application, so that protocol and server stay
// testable independently of any of those collaborators.
package server

import (
	"github.com/emberhollow/mcserver-core/protocol"
	"github.com/emberhollow/mcserver-core/protocol/packets"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// Application is the pluggable collaborator a Session drives through the session
// lifecycle. None of its methods are invoked concurrently for a single Session.
type Application interface {
	// HandleHandshake observes the client's declared Handshake before the Session
	// transitions phase. Returning an error aborts the connection.
	HandleHandshake(s *Session, hs packets.Handshake) error

	// HandleLoginStart resolves the identity LoginSuccess will assert: validating
	// or deriving a UUID when the client omitted one, and supplying any signed
	// profile properties.
	HandleLoginStart(s *Session, ls packets.LoginStart) (ns.GameProfile, error)

	// EnterPlay runs immediately after LoginSuccess is sent and the Session has
	// transitioned to Play; it is responsible for emitting the scripted
	// Play-entry sequence (typically via DefaultPlayEntrySequence).
	EnterPlay(s *Session, profile ns.GameProfile) error

	// HandlePlayPacket is called once per Play-phase frame the Session receives
	// after EnterPlay returns.
	HandlePlayPacket(s *Session, p protocol.Packet) error
}

// StatusProvider is an optional Application extension: if implemented, a
// StatusRequest received during the Status phase is answered with its JSON. A
// Session with no StatusProvider sends nothing and Run returns after reading that
// one Status frame.
type StatusProvider interface {
	StatusResponseJSON(s *Session) (string, error)
}

// EncryptionProvider is an optional Application extension: if implemented, every
// login runs the server-side RSA/AES encryption handshake (EncryptionRequest
// answered with EncryptionResponse) before LoginSuccess is sent. A Session whose
// Application does not implement this stays on the unencrypted identity path.
type EncryptionProvider interface {
	// ServerID is the value EncryptionRequest's server_id field carries. Vanilla
	// servers send the empty string here; it exists only as a wire-format
	// artifact of an older session-server handshake.
	ServerID() string
}
