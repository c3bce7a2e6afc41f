package packets

import (
	"fmt"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// LoginStart begins authentication: the client asserts a username and, on newer
// clients, its own UUID (absent on some client builds, in which case the
// application must supply one).
type LoginStart struct {
	Name ns.String
	UUID ns.PrefixedOptional[ns.UUID]
}

func (LoginStart) ID() ns.VarInt { return 0x00 }

func (p LoginStart) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return fmt.Errorf("encode LoginStart.Name: %w", err)
	}
	if err := p.UUID.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.UUID) error { return b.WriteUUID(v) }); err != nil {
		return fmt.Errorf("encode LoginStart.UUID: %w", err)
	}
	return nil
}

func decodeLoginStart(buf *ns.PacketBuffer) (protocol.Packet, error) {
	name, err := buf.ReadString(16)
	if err != nil {
		return nil, fmt.Errorf("decode LoginStart.Name: %w", err)
	}
	var uuid ns.PrefixedOptional[ns.UUID]
	if err := uuid.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.UUID, error) { return b.ReadUUID() }); err != nil {
		return nil, fmt.Errorf("decode LoginStart.UUID: %w", err)
	}
	return LoginStart{Name: name, UUID: uuid}, nil
}

// EncryptionResponse answers an EncryptionRequest with the shared secret and
// verify token, both RSA-encrypted against the server's public key.
type EncryptionResponse struct {
	SharedSecret ns.ByteArray
	VerifyToken  ns.ByteArray
}

func (EncryptionResponse) ID() ns.VarInt { return 0x01 }

func (p EncryptionResponse) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return fmt.Errorf("encode EncryptionResponse.SharedSecret: %w", err)
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return fmt.Errorf("encode EncryptionResponse.VerifyToken: %w", err)
	}
	return nil
}

func decodeEncryptionResponse(buf *ns.PacketBuffer) (protocol.Packet, error) {
	secret, err := buf.ReadByteArray(256)
	if err != nil {
		return nil, fmt.Errorf("decode EncryptionResponse.SharedSecret: %w", err)
	}
	token, err := buf.ReadByteArray(256)
	if err != nil {
		return nil, fmt.Errorf("decode EncryptionResponse.VerifyToken: %w", err)
	}
	return EncryptionResponse{SharedSecret: secret, VerifyToken: token}, nil
}

// PluginResponse answers a PluginRequest; Data is present iff the plugin channel
// was understood.
type PluginResponse struct {
	MessageID ns.VarInt
	Data      ns.PrefixedOptional[ns.ByteArray]
}

func (PluginResponse) ID() ns.VarInt { return 0x02 }

func (p PluginResponse) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return fmt.Errorf("encode PluginResponse.MessageID: %w", err)
	}
	if err := p.Data.EncodeWith(buf, func(b *ns.PacketBuffer, v ns.ByteArray) error { return b.WriteRemainder(v) }); err != nil {
		return fmt.Errorf("encode PluginResponse.Data: %w", err)
	}
	return nil
}

func decodePluginResponse(buf *ns.PacketBuffer) (protocol.Packet, error) {
	messageID, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("decode PluginResponse.MessageID: %w", err)
	}
	var data ns.PrefixedOptional[ns.ByteArray]
	if err := data.DecodeWith(buf, func(b *ns.PacketBuffer) (ns.ByteArray, error) { return b.ReadRemainder() }); err != nil {
		return nil, fmt.Errorf("decode PluginResponse.Data: %w", err)
	}
	return PluginResponse{MessageID: messageID, Data: data}, nil
}

// ParseLogin reads a server-bound packet id from frame and decodes the matching
// Login-phase packet.
func ParseLogin(frame *protocol.Frame) (protocol.Packet, error) {
	buf := frame.Buffer()
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("read Login packet id: %w", err)
	}
	switch id {
	case 0x00:
		return decodeLoginStart(buf)
	case 0x01:
		return decodeEncryptionResponse(buf)
	case 0x02:
		return decodePluginResponse(buf)
	default:
		return nil, fmt.Errorf("unknown packet id 0x%02X in phase Login", id)
	}
}

// Disconnect closes the session during Login with an explanatory chat message.
type Disconnect struct {
	Chat ns.Chat
}

func (Disconnect) ID() ns.VarInt         { return 0x00 }
func (Disconnect) Phase() protocol.Phase { return protocol.PhaseLogin }

func (p Disconnect) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Chat)
}

// EncryptionRequest begins the encryption handshake: the server's public key and a
// verify token the client must echo back encrypted, proving it holds the
// corresponding private key's public counterpart.
type EncryptionRequest struct {
	ServerID    ns.String
	PublicKey   ns.ByteArray
	VerifyToken ns.ByteArray
}

func (EncryptionRequest) ID() ns.VarInt         { return 0x01 }
func (EncryptionRequest) Phase() protocol.Phase { return protocol.PhaseLogin }

func (p EncryptionRequest) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return fmt.Errorf("encode EncryptionRequest.ServerID: %w", err)
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return fmt.Errorf("encode EncryptionRequest.PublicKey: %w", err)
	}
	if err := buf.WriteByteArray(p.VerifyToken); err != nil {
		return fmt.Errorf("encode EncryptionRequest.VerifyToken: %w", err)
	}
	return nil
}

// LoginSuccess finalizes authentication, asserting the player's identity to the
// now-trusted client.
type LoginSuccess struct {
	UUID       ns.UUID
	UserName   ns.String
	Properties ns.PrefixedArray[ns.ProfileProperty]
}

func (LoginSuccess) ID() ns.VarInt         { return 0x02 }
func (LoginSuccess) Phase() protocol.Phase { return protocol.PhaseLogin }

func (p LoginSuccess) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteUUID(p.UUID); err != nil {
		return fmt.Errorf("encode LoginSuccess.UUID: %w", err)
	}
	if err := buf.WriteString(p.UserName); err != nil {
		return fmt.Errorf("encode LoginSuccess.UserName: %w", err)
	}
	if err := p.Properties.EncodeWith(buf, ns.EncodeProfileProperty); err != nil {
		return fmt.Errorf("encode LoginSuccess.Properties: %w", err)
	}
	return nil
}

// SetCompression negotiates the frame compression threshold; every frame after
// this packet is sent uses the compressed envelope.
type SetCompression struct {
	Threshold ns.VarInt
}

func (SetCompression) ID() ns.VarInt         { return 0x03 }
func (SetCompression) Phase() protocol.Phase { return protocol.PhaseLogin }

func (p SetCompression) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.Threshold)
}

// PluginRequest asks the client to answer a custom login-time query on a named
// plugin channel.
type PluginRequest struct {
	MessageID ns.VarInt
	Channel   ns.Identifier
	Data      ns.ByteArray
}

func (PluginRequest) ID() ns.VarInt         { return 0x04 }
func (PluginRequest) Phase() protocol.Phase { return protocol.PhaseLogin }

func (p PluginRequest) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.MessageID); err != nil {
		return fmt.Errorf("encode PluginRequest.MessageID: %w", err)
	}
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return fmt.Errorf("encode PluginRequest.Channel: %w", err)
	}
	if err := buf.WriteRemainder(p.Data); err != nil {
		return fmt.Errorf("encode PluginRequest.Data: %w", err)
	}
	return nil
}
