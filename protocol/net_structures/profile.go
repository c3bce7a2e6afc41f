package net_structures

import "fmt"

// ProfileProperty is one signed key/value pair carried in LoginSuccess's property array
// (e.g. the "textures" skin property), named and shaped per the game profile format.
type ProfileProperty struct {
	Name      String
	Value     String
	Signature PrefixedOptional[String]
}

// Decode reads a ProfileProperty from buf.
func (p *ProfileProperty) Decode(buf *PacketBuffer) error {
	name, err := buf.ReadString(64)
	if err != nil {
		return fmt.Errorf("decode ProfileProperty.Name: %w", err)
	}
	value, err := buf.ReadString(32767)
	if err != nil {
		return fmt.Errorf("decode ProfileProperty.Value: %w", err)
	}
	var sig PrefixedOptional[String]
	if err := sig.DecodeWith(buf, func(b *PacketBuffer) (String, error) {
		return b.ReadString(1024)
	}); err != nil {
		return fmt.Errorf("decode ProfileProperty.Signature: %w", err)
	}
	p.Name, p.Value, p.Signature = name, value, sig
	return nil
}

// Encode writes the ProfileProperty to buf.
func (p ProfileProperty) Encode(buf *PacketBuffer) error {
	if err := buf.WriteString(p.Name); err != nil {
		return fmt.Errorf("encode ProfileProperty.Name: %w", err)
	}
	if err := buf.WriteString(p.Value); err != nil {
		return fmt.Errorf("encode ProfileProperty.Value: %w", err)
	}
	if err := p.Signature.EncodeWith(buf, func(b *PacketBuffer, v String) error {
		return b.WriteString(v)
	}); err != nil {
		return fmt.Errorf("encode ProfileProperty.Signature: %w", err)
	}
	return nil
}

// DecodeProfileProperty reads a single ProfileProperty, for use as a PrefixedArray
// ElementDecoder.
func DecodeProfileProperty(buf *PacketBuffer) (ProfileProperty, error) {
	var p ProfileProperty
	err := p.Decode(buf)
	return p, err
}

// EncodeProfileProperty writes a single ProfileProperty, for use as a PrefixedArray
// ElementEncoder.
func EncodeProfileProperty(buf *PacketBuffer, p ProfileProperty) error {
	return p.Encode(buf)
}

// GameProfile is the identity LoginSuccess asserts for the now-authenticated player:
// a UUID, a username, and zero or more signed properties.
type GameProfile struct {
	UUID       UUID
	Username   String
	Properties PrefixedArray[ProfileProperty]
}

// Decode reads a GameProfile from buf.
func (g *GameProfile) Decode(buf *PacketBuffer) error {
	uuid, err := buf.ReadUUID()
	if err != nil {
		return fmt.Errorf("decode GameProfile.UUID: %w", err)
	}
	username, err := buf.ReadString(16)
	if err != nil {
		return fmt.Errorf("decode GameProfile.Username: %w", err)
	}
	var props PrefixedArray[ProfileProperty]
	if err := props.DecodeWith(buf, DecodeProfileProperty); err != nil {
		return fmt.Errorf("decode GameProfile.Properties: %w", err)
	}
	g.UUID, g.Username, g.Properties = uuid, username, props
	return nil
}

// Encode writes the GameProfile to buf.
func (g GameProfile) Encode(buf *PacketBuffer) error {
	if err := buf.WriteUUID(g.UUID); err != nil {
		return fmt.Errorf("encode GameProfile.UUID: %w", err)
	}
	if err := buf.WriteString(g.Username); err != nil {
		return fmt.Errorf("encode GameProfile.Username: %w", err)
	}
	if err := g.Properties.EncodeWith(buf, EncodeProfileProperty); err != nil {
		return fmt.Errorf("encode GameProfile.Properties: %w", err)
	}
	return nil
}
