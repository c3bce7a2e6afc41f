package packets

import (
	"fmt"

	"github.com/emberhollow/mcserver-core/protocol"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// ConfirmTeleportation acknowledges a SynchronizePlayerPosition by echoing its
// teleport id back to the server.
type ConfirmTeleportation struct {
	TeleportID ns.VarInt
}

func (ConfirmTeleportation) ID() ns.VarInt { return 0x00 }

func (p ConfirmTeleportation) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

func decodeConfirmTeleportation(buf *ns.PacketBuffer) (protocol.Packet, error) {
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("decode ConfirmTeleportation.TeleportID: %w", err)
	}
	return ConfirmTeleportation{TeleportID: id}, nil
}

// ClientInformation reports the client's locale and display preferences.
type ClientInformation struct {
	Locale              ns.String
	ViewDistance        ns.Int8
	ChatMode            ns.VarInt
	ChatColors          ns.Boolean
	DisplayedSkinParts  ns.Uint8
	MainHand            ns.VarInt
	EnableTextFiltering ns.Boolean
	AllowServerListings ns.Boolean
}

func (ClientInformation) ID() ns.VarInt { return 0x08 }

func (p ClientInformation) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MainHand); err != nil {
		return err
	}
	if err := buf.WriteBool(p.EnableTextFiltering); err != nil {
		return err
	}
	return buf.WriteBool(p.AllowServerListings)
}

func decodeClientInformation(buf *ns.PacketBuffer) (protocol.Packet, error) {
	var p ClientInformation
	var err error
	if p.Locale, err = buf.ReadString(16); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.Locale: %w", err)
	}
	if p.ViewDistance, err = buf.ReadInt8(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.ViewDistance: %w", err)
	}
	if p.ChatMode, err = buf.ReadVarInt(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.ChatMode: %w", err)
	}
	if p.ChatColors, err = buf.ReadBool(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.ChatColors: %w", err)
	}
	if p.DisplayedSkinParts, err = buf.ReadUint8(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.DisplayedSkinParts: %w", err)
	}
	if p.MainHand, err = buf.ReadVarInt(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.MainHand: %w", err)
	}
	if p.EnableTextFiltering, err = buf.ReadBool(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.EnableTextFiltering: %w", err)
	}
	if p.AllowServerListings, err = buf.ReadBool(); err != nil {
		return nil, fmt.Errorf("decode ClientInformation.AllowServerListings: %w", err)
	}
	return p, nil
}

// ServerBoundPluginMessage carries raw bytes on a named plugin channel; Data runs to
// the end of the frame.
type ServerBoundPluginMessage struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (ServerBoundPluginMessage) ID() ns.VarInt { return 0x0D }

func (p ServerBoundPluginMessage) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteRemainder(p.Data)
}

func decodeServerBoundPluginMessage(buf *ns.PacketBuffer) (protocol.Packet, error) {
	channel, err := buf.ReadIdentifier()
	if err != nil {
		return nil, fmt.Errorf("decode PluginMessage.Channel: %w", err)
	}
	data, err := buf.ReadRemainder()
	if err != nil {
		return nil, fmt.Errorf("decode PluginMessage.Data: %w", err)
	}
	return ServerBoundPluginMessage{Channel: channel, Data: data}, nil
}

// SetPlayerPosition reports a movement with no rotation change.
type SetPlayerPosition struct {
	X, FeetY, Z ns.Float64
	OnGround    ns.Boolean
}

func (SetPlayerPosition) ID() ns.VarInt { return 0x14 }

func (p SetPlayerPosition) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.FeetY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

func decodeSetPlayerPosition(buf *ns.PacketBuffer) (protocol.Packet, error) {
	var p SetPlayerPosition
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPosition.X: %w", err)
	}
	if p.FeetY, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPosition.FeetY: %w", err)
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPosition.Z: %w", err)
	}
	if p.OnGround, err = buf.ReadBool(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPosition.OnGround: %w", err)
	}
	return p, nil
}

// SetPlayerPositionAndRotation reports a movement that also changes facing.
type SetPlayerPositionAndRotation struct {
	X, FeetY, Z ns.Float64
	Yaw, Pitch  ns.Float32
	OnGround    ns.Boolean
}

func (SetPlayerPositionAndRotation) ID() ns.VarInt { return 0x15 }

func (p SetPlayerPositionAndRotation) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.FeetY); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

func decodeSetPlayerPositionAndRotation(buf *ns.PacketBuffer) (protocol.Packet, error) {
	var p SetPlayerPositionAndRotation
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.X: %w", err)
	}
	if p.FeetY, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.FeetY: %w", err)
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.Z: %w", err)
	}
	if p.Yaw, err = buf.ReadFloat32(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.Yaw: %w", err)
	}
	if p.Pitch, err = buf.ReadFloat32(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.Pitch: %w", err)
	}
	if p.OnGround, err = buf.ReadBool(); err != nil {
		return nil, fmt.Errorf("decode SetPlayerPositionAndRotation.OnGround: %w", err)
	}
	return p, nil
}

// ParsePlay reads a server-bound packet id from frame and decodes the matching
// Play-phase packet.
func ParsePlay(frame *protocol.Frame) (protocol.Packet, error) {
	buf := frame.Buffer()
	id, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("read Play packet id: %w", err)
	}
	switch id {
	case 0x00:
		return decodeConfirmTeleportation(buf)
	case 0x08:
		return decodeClientInformation(buf)
	case 0x0D:
		return decodeServerBoundPluginMessage(buf)
	case 0x14:
		return decodeSetPlayerPosition(buf)
	case 0x15:
		return decodeSetPlayerPositionAndRotation(buf)
	default:
		return nil, fmt.Errorf("unknown packet id 0x%02X in phase Play", id)
	}
}

// SpawnEntity introduces a new entity (or player) into the client's world view.
type SpawnEntity struct {
	EntityID                        ns.VarInt
	EntityUUID                      ns.UUID
	MobType                         ns.VarInt
	X, Y, Z                         ns.Float64
	Pitch, Yaw, HeadYaw             ns.Angle
	Data                            ns.VarInt
	VelocityX, VelocityY, VelocityZ ns.Int16
}

func (SpawnEntity) ID() ns.VarInt         { return 0x01 }
func (SpawnEntity) Phase() protocol.Phase { return protocol.PhasePlay }

func (p SpawnEntity) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteUUID(p.EntityUUID); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.MobType); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteAngle(p.HeadYaw); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.Data); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityX); err != nil {
		return err
	}
	if err := buf.WriteInt16(p.VelocityY); err != nil {
		return err
	}
	return buf.WriteInt16(p.VelocityZ)
}

// ChangeDifficulty reports the world's difficulty setting.
type ChangeDifficulty struct {
	NewDifficulty ns.Difficulty
	Locked        ns.Boolean
}

func (ChangeDifficulty) ID() ns.VarInt         { return 0x0C }
func (ChangeDifficulty) Phase() protocol.Phase { return protocol.PhasePlay }

func (p ChangeDifficulty) Encode(buf *ns.PacketBuffer) error {
	if err := p.NewDifficulty.Encode(buf); err != nil {
		return err
	}
	return buf.WriteBool(p.Locked)
}

// ClientBoundPluginMessage is the client-bound counterpart of ServerBoundPluginMessage.
type ClientBoundPluginMessage struct {
	Channel ns.Identifier
	Data    ns.ByteArray
}

func (ClientBoundPluginMessage) ID() ns.VarInt         { return 0x17 }
func (ClientBoundPluginMessage) Phase() protocol.Phase { return protocol.PhasePlay }

func (p ClientBoundPluginMessage) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(p.Channel); err != nil {
		return err
	}
	return buf.WriteRemainder(p.Data)
}

// ChunkDataAndUpdateLight delivers one chunk column's block data and its light data.
// The block/biome storage sub-format (PalettedContainer) supports only the
// single-valued form; see net_structures.PalettedContainer.
type ChunkDataAndUpdateLight struct {
	ChunkX, ChunkZ ns.Int32
	HeightMaps     ns.NBT
	ChunkData      []ns.ChunkSection
	BlockEntities  ns.PrefixedArray[ns.BlockEntity]
	Light          ns.LightData
}

func (ChunkDataAndUpdateLight) ID() ns.VarInt         { return 0x24 }
func (ChunkDataAndUpdateLight) Phase() protocol.Phase { return protocol.PhasePlay }

func (p ChunkDataAndUpdateLight) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.ChunkX); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.ChunkX: %w", err)
	}
	if err := buf.WriteInt32(p.ChunkZ); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.ChunkZ: %w", err)
	}
	if err := ns.WriteNBT(buf, p.HeightMaps); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.HeightMaps: %w", err)
	}
	if err := ns.EncodeArrayInBytes(buf, p.ChunkData, ns.EncodeChunkSection); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.ChunkData: %w", err)
	}
	if err := p.BlockEntities.EncodeWith(buf, func(b *ns.PacketBuffer, be ns.BlockEntity) error { return be.Encode(b) }); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.BlockEntities: %w", err)
	}
	if err := p.Light.Encode(buf); err != nil {
		return fmt.Errorf("encode ChunkDataAndUpdateLight.Light: %w", err)
	}
	return nil
}

// LoginPlay is the central bring-up packet: it asserts dimension membership, world
// identity, and initial gameplay parameters all at once.
type LoginPlay struct {
	EntityID            ns.Int32
	IsHardcore          ns.Boolean
	GameMode            ns.GameMode
	PreviousGameMode    ns.GameMode
	DimensionNames      ns.PrefixedArray[ns.Identifier]
	RegistryCodec       ns.NBT
	DimensionType       ns.Identifier
	DimensionName       ns.Identifier
	HashedSeed          ns.Uint64
	MaxPlayers          ns.VarInt
	ViewDistance        ns.VarInt
	SimulationDistance  ns.VarInt
	ReduceDebugInfo     ns.Boolean
	EnableRespawnScreen ns.Boolean
	IsDebug             ns.Boolean
	IsFlat              ns.Boolean
	DeathLocation       ns.PrefixedOptional[ns.GlobalPos]
	PortalCooldown      ns.VarInt
}

func (LoginPlay) ID() ns.VarInt         { return 0x28 }
func (LoginPlay) Phase() protocol.Phase { return protocol.PhasePlay }

func (p LoginPlay) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return fmt.Errorf("encode LoginPlay.EntityID: %w", err)
	}
	if err := buf.WriteBool(p.IsHardcore); err != nil {
		return fmt.Errorf("encode LoginPlay.IsHardcore: %w", err)
	}
	if err := p.GameMode.Encode(buf); err != nil {
		return fmt.Errorf("encode LoginPlay.GameMode: %w", err)
	}
	if err := p.PreviousGameMode.Encode(buf); err != nil {
		return fmt.Errorf("encode LoginPlay.PreviousGameMode: %w", err)
	}
	if err := p.DimensionNames.EncodeWith(buf, func(b *ns.PacketBuffer, id ns.Identifier) error { return b.WriteIdentifier(id) }); err != nil {
		return fmt.Errorf("encode LoginPlay.DimensionNames: %w", err)
	}
	if err := ns.WriteNBT(buf, p.RegistryCodec); err != nil {
		return fmt.Errorf("encode LoginPlay.RegistryCodec: %w", err)
	}
	if err := buf.WriteIdentifier(p.DimensionType); err != nil {
		return fmt.Errorf("encode LoginPlay.DimensionType: %w", err)
	}
	if err := buf.WriteIdentifier(p.DimensionName); err != nil {
		return fmt.Errorf("encode LoginPlay.DimensionName: %w", err)
	}
	if err := buf.WriteUint64(p.HashedSeed); err != nil {
		return fmt.Errorf("encode LoginPlay.HashedSeed: %w", err)
	}
	if err := buf.WriteVarInt(p.MaxPlayers); err != nil {
		return fmt.Errorf("encode LoginPlay.MaxPlayers: %w", err)
	}
	if err := buf.WriteVarInt(p.ViewDistance); err != nil {
		return fmt.Errorf("encode LoginPlay.ViewDistance: %w", err)
	}
	if err := buf.WriteVarInt(p.SimulationDistance); err != nil {
		return fmt.Errorf("encode LoginPlay.SimulationDistance: %w", err)
	}
	if err := buf.WriteBool(p.ReduceDebugInfo); err != nil {
		return fmt.Errorf("encode LoginPlay.ReduceDebugInfo: %w", err)
	}
	if err := buf.WriteBool(p.EnableRespawnScreen); err != nil {
		return fmt.Errorf("encode LoginPlay.EnableRespawnScreen: %w", err)
	}
	if err := buf.WriteBool(p.IsDebug); err != nil {
		return fmt.Errorf("encode LoginPlay.IsDebug: %w", err)
	}
	if err := buf.WriteBool(p.IsFlat); err != nil {
		return fmt.Errorf("encode LoginPlay.IsFlat: %w", err)
	}
	if err := p.DeathLocation.EncodeWith(buf, func(b *ns.PacketBuffer, g ns.GlobalPos) error { return g.Encode(b) }); err != nil {
		return fmt.Errorf("encode LoginPlay.DeathLocation: %w", err)
	}
	if err := buf.WriteVarInt(p.PortalCooldown); err != nil {
		return fmt.Errorf("encode LoginPlay.PortalCooldown: %w", err)
	}
	return nil
}

// PlayerAbilities reports the player's current movement privileges.
type PlayerAbilities struct {
	Flags       ns.PlayerAbilitiesFlags
	FlyingSpeed ns.Float32
	FOVModifier ns.Float32
}

func (PlayerAbilities) ID() ns.VarInt         { return 0x34 }
func (PlayerAbilities) Phase() protocol.Phase { return protocol.PhasePlay }

func (p PlayerAbilities) Encode(buf *ns.PacketBuffer) error {
	if err := p.Flags.Encode(buf); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return err
	}
	return buf.WriteFloat32(p.FOVModifier)
}

// SynchronizePlayerPosition forces the client to a server-authoritative position;
// the client must reply with ConfirmTeleportation echoing TeleportID.
type SynchronizePlayerPosition struct {
	X, Y, Z    ns.Float64
	Yaw, Pitch ns.Float32
	Flags      ns.SyncPositionFlags
	TeleportID ns.VarInt
}

func (SynchronizePlayerPosition) ID() ns.VarInt         { return 0x3C }
func (SynchronizePlayerPosition) Phase() protocol.Phase { return protocol.PhasePlay }

func (p SynchronizePlayerPosition) Encode(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	if err := p.Flags.Encode(buf); err != nil {
		return err
	}
	return buf.WriteVarInt(p.TeleportID)
}

// SetHeldItem selects the client's active hotbar slot.
type SetHeldItem struct {
	Slot ns.Uint8
}

func (SetHeldItem) ID() ns.VarInt         { return 0x4D }
func (SetHeldItem) Phase() protocol.Phase { return protocol.PhasePlay }

func (p SetHeldItem) Encode(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(p.Slot)
}

// FeatureFlags declares which optional client features the server has enabled.
type FeatureFlags struct {
	Features ns.PrefixedArray[ns.Feature]
}

func (FeatureFlags) ID() ns.VarInt         { return 0x6B }
func (FeatureFlags) Phase() protocol.Phase { return protocol.PhasePlay }

func (p FeatureFlags) Encode(buf *ns.PacketBuffer) error {
	return p.Features.EncodeWith(buf, func(b *ns.PacketBuffer, f ns.Feature) error { return f.Encode(b) })
}
