package server

import (
	"fmt"

	"github.com/emberhollow/mcserver-core/protocol/packets"
	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// heightMaps is the shape DefaultPlayEntryConfig's HeightMaps NBT encodes: a single
// MOTION_BLOCKING entry, 37 zeroed longs (the 256 column heights of a 16x16 chunk
// packed 9 bits each, 7 per long), matching a chunk with no blocks in it.
type heightMaps struct {
	MotionBlocking []int64 `nbt:"MOTION_BLOCKING"`
}

func defaultHeightMaps() ns.NBT {
	return ns.NewNBT(heightMaps{MotionBlocking: make([]int64, 37)})
}

// PlayEntryConfig parameterizes DefaultPlayEntrySequence. Defaults come from the
// minimal bring-up sequence a reference client-facing implementation of this
// protocol version scripts after login: one overworld chunk with no terrain, a
// stationary player with a Hard, unlocked difficulty, and no special abilities.
// RegistryCodec has no in-repo default: the dimension/biome registry NBT is a
// pre-captured asset supplied at the filesystem boundary, not generated by this
// core (see DESIGN.md).
type PlayEntryConfig struct {
	EntityID      ns.Int32
	RegistryCodec ns.NBT

	DimensionNames []ns.Identifier
	DimensionType  ns.Identifier
	DimensionName  ns.Identifier
	HashedSeed     ns.Uint64

	MaxPlayers         ns.VarInt
	ViewDistance       ns.VarInt
	SimulationDistance ns.VarInt

	Difficulty       ns.Difficulty
	DifficultyLocked ns.Boolean

	AbilitiesFlags ns.PlayerAbilitiesFlags
	FlyingSpeed    ns.Float32
	FOVModifier    ns.Float32

	HeldSlot ns.Uint8

	Features []ns.Feature

	// MarkerEntityID is the id of a SpawnEntity sent after bring-up, keyed on
	// the player's own profile UUID.
	MarkerEntityID ns.VarInt

	ChunkX, ChunkZ ns.Int32
	HeightMaps     ns.NBT
	ChunkSections  []ns.ChunkSection

	// SpawnX/Y/Z and the sync flags feed the initial SynchronizePlayerPosition
	// that closes the sequence; the client must answer it with
	// ConfirmTeleportation echoing TeleportID.
	SpawnX, SpawnY, SpawnZ ns.Float64
	SpawnYaw, SpawnPitch   ns.Float32
	SyncFlags              ns.SyncPositionFlags
	TeleportID             ns.VarInt
}

// DefaultPlayEntryConfig returns the literal bring-up defaults, with RegistryCodec
// left for the caller to fill in from the server's registry asset.
func DefaultPlayEntryConfig() PlayEntryConfig {
	return PlayEntryConfig{
		EntityID: 1,

		DimensionNames: []ns.Identifier{"minecraft:overworld", "minecraft:the_end", "minecraft:nether"},
		DimensionType:  "minecraft:overworld",
		DimensionName:  "minecraft:overworld",
		HashedSeed:     0x100000,

		MaxPlayers:         20,
		ViewDistance:       16,
		SimulationDistance: 16,

		Difficulty:       ns.DifficultyHard,
		DifficultyLocked: false,

		AbilitiesFlags: 0,
		FlyingSpeed:    0.05,
		FOVModifier:    0,

		HeldSlot: 0,

		Features: []ns.Feature{ns.FeatureVanilla},

		MarkerEntityID: 10,

		ChunkX: 0, ChunkZ: 0,
		HeightMaps:    defaultHeightMaps(),
		ChunkSections: nil,

		SyncFlags:  ns.SyncPositionRelativeX | ns.SyncPositionRelativeY | ns.SyncPositionRelativeZ,
		TeleportID: 0x55,
	}
}

// DefaultPlayEntrySequence sends the scripted packet sequence a client expects
// immediately after LoginSuccess: LoginPlay, FeatureFlags, a brand PluginMessage,
// ChangeDifficulty, PlayerAbilities, SetHeldItem, one ChunkDataAndUpdateLight, a
// SpawnEntity marker, and the initial SynchronizePlayerPosition. Respawn is not part
// of this sequence or this core's scope.
func DefaultPlayEntrySequence(s *Session, profile ns.GameProfile, cfg PlayEntryConfig) error {
	conn := s.Connection()

	loginPlay := packets.LoginPlay{
		EntityID:            cfg.EntityID,
		IsHardcore:          false,
		GameMode:            ns.GameModeSurvival,
		PreviousGameMode:    ns.GameModeUndefined,
		DimensionNames:      ns.PrefixedArray[ns.Identifier](cfg.DimensionNames),
		RegistryCodec:       cfg.RegistryCodec,
		DimensionType:       cfg.DimensionType,
		DimensionName:       cfg.DimensionName,
		HashedSeed:          cfg.HashedSeed,
		MaxPlayers:          cfg.MaxPlayers,
		ViewDistance:        cfg.ViewDistance,
		SimulationDistance:  cfg.SimulationDistance,
		ReduceDebugInfo:     false,
		EnableRespawnScreen: true,
		IsDebug:             false,
		IsFlat:              false,
		DeathLocation:       ns.None[ns.GlobalPos](),
		PortalCooldown:      0,
	}
	if err := conn.SendTyped(loginPlay); err != nil {
		return fmt.Errorf("play entry: LoginPlay: %w", err)
	}

	if err := conn.SendTyped(packets.FeatureFlags{Features: ns.PrefixedArray[ns.Feature](cfg.Features)}); err != nil {
		return fmt.Errorf("play entry: FeatureFlags: %w", err)
	}

	// The brand channel's payload is itself a length-prefixed string, not raw bytes.
	brandPayload := ns.NewWriter()
	if err := brandPayload.WriteString(moduleBrand); err != nil {
		return fmt.Errorf("play entry: encode brand payload: %w", err)
	}
	brand := packets.ClientBoundPluginMessage{Channel: "minecraft:brand", Data: brandPayload.Bytes()}
	if err := conn.SendTyped(brand); err != nil {
		return fmt.Errorf("play entry: brand PluginMessage: %w", err)
	}

	if err := conn.SendTyped(packets.ChangeDifficulty{NewDifficulty: cfg.Difficulty, Locked: cfg.DifficultyLocked}); err != nil {
		return fmt.Errorf("play entry: ChangeDifficulty: %w", err)
	}

	if err := conn.SendTyped(packets.PlayerAbilities{Flags: cfg.AbilitiesFlags, FlyingSpeed: cfg.FlyingSpeed, FOVModifier: cfg.FOVModifier}); err != nil {
		return fmt.Errorf("play entry: PlayerAbilities: %w", err)
	}

	if err := conn.SendTyped(packets.SetHeldItem{Slot: cfg.HeldSlot}); err != nil {
		return fmt.Errorf("play entry: SetHeldItem: %w", err)
	}

	chunk := packets.ChunkDataAndUpdateLight{
		ChunkX:        cfg.ChunkX,
		ChunkZ:        cfg.ChunkZ,
		HeightMaps:    cfg.HeightMaps,
		ChunkData:     cfg.ChunkSections,
		BlockEntities: nil,
		Light: ns.LightData{
			SkyLightMask:        ns.BitSetFromLongs([]int64{0}),
			BlockLightMask:      ns.BitSetFromLongs([]int64{0}),
			EmptySkyLightMask:   ns.BitSetFromLongs([]int64{0}),
			EmptyBlockLightMask: ns.BitSetFromLongs([]int64{0}),
		},
	}
	if err := conn.SendTyped(chunk); err != nil {
		return fmt.Errorf("play entry: ChunkDataAndUpdateLight: %w", err)
	}

	marker := packets.SpawnEntity{
		EntityID:   cfg.MarkerEntityID,
		EntityUUID: profile.UUID,
		MobType:    0,
	}
	if err := conn.SendTyped(marker); err != nil {
		return fmt.Errorf("play entry: SpawnEntity: %w", err)
	}

	sync := packets.SynchronizePlayerPosition{
		X: cfg.SpawnX, Y: cfg.SpawnY, Z: cfg.SpawnZ,
		Yaw: cfg.SpawnYaw, Pitch: cfg.SpawnPitch,
		Flags:      cfg.SyncFlags,
		TeleportID: cfg.TeleportID,
	}
	if err := conn.SendTyped(sync); err != nil {
		return fmt.Errorf("play entry: SynchronizePlayerPosition: %w", err)
	}

	return nil
}

// moduleBrand is the server-brand string advertised on the minecraft:brand plugin
// channel; vanilla clients display it in the F3 debug overlay.
const moduleBrand = "emberhollow"
