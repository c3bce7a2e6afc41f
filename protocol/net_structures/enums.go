package net_structures

import (
	"fmt"
	"io"
)

// NextState is the Handshake packet's declared intent for the following phase.
type NextState VarInt

const (
	NextStateStatus NextState = 1
	NextStateLogin  NextState = 2
)

// Encode writes the NextState to w as a VarInt.
func (n NextState) Encode(w io.Writer) error {
	return VarInt(n).Encode(w)
}

// DecodeNextState reads a NextState from r. An unrecognized value is a decode error:
// nothing beyond Status/Login is meaningful during Handshaking.
func DecodeNextState(r io.Reader) (NextState, error) {
	v, err := DecodeVarInt(r)
	if err != nil {
		return 0, fmt.Errorf("decode NextState: %w", err)
	}
	switch NextState(v) {
	case NextStateStatus, NextStateLogin:
		return NextState(v), nil
	default:
		return 0, fmt.Errorf("decode NextState: unrecognized value %d", v)
	}
}

// GameMode is a signed byte; -1 means "undefined" (used for previous_game_mode).
type GameMode int8

const (
	GameModeUndefined GameMode = -1
	GameModeSurvival  GameMode = 0
	GameModeCreative  GameMode = 1
	GameModeAdventure GameMode = 2
	GameModeSpectator GameMode = 3
)

func (g GameMode) Encode(w io.Writer) error {
	return Int8(g).Encode(w)
}

func DecodeGameMode(r io.Reader) (GameMode, error) {
	v, err := DecodeInt8(r)
	if err != nil {
		return 0, fmt.Errorf("decode GameMode: %w", err)
	}
	return GameMode(v), nil
}

// Difficulty is an unsigned byte. Values above Hard are preserved verbatim on decode
// rather than rejected, since the wire format never fails to parse a difficulty byte.
type Difficulty uint8

const (
	DifficultyPeaceful Difficulty = 0
	DifficultyEasy     Difficulty = 1
	DifficultyNormal   Difficulty = 2
	DifficultyHard     Difficulty = 3
)

func (d Difficulty) Encode(w io.Writer) error {
	return Uint8(d).Encode(w)
}

func DecodeDifficulty(r io.Reader) (Difficulty, error) {
	v, err := DecodeUint8(r)
	if err != nil {
		return 0, fmt.Errorf("decode Difficulty: %w", err)
	}
	return Difficulty(v), nil
}

// Feature names a client feature flag by Identifier.
type Feature Identifier

const (
	FeatureVanilla Feature = "minecraft:vanilla"
	FeatureBundle  Feature = "minecraft:bundle"
)

func (f Feature) Encode(w io.Writer) error {
	return Identifier(f).Encode(w)
}

func DecodeFeature(r io.Reader) (Feature, error) {
	id, err := DecodeIdentifier(r)
	if err != nil {
		return "", fmt.Errorf("decode Feature: %w", err)
	}
	return Feature(id), nil
}

// PlayerAbilitiesFlags is the bitflag set carried by the PlayerAbilities packet.
type PlayerAbilitiesFlags uint8

const (
	PlayerAbilityInvulnerable PlayerAbilitiesFlags = 0x01
	PlayerAbilityFlying       PlayerAbilitiesFlags = 0x02
	PlayerAbilityAllowFlying  PlayerAbilitiesFlags = 0x04
	PlayerAbilityCreativeMode PlayerAbilitiesFlags = 0x08

	playerAbilitiesKnownBits = PlayerAbilityInvulnerable | PlayerAbilityFlying |
		PlayerAbilityAllowFlying | PlayerAbilityCreativeMode
)

func (f PlayerAbilitiesFlags) Has(bit PlayerAbilitiesFlags) bool {
	return f&bit != 0
}

func (f PlayerAbilitiesFlags) Encode(w io.Writer) error {
	return Uint8(f).Encode(w)
}

func DecodePlayerAbilitiesFlags(r io.Reader) (PlayerAbilitiesFlags, error) {
	v, err := DecodeUint8(r)
	if err != nil {
		return 0, fmt.Errorf("decode PlayerAbilitiesFlags: %w", err)
	}
	if unknown := PlayerAbilitiesFlags(v) &^ playerAbilitiesKnownBits; unknown != 0 {
		return 0, fmt.Errorf("decode PlayerAbilitiesFlags: unknown bits 0x%02X", uint8(unknown))
	}
	return PlayerAbilitiesFlags(v), nil
}

// SyncPositionFlags marks which SynchronizePlayerPosition fields are relative
// deltas rather than absolute values.
type SyncPositionFlags uint8

const (
	SyncPositionRelativeX    SyncPositionFlags = 0x01
	SyncPositionRelativeY    SyncPositionFlags = 0x02
	SyncPositionRelativeZ    SyncPositionFlags = 0x04
	SyncPositionRelativeYRot SyncPositionFlags = 0x08
	SyncPositionRelativeXRot SyncPositionFlags = 0x10

	syncPositionKnownBits = SyncPositionRelativeX | SyncPositionRelativeY |
		SyncPositionRelativeZ | SyncPositionRelativeYRot | SyncPositionRelativeXRot
)

func (f SyncPositionFlags) Has(bit SyncPositionFlags) bool {
	return f&bit != 0
}

func (f SyncPositionFlags) Encode(w io.Writer) error {
	return Uint8(f).Encode(w)
}

func DecodeSyncPositionFlags(r io.Reader) (SyncPositionFlags, error) {
	v, err := DecodeUint8(r)
	if err != nil {
		return 0, fmt.Errorf("decode SyncPositionFlags: %w", err)
	}
	if unknown := SyncPositionFlags(v) &^ syncPositionKnownBits; unknown != 0 {
		return 0, fmt.Errorf("decode SyncPositionFlags: unknown bits 0x%02X", uint8(unknown))
	}
	return SyncPositionFlags(v), nil
}
