package net_structures

import (
	"bytes"
	"testing"
)

func TestDecodeNextState(t *testing.T) {
	for _, want := range []NextState{NextStateStatus, NextStateLogin} {
		var buf bytes.Buffer
		if err := want.Encode(&buf); err != nil {
			t.Fatalf("Encode(%d): %v", want, err)
		}
		got, err := DecodeNextState(&buf)
		if err != nil {
			t.Fatalf("DecodeNextState(%d): %v", want, err)
		}
		if got != want {
			t.Errorf("DecodeNextState = %d, want %d", got, want)
		}
	}
	if _, err := DecodeNextState(bytes.NewReader([]byte{0x03})); err == nil {
		t.Fatal("expected error decoding next state 3")
	}
}

func TestDecodePlayerAbilitiesFlagsRejectsUnknownBits(t *testing.T) {
	got, err := DecodePlayerAbilitiesFlags(bytes.NewReader([]byte{0x0F}))
	if err != nil {
		t.Fatalf("DecodePlayerAbilitiesFlags(0x0F): %v", err)
	}
	if !got.Has(PlayerAbilityInvulnerable) || !got.Has(PlayerAbilityCreativeMode) {
		t.Errorf("flags 0x0F missing expected bits: %02X", uint8(got))
	}
	if _, err := DecodePlayerAbilitiesFlags(bytes.NewReader([]byte{0x10})); err == nil {
		t.Fatal("expected error decoding abilities flag byte with unknown bit 0x10")
	}
}

func TestDecodeSyncPositionFlagsRejectsUnknownBits(t *testing.T) {
	got, err := DecodeSyncPositionFlags(bytes.NewReader([]byte{0x1F}))
	if err != nil {
		t.Fatalf("DecodeSyncPositionFlags(0x1F): %v", err)
	}
	if !got.Has(SyncPositionRelativeXRot) {
		t.Errorf("flags 0x1F missing X_ROT bit: %02X", uint8(got))
	}
	if _, err := DecodeSyncPositionFlags(bytes.NewReader([]byte{0x20})); err == nil {
		t.Fatal("expected error decoding sync flag byte with unknown bit 0x20")
	}
}

func TestDifficultyPreservesUnknownValues(t *testing.T) {
	got, err := DecodeDifficulty(bytes.NewReader([]byte{0x07}))
	if err != nil {
		t.Fatalf("DecodeDifficulty(0x07): %v", err)
	}
	if got != Difficulty(7) {
		t.Errorf("DecodeDifficulty(0x07) = %d, want 7", got)
	}
}
