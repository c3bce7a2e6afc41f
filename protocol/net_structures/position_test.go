package net_structures

import "testing"

func TestPositionPack(t *testing.T) {
	p, err := NewPosition(18357644, 831, -20882616)
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	want := int64(0x4607632C15B4833F)
	if got := p.Pack(); got != want {
		t.Fatalf("Pack() = 0x%X, want 0x%X", got, want)
	}
	if got := UnpackPosition(want); got != p {
		t.Fatalf("UnpackPosition(0x%X) = %+v, want %+v", want, got, p)
	}
}

func TestNewPositionRejectsOutOfRange(t *testing.T) {
	cases := []struct{ x, y, z int }{
		{1 << 25, 0, 0},
		{-(1 << 25) - 1, 0, 0},
		{0, 1 << 11, 0},
		{0, -(1 << 11) - 1, 0},
		{0, 0, 1 << 25},
	}
	for _, c := range cases {
		if _, err := NewPosition(c.x, c.y, c.z); err == nil {
			t.Errorf("NewPosition(%d, %d, %d): expected out-of-range error", c.x, c.y, c.z)
		}
	}
}

func TestPositionRoundTripNegative(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: 33554431, Y: 2047, Z: -33554432},
	}
	for _, p := range cases {
		if got := UnpackPosition(p.Pack()); got != p {
			t.Errorf("round trip %+v -> %+v", p, got)
		}
	}
}
