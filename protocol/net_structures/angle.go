package net_structures

import (
	"fmt"
	"io"
	"math"
)

// Angle is a single byte representing 1/256 of a full turn.
type Angle uint8

// Encode writes the Angle to w.
func (a Angle) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(a)})
	return err
}

// DecodeAngle reads an Angle from r.
func DecodeAngle(r io.Reader) (Angle, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("decode Angle: %w", err)
	}
	return Angle(b[0]), nil
}

// AngleFromDegrees converts a degree value to its nearest Angle.
func AngleFromDegrees(deg float64) Angle {
	return Angle(uint8(math.Round(deg / 360 * 256)))
}

// Degrees converts the Angle to degrees in [0, 360).
func (a Angle) Degrees() float64 {
	return float64(a) / 256 * 360
}

// Radians converts the Angle to radians.
func (a Angle) Radians() float64 {
	return a.Degrees() * math.Pi / 180
}
