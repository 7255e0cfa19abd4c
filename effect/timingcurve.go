package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// TimingCurve is the optional 600-byte timing-curve region: two 300-byte
// nibble-packed halves, playback speed then scale, each holding 600 logical
// samples in [0,15].
type TimingCurve struct {
	Speed [format.TimingCurveSamples]uint8
	Scale [format.TimingCurveSamples]uint8
}

// NewTimingCurve returns a curve with every sample at 2, the "normal speed"
// value a freshly inserted region is filled with.
func NewTimingCurve() *TimingCurve {
	c := &TimingCurve{}
	for i := range c.Speed {
		c.Speed[i] = 2
		c.Scale[i] = 2
	}
	return c
}

// PackNibbles packs values two per byte, low nibble first. Values above 15
// clamp to 15. The input length must be even.
func PackNibbles(vals []uint8) []byte {
	out := make([]byte, len(vals)/2)
	for i := range out {
		lo := vals[2*i]
		hi := vals[2*i+1]
		if lo > format.NibbleMax {
			lo = format.NibbleMax
		}
		if hi > format.NibbleMax {
			hi = format.NibbleMax
		}
		out[i] = lo | hi<<4
	}
	return out
}

// UnpackNibbles expands packed bytes to one sample per element, low nibble
// first.
func UnpackNibbles(b []byte) []uint8 {
	out := make([]uint8, len(b)*2)
	for i, by := range b {
		out[2*i] = by & 0x0F
		out[2*i+1] = by >> 4
	}
	return out
}

// DecodeTimingCurve parses a 600-byte timing-curve region.
func DecodeTimingCurve(b []byte) (*TimingCurve, error) {
	if len(b) != format.TimingCurveRegionSize {
		return nil, fmt.Errorf("timing curve region of %d bytes: %w", len(b), format.ErrTruncated)
	}
	c := &TimingCurve{}
	copy(c.Speed[:], UnpackNibbles(b[:format.TimingCurveHalfBytes]))
	copy(c.Scale[:], UnpackNibbles(b[format.TimingCurveHalfBytes:]))
	return c, nil
}

// Encode serializes the curve back to its 600-byte region.
func (c *TimingCurve) Encode() []byte {
	out := make([]byte, 0, format.TimingCurveRegionSize)
	out = append(out, PackNibbles(c.Speed[:])...)
	out = append(out, PackNibbles(c.Scale[:])...)
	return out
}
