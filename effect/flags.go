package effect

import "github.com/sprited/effectkit/internal/format"

// BitField describes one named field inside the effect-flags byte.
type BitField struct {
	Name  string
	Shift uint
	Width uint
}

// EffectFlagFields is the bitfield layout of the flags byte at the start of
// the effect-flags section. The raw byte stays authoritative; these
// descriptors replace ad hoc bit arithmetic at call sites.
var EffectFlagFields = []BitField{
	{Name: "loop", Shift: 0, Width: 1},
	{Name: "additive", Shift: 1, Width: 1},
	{Name: "depth_test", Shift: 2, Width: 1},
	{Name: "fog", Shift: 3, Width: 1},
	{Name: "curve_speed", Shift: format.CurveSpeedEnableShift, Width: 1},
	{Name: "curve_scale", Shift: format.CurveScaleEnableShift, Width: 1},
	{Name: "reserved", Shift: 6, Width: 2},
}

// FlagsByte is the raw effect-flags byte with named accessors.
type FlagsByte uint8

// Get reads a named field. ok is false for unknown names.
func (f FlagsByte) Get(name string) (uint8, bool) {
	for _, bf := range EffectFlagFields {
		if bf.Name == name {
			mask := uint8(1<<bf.Width - 1)
			return uint8(f) >> bf.Shift & mask, true
		}
	}
	return 0, false
}

// Set writes a named field, masking the value to the field width. Unknown
// names report false.
func (f *FlagsByte) Set(name string, v uint8) bool {
	for _, bf := range EffectFlagFields {
		if bf.Name == name {
			mask := uint8(1<<bf.Width-1) << bf.Shift
			*f = FlagsByte(uint8(*f)&^mask | v<<bf.Shift&mask)
			return true
		}
	}
	return false
}

// CurveEnabled reports whether both timing-curve enable bits are set.
// These bits must never disagree with the presence of the timing-curve
// pointer; the synchronizer maintains that invariant on toggle.
func (f FlagsByte) CurveEnabled() bool {
	return uint8(f)&format.CurveEnableMask == format.CurveEnableMask
}

// SetCurveEnabled sets or clears both timing-curve enable bits together.
func (f *FlagsByte) SetCurveEnabled(on bool) {
	if on {
		*f |= FlagsByte(format.CurveEnableMask)
	} else {
		*f &^= FlagsByte(format.CurveEnableMask)
	}
}
