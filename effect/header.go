package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// Header is the fixed 10-entry pointer table at the base of the container,
// plus the total byte length of the image. Every pointer is a byte offset
// relative to the container base. Offsets are monotonically non-decreasing in
// field order; TimingCurve alone may carry the absent sentinel 0, in which
// case the pointers after it are unaffected by its absence.
type Header struct {
	Frames      uint32
	Animation   uint32
	Script      uint32
	Particle    uint32
	CurveTable  uint32
	TimingCurve uint32
	EffectFlags uint32
	Timeline    uint32
	SoundDef    uint32
	Texture     uint32

	Total uint32
}

// ParseHeader decodes the pointer table at the start of b. Total is left for
// the caller, who knows the image extent.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < format.HeaderSize {
		return Header{}, fmt.Errorf("effect header: %w", format.ErrTruncated)
	}
	return Header{
		Frames:      format.ReadU32(b, format.FramesPtrOffset),
		Animation:   format.ReadU32(b, format.AnimationPtrOffset),
		Script:      format.ReadU32(b, format.ScriptPtrOffset),
		Particle:    format.ReadU32(b, format.ParticlePtrOffset),
		CurveTable:  format.ReadU32(b, format.CurveTablePtrOffset),
		TimingCurve: format.ReadU32(b, format.TimingCurvePtrOffset),
		EffectFlags: format.ReadU32(b, format.EffectFlagsPtrOffset),
		Timeline:    format.ReadU32(b, format.TimelinePtrOffset),
		SoundDef:    format.ReadU32(b, format.SoundDefPtrOffset),
		Texture:     format.ReadU32(b, format.TexturePtrOffset),
	}, nil
}

// ReadHeader parses the header from the store at base. The returned header's
// Total reflects the store's current known-data limit. This is the
// authoritative read every structural operation starts from; callers must not
// reuse a header cached before an external reload.
func ReadHeader(store Store, base int) (Header, error) {
	data := store.Bytes()
	if base < 0 || base+format.HeaderSize > len(data) {
		return Header{}, fmt.Errorf("effect header at %#x: %w", base, format.ErrTruncated)
	}
	h, err := ParseHeader(data[base:])
	if err != nil {
		return Header{}, err
	}
	if lim := store.Limit(); lim > base {
		h.Total = uint32(lim - base)
	}
	return h, nil
}

// Write encodes the pointer table into b. Total is not stored in the image.
func (h Header) Write(b []byte) error {
	if len(b) < format.HeaderSize {
		return fmt.Errorf("effect header: %w", format.ErrTruncated)
	}
	format.PutU32(b, format.FramesPtrOffset, h.Frames)
	format.PutU32(b, format.AnimationPtrOffset, h.Animation)
	format.PutU32(b, format.ScriptPtrOffset, h.Script)
	format.PutU32(b, format.ParticlePtrOffset, h.Particle)
	format.PutU32(b, format.CurveTablePtrOffset, h.CurveTable)
	format.PutU32(b, format.TimingCurvePtrOffset, h.TimingCurve)
	format.PutU32(b, format.EffectFlagsPtrOffset, h.EffectFlags)
	format.PutU32(b, format.TimelinePtrOffset, h.Timeline)
	format.PutU32(b, format.SoundDefPtrOffset, h.SoundDef)
	format.PutU32(b, format.TexturePtrOffset, h.Texture)
	return nil
}

// Ptr returns the pointer field for the given section.
func (h Header) Ptr(id SectionID) uint32 {
	switch id {
	case SecFrames:
		return h.Frames
	case SecAnimation:
		return h.Animation
	case SecScript:
		return h.Script
	case SecParticle:
		return h.Particle
	case SecCurveTable:
		return h.CurveTable
	case SecTimingCurve:
		return h.TimingCurve
	case SecEffectFlags:
		return h.EffectFlags
	case SecTimeline:
		return h.Timeline
	case SecSoundDef:
		return h.SoundDef
	case SecTexture:
		return h.Texture
	}
	return 0
}

// SetPtr updates the pointer field for the given section.
func (h *Header) SetPtr(id SectionID, v uint32) {
	switch id {
	case SecFrames:
		h.Frames = v
	case SecAnimation:
		h.Animation = v
	case SecScript:
		h.Script = v
	case SecParticle:
		h.Particle = v
	case SecCurveTable:
		h.CurveTable = v
	case SecTimingCurve:
		h.TimingCurve = v
	case SecEffectFlags:
		h.EffectFlags = v
	case SecTimeline:
		h.Timeline = v
	case SecSoundDef:
		h.SoundDef = v
	case SecTexture:
		h.Texture = v
	}
}

// Validate checks that every present pointer is no smaller than its
// predecessor. The absent timing curve is skipped. A failure is non-fatal for
// plain editing, but structural edits refuse to run until it is resolved.
func (h Header) Validate() error {
	prev := uint32(0)
	prevID := SectionID(-1)
	for _, id := range sectionOrder {
		p := h.Ptr(id)
		if id == SecTimingCurve && p == format.AbsentSentinel {
			continue
		}
		if p < prev {
			return fmt.Errorf("%s (%#x) before %s (%#x): %w",
				id, p, prevID, prev, format.ErrPointerOrder)
		}
		prev = p
		prevID = id
	}
	if h.Total != 0 && prev > h.Total {
		return fmt.Errorf("%s (%#x) beyond total %#x: %w",
			prevID, prev, h.Total, format.ErrPointerOrder)
	}
	return nil
}
