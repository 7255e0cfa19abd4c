package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// SectionID identifies one of the ten container sections, in file order.
type SectionID int

const (
	SecFrames SectionID = iota
	SecAnimation
	SecScript
	SecParticle
	SecCurveTable
	SecTimingCurve
	SecEffectFlags
	SecTimeline
	SecSoundDef
	SecTexture
)

var sectionOrder = []SectionID{
	SecFrames, SecAnimation, SecScript, SecParticle, SecCurveTable,
	SecTimingCurve, SecEffectFlags, SecTimeline, SecSoundDef, SecTexture,
}

var sectionNames = map[SectionID]string{
	SecFrames:      "frames",
	SecAnimation:   "animation",
	SecScript:      "script",
	SecParticle:    "particle",
	SecCurveTable:  "curve_table",
	SecTimingCurve: "timing_curve",
	SecEffectFlags: "effect_flags",
	SecTimeline:    "timeline",
	SecSoundDef:    "sound_def",
	SecTexture:     "texture",
}

func (id SectionID) String() string {
	if n, ok := sectionNames[id]; ok {
		return n
	}
	return fmt.Sprintf("section(%d)", int(id))
}

// SectionIDs returns every section in file order.
func SectionIDs() []SectionID {
	out := make([]SectionID, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// resizableOrder is the fixed processing order for structural edits. Each
// step's insertion point depends on the previous step having committed its
// pointer updates, so the order is load-bearing.
var resizableOrder = []SectionID{SecScript, SecParticle, SecTimingCurve, SecSoundDef}

// Section is a derived contiguous span within the container.
type Section struct {
	ID     SectionID
	Start  uint32
	Length uint32
}

// SectionsOf derives the ordered section spans from the header. An absent
// timing curve is skipped; the final section runs to total. Fails when the
// present pointers are not ascending or reach past total.
func SectionsOf(h Header, total uint32) ([]Section, error) {
	present := make([]Section, 0, format.PointerCount)
	for _, id := range sectionOrder {
		p := h.Ptr(id)
		if id == SecTimingCurve && p == format.AbsentSentinel {
			continue
		}
		present = append(present, Section{ID: id, Start: p})
	}
	for i := range present {
		end := total
		if i+1 < len(present) {
			end = present[i+1].Start
		}
		if end < present[i].Start {
			return nil, fmt.Errorf("section %s at %#x overlaps next at %#x: %w",
				present[i].ID, present[i].Start, end, format.ErrPointerOrder)
		}
		present[i].Length = end - present[i].Start
	}
	return present, nil
}

// SectionSpan returns the span of one section. Length 0 with ok=false means
// the section is absent.
func SectionSpan(h Header, id SectionID, total uint32) (Section, bool, error) {
	secs, err := SectionsOf(h, total)
	if err != nil {
		return Section{}, false, err
	}
	for _, s := range secs {
		if s.ID == id {
			return s, true, nil
		}
	}
	return Section{}, false, nil
}
