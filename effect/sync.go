package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/buf"
	"github.com/sprited/effectkit/internal/format"
)

// DirtyTracker receives the byte ranges a transaction touches, so an
// mmap-backed store can flush exactly what changed.
type DirtyTracker interface {
	Add(off, length int)
}

// Warning is a non-fatal condition raised during Apply. The transaction
// continues past it.
type Warning struct {
	Section SectionID
	Message string
}

// ApplyResult reports what a transaction did: the structural delta applied
// per resizable section, and any sections whose write was skipped.
type ApplyResult struct {
	Deltas   map[SectionID]int
	Warnings []Warning
}

// Synchronizer reconciles a Document back into the backing store: the
// apply-all-edits transaction. The caller guarantees exclusive access to the
// store for the duration; there is no rollback. A failure after relocation
// but before the record commit leaves self-consistent offsets with stale
// record bytes, which is a defined partial state rather than corruption.
type Synchronizer struct {
	store Store
	base  int
	dirty DirtyTracker
}

// NewSynchronizer binds a synchronizer to a store and container base.
func NewSynchronizer(store Store, base int) *Synchronizer {
	return &Synchronizer{store: store, base: base}
}

// SetDirtyTracker routes touched byte ranges to t. Nil disables tracking.
func (s *Synchronizer) SetDirtyTracker(t DirtyTracker) { s.dirty = t }

func (s *Synchronizer) mark(off, length int) {
	if s.dirty != nil && length > 0 {
		s.dirty.Add(off, length)
	}
}

// Apply runs the transaction:
//
//  1. Refresh the header directly from the store, discarding any cached copy.
//  2. Refuse the transaction when the refreshed header fails validation;
//     no span can be trusted on an out-of-order pointer table.
//  3. Process resizable sections in fixed file order (script, particle,
//     timing-curve toggle, sound). Each non-zero delta shifts the trailing
//     bytes, rewrites the downstream pointers, and writes the header back
//     before the next section is examined, so every step sees an
//     authoritative layout.
//  4. Commit every present section's record data into its (possibly
//     relocated) span. A section that grew beyond a span that was not
//     relocated is skipped with a warning; everything else still commits.
func (s *Synchronizer) Apply(doc *Document) (*ApplyResult, error) {
	res := &ApplyResult{Deltas: make(map[SectionID]int)}

	h, err := ReadHeader(s.store, s.base)
	if err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}

	// Section spans cannot be derived from a layout that fails validation,
	// and both the structural pass and the record commit need them.
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("apply: %w: %w", ErrStructuralEdit, err)
	}

	for _, id := range resizableOrder {
		if id == SecTimingCurve {
			if err := s.toggleCurve(doc, res); err != nil {
				return res, err
			}
			continue
		}
		if err := s.resizeSection(id, doc, res); err != nil {
			return res, err
		}
	}

	if err := s.commitRecords(doc, res); err != nil {
		return res, err
	}
	return res, nil
}

// resizeSection brings one variable section's committed span to the length
// the model requires. The delta is computed against a freshly-read header.
func (s *Synchronizer) resizeSection(id SectionID, doc *Document, res *ApplyResult) error {
	h, err := ReadHeader(s.store, s.base)
	if err != nil {
		return fmt.Errorf("resize %s: %w", id, err)
	}
	span, ok, err := SectionSpan(h, id, h.Total)
	if err != nil {
		return fmt.Errorf("resize %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("resize %s: section absent", id)
	}
	delta := doc.RequiredLen(id) - int(span.Length)
	res.Deltas[id] = delta
	if delta == 0 {
		return nil
	}
	oldEnd := int(span.Start) + int(span.Length)
	if _, err := s.relocate(h, oldEnd, delta); err != nil {
		return fmt.Errorf("resize %s: %w", id, err)
	}
	return nil
}

// toggleCurve adds or removes the optional 600-byte timing-curve region.
// Add inserts immediately before effect_flags, fills the region with the
// (2,2) nibble pair, and points the previously-zero pointer at the insertion
// point. Remove inverts the shift and resets the pointer to zero. Either way
// the two enable bits in the flags byte are kept in agreement with the
// pointer; the updated flags byte reaches the store in the commit pass.
func (s *Synchronizer) toggleCurve(doc *Document, res *ApplyResult) error {
	h, err := ReadHeader(s.store, s.base)
	if err != nil {
		return fmt.Errorf("timing curve: %w", err)
	}
	present := h.TimingCurve != format.AbsentSentinel
	want := doc.TimingCurve != nil

	switch {
	case want && !present:
		res.Deltas[SecTimingCurve] = format.TimingCurveRegionSize
		insert := h.EffectFlags
		h2, err := s.relocate(h, int(insert), format.TimingCurveRegionSize)
		if err != nil {
			return fmt.Errorf("timing curve add: %w", err)
		}
		h2.TimingCurve = insert
		data := s.store.Bytes()
		region := data[s.base+int(insert) : s.base+int(insert)+format.TimingCurveRegionSize]
		for i := range region {
			region[i] = format.TimingCurveFill
		}
		if err := h2.Write(data[s.base:]); err != nil {
			return fmt.Errorf("timing curve add: %w", err)
		}
		s.mark(s.base, format.HeaderSize)
		s.mark(s.base+int(insert), format.TimingCurveRegionSize)
		doc.Flags.SetCurveEnabled(true)

	case !want && present:
		res.Deltas[SecTimingCurve] = -format.TimingCurveRegionSize
		oldEnd := int(h.TimingCurve) + format.TimingCurveRegionSize
		h2, err := s.relocate(h, oldEnd, -format.TimingCurveRegionSize)
		if err != nil {
			return fmt.Errorf("timing curve remove: %w", err)
		}
		h2.TimingCurve = format.AbsentSentinel
		data := s.store.Bytes()
		if err := h2.Write(data[s.base:]); err != nil {
			return fmt.Errorf("timing curve remove: %w", err)
		}
		s.mark(s.base, format.HeaderSize)
		doc.Flags.SetCurveEnabled(false)

	default:
		res.Deltas[SecTimingCurve] = 0
	}
	return nil
}

// relocate performs one structural edit against the store: shift the bytes
// from the insertion point through end-of-known-data by delta, rewrite every
// downstream pointer, and write the updated header back so the next step
// reads an authoritative layout. insertRel is the first byte past the edited
// section's old committed span, relative to the container base.
//
// When the store carries trailing slack (a live-process window), the shift
// over-covers by up to TrailingShiftWindow extra bytes past the known end.
// Over-covering is harmless; the fatal case is a window too small to take the
// shifted bytes at all, which surfaces as ErrWindow before anything moves.
func (s *Synchronizer) relocate(h Header, insertRel, delta int) (Header, error) {
	oldLimit := s.store.Limit()
	knownEnd := oldLimit

	if delta > 0 {
		if err := s.store.Resize(oldLimit + delta); err != nil {
			return h, err
		}
	}
	data := s.store.Bytes()

	shiftEnd := knownEnd
	grow := delta
	if grow < 0 {
		grow = 0
	}
	if slack := len(data) - (knownEnd + grow); slack > 0 {
		extra := slack
		if extra > format.TrailingShiftWindow {
			extra = format.TrailingShiftWindow
		}
		shiftEnd += extra
	}

	if err := Shift(data, s.base+insertRel, shiftEnd, delta); err != nil {
		return h, err
	}
	if delta < 0 {
		if err := s.store.Resize(oldLimit + delta); err != nil {
			return h, err
		}
		// A shrink can remap the backing region; the pre-resize slice
		// must not be written through after this point.
		data = s.store.Bytes()
	}

	h2 := RewritePointers(h, uint32(insertRel), delta)
	h2.Total = uint32(s.store.Limit() - s.base)
	if err := h2.Write(data[s.base:]); err != nil {
		return h, err
	}
	s.mark(s.base, format.HeaderSize)
	if delta > 0 {
		s.mark(s.base+insertRel, shiftEnd+delta-insertRel-s.base)
	} else {
		s.mark(s.base+insertRel+delta, shiftEnd-(s.base+insertRel))
	}
	return h2, nil
}

// commitRecords serializes every section's current record set into its span.
func (s *Synchronizer) commitRecords(doc *Document, res *ApplyResult) error {
	h, err := ReadHeader(s.store, s.base)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	secs, err := SectionsOf(h, h.Total)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	data := s.store.Bytes()
	for _, sec := range secs {
		enc := doc.EncodeSection(sec.ID)
		if len(enc) == 0 {
			continue
		}
		if len(enc) > int(sec.Length) {
			// The section grew beyond a span that was not relocated.
			// Growth past the pre-computed relocation is not attempted;
			// skip the write and report it.
			res.Warnings = append(res.Warnings, Warning{
				Section: sec.ID,
				Message: fmt.Sprintf("needs %d bytes but span holds %d; write skipped",
					len(enc), sec.Length),
			})
			continue
		}
		start := s.base + int(sec.Start)
		if !buf.Has(data, start, len(enc)) {
			return fmt.Errorf("commit %s: %w", sec.ID, ErrSectionBounds)
		}
		copy(data[start:], enc)
		s.mark(start, len(enc))
	}
	return nil
}
