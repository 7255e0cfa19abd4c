package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/buf"
)

// Session owns one open container: the backing store, the container base
// offset within it, and the parsed Document. All engine state lives here;
// there are no package-level globals, and a session must not be shared
// between concurrent writers.
type Session struct {
	Store Store
	Base  int

	// Header is the layout as of the last Load or Apply. It is a
	// convenience snapshot only; structural operations always re-read
	// from the store.
	Header Header

	// Doc is the parsed model, mutated freely by the editor.
	Doc *Document

	// LayoutErr records a non-fatal header validation failure found at
	// load time. Editing may continue; structural edits refuse until the
	// inconsistency is resolved.
	LayoutErr error

	sync *Synchronizer
}

// Load opens an editing session over the container at base within store,
// parsing every present section into the Document.
func Load(store Store, base int) (*Session, error) {
	h, err := ReadHeader(store, base)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	s := &Session{
		Store:     store,
		Base:      base,
		Header:    h,
		Doc:       &Document{},
		LayoutErr: h.Validate(),
		sync:      NewSynchronizer(store, base),
	}
	if s.LayoutErr != nil {
		// Spans cannot be derived from an out-of-order pointer table;
		// the session carries an empty model and the flagged error.
		return s, nil
	}
	if err := s.parseSections(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return s, nil
}

func (s *Session) parseSections() error {
	secs, err := SectionsOf(s.Header, s.Header.Total)
	if err != nil {
		return err
	}
	data := s.Store.Bytes()
	for _, sec := range secs {
		start := s.Base + int(sec.Start)
		span, ok := buf.Slice(data, start, int(sec.Length))
		if !ok {
			return fmt.Errorf("section %s at %#x+%d: %w", sec.ID, start, sec.Length, ErrSectionBounds)
		}
		var err error
		switch sec.ID {
		case SecFrames:
			s.Doc.Sequences, err = DecodeSequence(span)
		case SecAnimation:
			s.Doc.ColorTracks, err = DecodeColorTracks(span)
		case SecScript:
			s.Doc.Script, err = DecodeScript(span)
		case SecParticle:
			s.Doc.Emitters, err = DecodeEmitters(span)
		case SecCurveTable:
			s.Doc.Camera, err = DecodeCamera(span)
		case SecTimingCurve:
			s.Doc.TimingCurve, err = DecodeTimingCurve(span)
		case SecEffectFlags:
			if len(span) == 0 {
				break
			}
			s.Doc.Flags = FlagsByte(span[0])
			s.Doc.FlagsTail = append([]byte(nil), span[1:]...)
		case SecTimeline:
			s.Doc.Timeline, err = DecodeTimeline(span)
		case SecSoundDef:
			s.Doc.Sound, err = DecodeSound(span)
		case SecTexture:
			s.Doc.Texture = append([]byte(nil), span...)
		}
		if err != nil {
			return fmt.Errorf("section %s: %w", sec.ID, err)
		}
	}
	return nil
}

// Delta reports the pending structural delta for one resizable section,
// against the store's current layout.
func (s *Session) Delta(id SectionID) (int, error) {
	return NewCalculator(s.Store, s.Base).Delta(id, s.Doc)
}

// SetDirtyTracker routes the ranges touched by Apply to t.
func (s *Session) SetDirtyTracker(t DirtyTracker) { s.sync.SetDirtyTracker(t) }

// Apply reconciles the Document back into the store and refreshes the
// session's header snapshot. See Synchronizer.Apply for the transaction
// semantics.
func (s *Session) Apply() (*ApplyResult, error) {
	res, err := s.sync.Apply(s.Doc)
	if err != nil {
		return res, err
	}
	h, err := ReadHeader(s.Store, s.Base)
	if err != nil {
		return res, fmt.Errorf("apply refresh: %w", err)
	}
	s.Header = h
	s.LayoutErr = h.Validate()
	return res, nil
}
