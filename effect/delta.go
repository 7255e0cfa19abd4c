package effect

import "fmt"

// Calculator computes per-section size deltas between the parsed model and
// the bytes currently committed in the backing store.
type Calculator struct {
	store Store
	base  int
}

// NewCalculator binds a calculator to a store and container base.
func NewCalculator(store Store, base int) *Calculator {
	return &Calculator{store: store, base: base}
}

// Delta returns RequiredLen(model) - committedLen for the section. The
// committed length is re-derived from the store's current header on every
// call, never from a cached layout: the store may have been reloaded or
// externally mutated (a savestate reload, for one) since the last parse, and
// trusting an old cached section length is a known bug class. A zero return
// means no structural change is needed; the call is cheap and side-effect-free.
func (c *Calculator) Delta(id SectionID, doc *Document) (int, error) {
	h, err := ReadHeader(c.store, c.base)
	if err != nil {
		return 0, fmt.Errorf("delta %s: %w", id, err)
	}
	committed, err := committedLen(h, id)
	if err != nil {
		return 0, fmt.Errorf("delta %s: %w", id, err)
	}
	return doc.RequiredLen(id) - committed, nil
}

// committedLen is the byte length the store currently allots the section.
// An absent timing curve commits zero bytes.
func committedLen(h Header, id SectionID) (int, error) {
	span, ok, err := SectionSpan(h, id, h.Total)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return int(span.Length), nil
}
