package effect

import "fmt"

// Shift moves every byte in [start, end) to [start+delta, end+delta) within
// data. The copy direction is chosen so the source is never overwritten
// before it is read: descending for a positive delta, ascending for a
// negative one. A zero delta is a no-op.
//
// The caller picks end to cover all bytes that logically follow the edited
// region. Over-covering is allowed; under-covering silently truncates
// unrelated downstream data, which is why a move outside the addressable
// range fails with ErrWindow instead of clamping.
func Shift(data []byte, start, end, delta int) error {
	if delta == 0 {
		return nil
	}
	if start < 0 || end < start || end > len(data) {
		return fmt.Errorf("shift [%#x,%#x) of %d bytes: %w", start, end, len(data), ErrWindow)
	}
	if start+delta < 0 || end+delta > len(data) {
		return fmt.Errorf("shift [%#x,%#x) by %+d outside store of %d bytes: %w",
			start, end, delta, len(data), ErrWindow)
	}
	if delta > 0 {
		for i := end - 1; i >= start; i-- {
			data[i+delta] = data[i]
		}
	} else {
		for i := start; i < end; i++ {
			data[i+delta] = data[i]
		}
	}
	return nil
}

// RewritePointers returns a header with delta added to every pointer whose
// current value is non-zero and at or past insertionPoint. Zero-valued
// (absent) pointer fields are never modified, regardless of insertionPoint,
// preserving the absent-section invariant. Total is left to the caller.
func RewritePointers(h Header, insertionPoint uint32, delta int) Header {
	out := h
	for _, id := range sectionOrder {
		p := h.Ptr(id)
		if p == 0 || p < insertionPoint {
			continue
		}
		out.SetPtr(id, uint32(int64(p)+int64(delta)))
	}
	return out
}
