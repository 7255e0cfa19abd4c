// Package dirty tracks and flushes dirty byte ranges in mmap-backed
// container stores.
//
// The tracker maintains a list of dirty ranges, coalesces them into
// page-aligned non-overlapping ranges, and flushes them with
// platform-specific system calls (msync on Unix).
package dirty

import (
	"context"
	"sort"
)

const (
	// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
	defaultRangeCapacity = 64

	// standardPageSize is the typical OS page size.
	standardPageSize = 4096
)

// FlushMode controls durability guarantees for Commit.
type FlushMode int

const (
	// FlushAuto msyncs dirty ranges and fdatasyncs the descriptor.
	FlushAuto FlushMode = iota

	// FlushDataOnly msyncs dirty ranges only; the caller fdatasyncs later.
	// Use this when batching several transactions together.
	FlushDataOnly

	// FlushFull msyncs, fdatasyncs, and on macOS adds F_FULLFSYNC.
	// Use this for power-loss sensitive workflows.
	FlushFull
)

// Target is the store a tracker flushes: the mapped bytes plus the
// descriptor backing them. A Target without a descriptor returns -1.
type Target interface {
	Bytes() []byte
	FD() int
}

// Range is one dirty byte range in absolute store offsets.
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges and flushes them efficiently.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	target   Target
	ranges   []Range
	pageSize int64
}

// NewTracker creates a tracker for the given store.
func NewTracker(target Target) *Tracker {
	return &Tracker{
		target:   target,
		ranges:   make([]Range, 0, defaultRangeCapacity),
		pageSize: standardPageSize,
	}
}

// Add records a dirty range. The range is page-aligned and coalesced with
// the others at flush time; Add itself only appends.
func (t *Tracker) Add(off, length int) {
	t.ranges = append(t.ranges, Range{Off: int64(off), Len: int64(length)})
}

// Flush msyncs every coalesced dirty range and clears the list. The context
// can cancel between ranges; a cancelled flush may have synced some ranges
// and not others.
func (t *Tracker) Flush(ctx context.Context) error {
	if len(t.ranges) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data := t.target.Bytes()
	if len(data) == 0 {
		t.ranges = t.ranges[:0]
		return nil
	}
	for _, r := range t.coalesce() {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := int(r.Off)
		end := int(r.Off + r.Len)
		if start >= len(data) {
			continue
		}
		if end > len(data) {
			end = len(data)
		}
		if err := msync(data[start:end]); err != nil {
			return err
		}
	}
	t.ranges = t.ranges[:0]
	return nil
}

// Commit flushes the dirty ranges and then syncs the descriptor according
// to mode.
func (t *Tracker) Commit(ctx context.Context, mode FlushMode) error {
	if err := t.Flush(ctx); err != nil {
		return err
	}
	if mode == FlushDataOnly {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	fd := t.target.FD()
	if fd < 0 {
		return nil
	}
	return fdatasync(fd, mode == FlushFull)
}

// Reset drops all tracked ranges without flushing.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// Pending returns the raw, uncoalesced ranges (for tests).
func (t *Tracker) Pending() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Coalesced returns the page-aligned, sorted, merged ranges that a flush
// would sync (for tests).
func (t *Tracker) Coalesced() []Range {
	return t.coalesce()
}

// coalesce page-aligns all ranges, sorts them, and merges overlapping or
// adjacent ones.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}
	aligned := make([]Range, len(t.ranges))
	for i, r := range t.ranges {
		start := r.Off / t.pageSize * t.pageSize
		end := r.Off + r.Len
		if end%t.pageSize != 0 {
			end = (end/t.pageSize + 1) * t.pageSize
		}
		aligned[i] = Range{Off: start, Len: end - start}
	}
	sort.Slice(aligned, func(i, j int) bool { return aligned[i].Off < aligned[j].Off })

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.Off+current.Len {
			if end := next.Off + next.Len; end > current.Off+current.Len {
				current.Len = end - current.Off
			}
		} else {
			merged = append(merged, current)
			current = next
		}
	}
	return append(merged, current)
}
