package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/mmfile"
)

// Store is the backing byte sequence under edit. Limit is the end of known
// container data; Cap is the physically addressable extent. For a file image
// the two coincide. For a window into a live process the capacity includes
// trailing slack the relocation engine may shift into.
type Store interface {
	// Bytes returns the addressable bytes, Cap() long.
	Bytes() []byte
	// Limit returns the end of known container data.
	Limit() int
	// Cap returns the physically addressable extent.
	Cap() int
	// Resize moves the known-data limit to n, growing the backing region
	// when the store supports it.
	Resize(n int) error
}

// ByteStore is a growable in-memory store, typically holding a loaded file
// image. The zero value is an empty store.
type ByteStore struct {
	b []byte
}

// NewByteStore wraps b. The store takes ownership of the slice.
func NewByteStore(b []byte) *ByteStore { return &ByteStore{b: b} }

func (s *ByteStore) Bytes() []byte { return s.b }
func (s *ByteStore) Limit() int    { return len(s.b) }
func (s *ByteStore) Cap() int      { return len(s.b) }

// Resize grows or shrinks the image. Grown bytes are zeroed.
func (s *ByteStore) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("resize to %d: %w", n, ErrWindow)
	}
	switch {
	case n <= len(s.b):
		s.b = s.b[:n]
	case n <= cap(s.b):
		old := len(s.b)
		s.b = s.b[:n]
		clear(s.b[old:])
	default:
		grown := make([]byte, n)
		copy(grown, s.b)
		s.b = grown
	}
	return nil
}

// RegionStore is a fixed-capacity window over a live process image. The
// window cannot grow; structural edits draw on the slack between Limit and
// Cap, and fail with ErrWindow when it runs out.
type RegionStore struct {
	buf   []byte
	limit int
}

// NewRegionStore wraps a fixed window. limit is the best-known end of
// container data within it; pass len(buf) when unknown.
func NewRegionStore(buf []byte, limit int) (*RegionStore, error) {
	if limit < 0 || limit > len(buf) {
		return nil, fmt.Errorf("limit %d outside window of %d: %w", limit, len(buf), ErrWindow)
	}
	return &RegionStore{buf: buf, limit: limit}, nil
}

func (s *RegionStore) Bytes() []byte { return s.buf }
func (s *RegionStore) Limit() int    { return s.limit }
func (s *RegionStore) Cap() int      { return len(s.buf) }

// Resize moves the known-data limit within the fixed window.
func (s *RegionStore) Resize(n int) error {
	if n < 0 || n > len(s.buf) {
		return fmt.Errorf("resize to %d in window of %d: %w", n, len(s.buf), ErrWindow)
	}
	s.limit = n
	return nil
}

// FileStore is an mmap-backed store editing a container file in place.
type FileStore struct {
	m    *mmfile.Mapping
	path string
}

// OpenFile maps the container at path read-write.
func OpenFile(path string) (*FileStore, error) {
	m, err := mmfile.MapRW(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{m: m, path: path}, nil
}

func (s *FileStore) Bytes() []byte { return s.m.Data }
func (s *FileStore) Limit() int    { return len(s.m.Data) }
func (s *FileStore) Cap() int      { return len(s.m.Data) }

// FD returns the descriptor backing the mapping, for flush syscalls.
func (s *FileStore) FD() int { return s.m.FD() }

// Resize truncates the file and remaps it.
func (s *FileStore) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("resize to %d: %w", n, ErrWindow)
	}
	return s.m.Remap(n)
}

// Close unmaps the file.
func (s *FileStore) Close() error { return s.m.Close() }
