//go:build unix

// Package mmfile maps container files into memory for in-place editing.
package mmfile

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Mapping is a writable memory-mapped view of a file.
type Mapping struct {
	Data []byte
	f    *os.File
}

// MapRW maps the file at path read-write and shared, so byte stores backed by
// the mapping edit the file in place.
func MapRW(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mapping{Data: []byte{}, f: f}, nil
	}
	if size > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(size),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Mapping{Data: data, f: f}, nil
}

// FD returns the file descriptor backing the mapping, or -1.
func (m *Mapping) FD() int {
	if m == nil || m.f == nil {
		return -1
	}
	return int(m.f.Fd())
}

// Remap truncates the file to newSize and maps the new extent. The old view
// is invalid once Remap returns.
func (m *Mapping) Remap(newSize int) error {
	if m == nil || m.f == nil {
		return fmt.Errorf("mmfile: remap on closed mapping")
	}
	if len(m.Data) > 0 {
		if err := syscall.Munmap(m.Data); err != nil && !errors.Is(err, syscall.EINVAL) {
			return err
		}
		m.Data = nil
	}
	if err := m.f.Truncate(int64(newSize)); err != nil {
		return err
	}
	if newSize == 0 {
		m.Data = []byte{}
		return nil
	}
	data, err := syscall.Mmap(int(m.f.Fd()), 0, newSize,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}

// Close unmaps the view and closes the file. Double-unmap is a no-op.
func (m *Mapping) Close() error {
	if m == nil {
		return nil
	}
	var first error
	if len(m.Data) > 0 {
		err := syscall.Munmap(m.Data)
		if err != nil && !errors.Is(err, syscall.EINVAL) {
			first = err
		}
		m.Data = nil
	}
	if m.f != nil {
		if err := m.f.Close(); err != nil && first == nil {
			first = err
		}
		m.f = nil
	}
	return first
}
