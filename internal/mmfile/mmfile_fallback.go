//go:build !unix

package mmfile

import "os"

// Mapping is an in-memory copy of a file on platforms without mmap support.
// Edits are written back on Close.
type Mapping struct {
	Data []byte
	path string
	mode os.FileMode
}

// MapRW loads the file at path into memory.
func MapRW(path string) (*Mapping, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{Data: data, path: path, mode: info.Mode()}, nil
}

// FD returns -1; the fallback mapping has no descriptor to sync.
func (m *Mapping) FD() int { return -1 }

// Remap resizes the in-memory buffer. Grown bytes are zeroed.
func (m *Mapping) Remap(newSize int) error {
	if newSize <= len(m.Data) {
		m.Data = m.Data[:newSize]
		return nil
	}
	grown := make([]byte, newSize)
	copy(grown, m.Data)
	m.Data = grown
	return nil
}

// Close writes the buffer back to the file.
func (m *Mapping) Close() error {
	if m == nil || m.Data == nil {
		return nil
	}
	err := os.WriteFile(m.path, m.Data, m.mode)
	m.Data = nil
	return err
}
