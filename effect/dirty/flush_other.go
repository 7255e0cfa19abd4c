//go:build !linux && !freebsd && !darwin

package dirty

// Platforms without msync support fall back to no-ops; the store's Close
// path is responsible for persistence there.

func msync(_ []byte) error { return nil }

func fdatasync(_ int, _ bool) error { return nil }
