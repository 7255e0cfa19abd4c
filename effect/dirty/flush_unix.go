//go:build linux || freebsd

package dirty

import "golang.org/x/sys/unix"

// msync flushes a memory region to disk.
func msync(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync syncs the descriptor. fdatasync(2) is sufficient on Linux and
// FreeBSD; the fullfsync parameter only matters on macOS.
func fdatasync(fd int, _ bool) error {
	return unix.Fdatasync(fd)
}
