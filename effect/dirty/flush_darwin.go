//go:build darwin

package dirty

import "golang.org/x/sys/unix"

// msync flushes a memory region to disk.
func msync(data []byte) error {
	return unix.Msync(data, unix.MS_SYNC)
}

// fdatasync syncs the descriptor. macOS fsync does not guarantee the data
// reached the platter; F_FULLFSYNC does, at a latency cost, so it is only
// issued for FlushFull.
func fdatasync(fd int, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(fd)
}
