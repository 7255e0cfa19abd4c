package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrPointerOrder indicates header pointers are not monotonically non-decreasing.
	ErrPointerOrder = errors.New("format: header pointers out of order")
	// ErrUnknownOpcode indicates an opcode with no entry in the size table.
	ErrUnknownOpcode = errors.New("format: unknown opcode")
)
