package format

import "encoding/binary"

// Little-endian encoding helpers. The container stores every multi-byte field
// in little-endian order.

// PutU16 writes a uint16 value to the buffer at the specified offset.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 value to the buffer at the specified offset.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI16 writes an int16 value to the buffer at the specified offset.
func PutI16(b []byte, off int, v int16) {
	binary.LittleEndian.PutUint16(b[off:off+2], uint16(v))
}

// PutI32 writes an int32 value to the buffer at the specified offset.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// ReadU16 reads a uint16 value from the buffer at the specified offset.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 value from the buffer at the specified offset.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadI16 reads an int16 value from the buffer at the specified offset.
func ReadI16(b []byte, off int) int16 {
	return int16(binary.LittleEndian.Uint16(b[off : off+2]))
}

// ReadI32 reads an int32 value from the buffer at the specified offset.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}
