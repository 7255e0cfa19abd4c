package format

import "testing"

// Test_EncodingRoundTrip verifies the little-endian helpers invert each other.
func Test_EncodingRoundTrip(t *testing.T) {
	b := make([]byte, 16)

	PutU16(b, 0, 0xBEEF)
	if got := ReadU16(b, 0); got != 0xBEEF {
		t.Errorf("ReadU16 = %#x, want 0xBEEF", got)
	}

	PutU32(b, 4, 0xDEADBEEF)
	if got := ReadU32(b, 4); got != 0xDEADBEEF {
		t.Errorf("ReadU32 = %#x, want 0xDEADBEEF", got)
	}

	PutI16(b, 8, -12345)
	if got := ReadI16(b, 8); got != -12345 {
		t.Errorf("ReadI16 = %d, want -12345", got)
	}

	PutI32(b, 10, -7654321)
	if got := ReadI32(b, 10); got != -7654321 {
		t.Errorf("ReadI32 = %d, want -7654321", got)
	}
}

// Test_LittleEndianLayout pins the byte order.
func Test_LittleEndianLayout(t *testing.T) {
	b := make([]byte, 4)
	PutU32(b, 0, 0x0A0B0C0D)
	want := []byte{0x0D, 0x0C, 0x0B, 0x0A}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
}
