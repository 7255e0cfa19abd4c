package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternBuf(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 13)
	}
	return b
}

func TestShift_Noop(t *testing.T) {
	b := patternBuf(64)
	want := append([]byte(nil), b...)
	require.NoError(t, Shift(b, 8, 32, 0))
	assert.Equal(t, want, b)
}

func TestShift_PositiveOverlapSafe(t *testing.T) {
	// Shift a region forward by less than its own length; a naive ascending
	// copy would read already-overwritten source bytes.
	b := patternBuf(64)
	orig := append([]byte(nil), b...)
	require.NoError(t, Shift(b, 8, 40, 4))
	for i := 8; i < 40; i++ {
		assert.Equal(t, orig[i], b[i+4], "byte %d", i)
	}
}

func TestShift_NegativeOverlapSafe(t *testing.T) {
	b := patternBuf(64)
	orig := append([]byte(nil), b...)
	require.NoError(t, Shift(b, 8, 40, -4))
	for i := 8; i < 40; i++ {
		assert.Equal(t, orig[i], b[i-4], "byte %d", i)
	}
}

func TestShift_Inverse(t *testing.T) {
	// shift(s, e, +D) then shift(s+D, e+D, -D) restores the range exactly.
	const s, e, d = 16, 48, 12
	b := patternBuf(96)
	orig := append([]byte(nil), b...)
	require.NoError(t, Shift(b, s, e, d))
	require.NoError(t, Shift(b, s+d, e+d, -d))
	assert.Equal(t, orig[s:e], b[s:e])
}

func TestShift_WindowErrors(t *testing.T) {
	b := patternBuf(32)
	require.ErrorIs(t, Shift(b, 8, 32, 4), ErrWindow, "forward shift past the end")
	require.ErrorIs(t, Shift(b, 2, 16, -4), ErrWindow, "backward shift past the start")
	require.ErrorIs(t, Shift(b, 8, 40, 1), ErrWindow, "region end past the buffer")
	require.ErrorIs(t, Shift(b, 16, 8, 1), ErrWindow, "inverted region")
}

func TestRewritePointers_EmitterInsert(t *testing.T) {
	// Inserting one 196-byte emitter: the insertion point is the first byte
	// past the old particle span (0x200). Everything at or past it moves;
	// everything before it, and the absent timing curve, stay put.
	h := sampleHeader()
	got := RewritePointers(h, 0x200, 196)

	assert.Equal(t, uint32(0x28), got.Frames)
	assert.Equal(t, uint32(0x50), got.Animation)
	assert.Equal(t, uint32(0x60), got.Script)
	assert.Equal(t, uint32(0x90), got.Particle)
	assert.Equal(t, uint32(0x200+196), got.CurveTable)
	assert.Equal(t, uint32(0), got.TimingCurve, "absent sentinel is never altered")
	assert.Equal(t, uint32(0x2C0+196), got.EffectFlags)
	assert.Equal(t, uint32(0x300+196), got.Timeline)
	assert.Equal(t, uint32(0x1400+196), got.SoundDef)
	assert.Equal(t, uint32(0x1800+196), got.Texture)
}

func TestRewritePointers_ZeroNeverAltered(t *testing.T) {
	h := sampleHeader()
	for _, point := range []uint32{0, 1, 0x90, 0x1800, 0xFFFF} {
		for _, delta := range []int{-600, -1, 1, 196, 600} {
			got := RewritePointers(h, point, delta)
			assert.Equal(t, uint32(0), got.TimingCurve,
				"insertionPoint=%#x delta=%d", point, delta)
		}
	}
}

func TestRewritePointers_Boundary(t *testing.T) {
	h := sampleHeader()

	// p == insertionPoint moves.
	got := RewritePointers(h, 0x90, 8)
	assert.Equal(t, uint32(0x98), got.Particle)

	// p < insertionPoint does not.
	got = RewritePointers(h, 0x91, 8)
	assert.Equal(t, uint32(0x90), got.Particle)
}

func TestRewritePointers_NegativeDelta(t *testing.T) {
	h := sampleHeader()
	got := RewritePointers(h, 0x300, -0x40)
	assert.Equal(t, uint32(0x2C0), got.Timeline)
	assert.Equal(t, uint32(0x13C0), got.SoundDef)
	assert.Equal(t, uint32(0x2C0), got.EffectFlags, "below the insertion point")
}
