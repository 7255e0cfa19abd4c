package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprited/effectkit/internal/format"
)

func TestLoad_ParsesEverySection(t *testing.T) {
	store := buildContainer(t, true)
	sess, err := Load(store, 0)
	require.NoError(t, err)
	require.NoError(t, sess.LayoutErr)

	assert.Len(t, sess.Doc.Sequences, 2)
	assert.Len(t, sess.Doc.ColorTracks, 1)
	assert.Len(t, sess.Doc.Script, 2)
	assert.Len(t, sess.Doc.Emitters, 1)
	assert.Len(t, sess.Doc.Camera, 2)
	require.NotNil(t, sess.Doc.TimingCurve)
	assert.True(t, sess.Doc.Flags.CurveEnabled())
	assert.Equal(t, []byte{0xEE, 0xEF, 0xF0}, sess.Doc.FlagsTail)
	assert.Len(t, sess.Doc.Timeline, 1)
	assert.Len(t, sess.Doc.Sound, 2)
	assert.Equal(t, testTexture(), sess.Doc.Texture)
}

func TestLoad_AbsentCurve(t *testing.T) {
	sess, err := Load(buildContainer(t, false), 0)
	require.NoError(t, err)
	assert.Nil(t, sess.Doc.TimingCurve)
	assert.False(t, sess.Doc.Flags.CurveEnabled())
}

func TestLoad_BrokenLayoutFlagsButDoesNotFail(t *testing.T) {
	store := buildContainer(t, false)
	h, err := ReadHeader(store, 0)
	require.NoError(t, err)
	h.Timeline = 0x10 // before every other pointer
	require.NoError(t, h.Write(store.Bytes()))

	sess, err := Load(store, 0)
	require.NoError(t, err, "a broken layout is flagged, not fatal")
	require.ErrorIs(t, sess.LayoutErr, format.ErrPointerOrder)
	assert.Empty(t, sess.Doc.Emitters, "no spans can be parsed from a broken table")

	// Structural work stays refused until the layout is repaired.
	sess.Doc.Emitters = append(sess.Doc.Emitters, Emitter{})
	_, err = sess.Apply()
	require.ErrorIs(t, err, ErrStructuralEdit)
}

func TestLoad_TruncatedHeader(t *testing.T) {
	_, err := Load(NewByteStore(make([]byte, format.HeaderSize-4)), 0)
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestLoad_NonZeroBase(t *testing.T) {
	// The container may sit anywhere inside a larger image; all pointers
	// are base-relative.
	img := buildContainer(t, false).Bytes()
	const base = 0x40
	padded := make([]byte, base+len(img))
	copy(padded[base:], img)
	store, err := NewRegionStore(padded, base+len(img))
	require.NoError(t, err)

	sess, err := Load(store, base)
	require.NoError(t, err)
	require.NoError(t, sess.LayoutErr)
	assert.Len(t, sess.Doc.Emitters, 1)
	assert.Equal(t, testTexture(), sess.Doc.Texture)
}

func TestSession_ApplyRefreshesHeader(t *testing.T) {
	store := buildContainer(t, false)
	sess, err := Load(store, 0)
	require.NoError(t, err)
	before := sess.Header

	sess.Doc.Emitters = append(sess.Doc.Emitters, Emitter{})
	_, err = sess.Apply()
	require.NoError(t, err)

	assert.Equal(t, before.Particle, sess.Header.Particle)
	assert.Equal(t, before.Texture+format.EmitterSize, sess.Header.Texture)
	assert.Equal(t, before.Total+format.EmitterSize, sess.Header.Total)
	assert.NoError(t, sess.LayoutErr)
}

func TestSession_RoundTripPreservesUnknownBytes(t *testing.T) {
	// Raw regions the model does not name (emitter padding, flags tail,
	// texture blob) must survive load, edit, apply untouched.
	store := buildContainer(t, true)
	sess, err := Load(store, 0)
	require.NoError(t, err)

	sess.Doc.Emitters[0].Set("kind", 7)
	_, err = sess.Apply()
	require.NoError(t, err)

	h, err := ReadHeader(store, 0)
	require.NoError(t, err)
	data := store.Bytes()

	want := testEmitter(0x10)
	want[0] = 7
	assert.Equal(t, want, data[h.Particle:h.Particle+format.EmitterSize])
	assert.Equal(t, []byte{0xEE, 0xEF, 0xF0}, data[h.EffectFlags+1:h.EffectFlags+4])
	assert.Equal(t, testTexture(), data[h.Texture:h.Total])
}
