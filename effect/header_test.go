package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprited/effectkit/internal/format"
)

func sampleHeader() Header {
	return Header{
		Frames:      0x28,
		Animation:   0x50,
		Script:      0x60,
		Particle:    0x90,
		CurveTable:  0x200,
		TimingCurve: 0,
		EffectFlags: 0x2C0,
		Timeline:    0x300,
		SoundDef:    0x1400,
		Texture:     0x1800,
		Total:       0x1900,
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	h := sampleHeader()
	b := make([]byte, format.HeaderSize)
	require.NoError(t, h.Write(b))

	got, err := ParseHeader(b)
	require.NoError(t, err)

	got.Total = h.Total
	assert.Equal(t, h, got)
}

func TestHeader_ParseTruncated(t *testing.T) {
	_, err := ParseHeader(make([]byte, format.HeaderSize-1))
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestHeader_ValidateOK(t *testing.T) {
	h := sampleHeader()
	require.NoError(t, h.Validate())
}

func TestHeader_ValidateAbsentCurveSkipped(t *testing.T) {
	h := sampleHeader()
	h.TimingCurve = 0
	require.NoError(t, h.Validate(), "absent timing curve must not break ordering")

	h.TimingCurve = 0x280
	require.NoError(t, h.Validate(), "present timing curve between curve_table and effect_flags is valid")
}

func TestHeader_ValidateOutOfOrder(t *testing.T) {
	h := sampleHeader()
	h.Timeline = 0x100 // before effect_flags
	err := h.Validate()
	require.ErrorIs(t, err, format.ErrPointerOrder)
}

func TestHeader_ValidateBeyondTotal(t *testing.T) {
	h := sampleHeader()
	h.Texture = 0x2000
	require.ErrorIs(t, h.Validate(), format.ErrPointerOrder)
}

func TestReadHeader_TotalFromStore(t *testing.T) {
	store := buildContainer(t, false)
	h, err := ReadHeader(store, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(store.Limit()), h.Total)
	require.NoError(t, h.Validate())
}

func TestHeader_PtrAccessors(t *testing.T) {
	var h Header
	for i, id := range SectionIDs() {
		h.SetPtr(id, uint32(0x100*(i+1)))
	}
	for i, id := range SectionIDs() {
		assert.Equal(t, uint32(0x100*(i+1)), h.Ptr(id), "pointer for %s", id)
	}
}
