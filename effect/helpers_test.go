package effect

import (
	"testing"

	"github.com/sprited/effectkit/internal/format"
)

// containerBuilder assembles a synthetic container: sections appended in
// file order, pointers recorded as they land.
type containerBuilder struct {
	buf []byte
	h   Header
}

func newContainerBuilder() *containerBuilder {
	return &containerBuilder{buf: make([]byte, format.HeaderSize)}
}

func (b *containerBuilder) add(id SectionID, data []byte) *containerBuilder {
	b.h.SetPtr(id, uint32(len(b.buf)))
	b.buf = append(b.buf, data...)
	return b
}

func (b *containerBuilder) store(t *testing.T) *ByteStore {
	t.Helper()
	if err := b.h.Write(b.buf); err != nil {
		t.Fatalf("write header: %v", err)
	}
	return NewByteStore(b.buf)
}

// testScript is a 3-byte script stream: wait 5 frames, end.
func testScript() []byte {
	return []byte{format.ScriptOpWait, 5, format.ScriptOpEnd}
}

// testSequence is an 8-byte sprite sequence: show frame, set position.
func testSequence() []byte {
	return []byte{
		format.SeqOpShowFrame, 2, 5,
		format.SeqOpSetPos, 1, 0, 2, 0,
	}
}

// testSound is a 3-byte sound stream: tempo 120, end.
func testSound() []byte {
	return []byte{format.SoundOpTempo, 120, format.SoundOpEnd}
}

// testEmitter fills a recognizable emitter record.
func testEmitter(seed byte) []byte {
	rec := make([]byte, format.EmitterSize)
	for i := range rec {
		rec[i] = seed + byte(i)
	}
	return rec
}

// testColorTrack is one palette-kind color track.
func testColorTrack() []byte {
	rec := make([]byte, format.ColorTrackPaletteSize)
	rec[0] = format.ColorTrackKindPalette
	rec[1] = 0x01
	for i := format.ColorTrackHead; i < len(rec); i++ {
		rec[i] = byte(i)
	}
	return rec
}

// testTimelineChannel is one channel with distinct keyframe bytes.
func testTimelineChannel() []byte {
	rec := make([]byte, format.TimelineChannelSize)
	rec[0] = 3 // target
	rec[1] = 1 // interp
	for i := format.TimelineChannelHead; i < len(rec); i++ {
		rec[i] = byte(i * 7)
	}
	return rec
}

// testCamera is two camera keyframes.
func testCamera() []byte {
	rec := make([]byte, 2*format.CameraKeyframeSize)
	for i := range rec {
		rec[i] = byte(i + 1)
	}
	return rec
}

// testTexture is a small opaque texture blob.
func testTexture() []byte {
	rec := make([]byte, 16)
	for i := range rec {
		rec[i] = 0xA0 + byte(i)
	}
	return rec
}

// buildContainer assembles a complete container. When withCurve is set, the
// timing-curve section is present (filled with the default 0x22 pattern) and
// the enable bits are set in the flags byte.
func buildContainer(t *testing.T, withCurve bool) *ByteStore {
	t.Helper()
	b := newContainerBuilder()
	b.add(SecFrames, testSequence())
	b.add(SecAnimation, testColorTrack())
	b.add(SecScript, testScript())
	b.add(SecParticle, testEmitter(0x10))
	b.add(SecCurveTable, testCamera())
	if withCurve {
		curve := make([]byte, format.TimingCurveRegionSize)
		for i := range curve {
			curve[i] = format.TimingCurveFill
		}
		b.add(SecTimingCurve, curve)
	}
	flags := []byte{0x00, 0xEE, 0xEF, 0xF0}
	if withCurve {
		flags[0] |= format.CurveEnableMask
	}
	b.add(SecEffectFlags, flags)
	b.add(SecTimeline, testTimelineChannel())
	b.add(SecSoundDef, testSound())
	b.add(SecTexture, testTexture())
	return b.store(t)
}
