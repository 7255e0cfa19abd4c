// Package format houses the byte-level layout of the effect container: header
// field offsets, fixed record sizes, opcode width tables, and flag bit
// positions. The goal is to keep this knowledge in one place and independent
// from the public API so higher-level packages can orchestrate the data in a
// more ergonomic form.
package format

// Header pointer field offsets, relative to the container base. All fields are
// little-endian uint32 byte offsets.
//
//	Offset  Field
//	------  ----------------------------------------------------------
//	0x00    frames
//	0x04    animation
//	0x08    script data
//	0x0C    effect data (particle emitters)
//	0x10    animation curve table
//	0x14    timing curve (0 = section absent)
//	0x18    effect flags
//	0x1C    timeline
//	0x20    sound definition
//	0x24    texture
const (
	FramesPtrOffset      = 0x00
	AnimationPtrOffset   = 0x04
	ScriptPtrOffset      = 0x08
	ParticlePtrOffset    = 0x0C
	CurveTablePtrOffset  = 0x10
	TimingCurvePtrOffset = 0x14
	EffectFlagsPtrOffset = 0x18
	TimelinePtrOffset    = 0x1C
	SoundDefPtrOffset    = 0x20
	TexturePtrOffset     = 0x24

	// HeaderSize is the byte length of the pointer table.
	HeaderSize = 0x28

	// PointerCount is the number of pointer fields in the header.
	PointerCount = 10

	// PointerFieldSize is the width of one pointer field.
	PointerFieldSize = 4

	// AbsentSentinel marks an optional section as not present. Only the
	// timing curve pointer may legitimately carry it.
	AbsentSentinel = 0
)

// Fixed record sizes.
const (
	// EmitterSize is the byte length of one particle emitter record.
	EmitterSize = 196

	// TimelineChannelSize is the byte length of one timeline channel:
	// a 3-byte channel head followed by 25 fixed keyframes.
	TimelineChannelSize    = 128
	TimelineChannelHead    = 3
	TimelineKeyframeSize   = 5
	TimelineKeyframeCount  = 25
	TimelineKeyframesBytes = TimelineKeyframeSize * TimelineKeyframeCount // 125

	// Color track records. The kind byte at offset 0 selects the variant.
	ColorTrackPaletteSize = 198
	ColorTrackScreenSize  = 298
	ColorTrackHead        = 2
	ColorEntrySize        = 4
	ColorTrackKindPalette = 0
	ColorTrackKindScreen  = 1

	// CameraKeyframeSize is the byte length of one camera table keyframe:
	// frame (u16), position (3 x i32), pan/tilt (i16 each), zoom (u16).
	CameraKeyframeSize = 20
)

// Timing curve region layout. The region holds two nibble-packed halves
// (playback speed and scale); each half packs 600 samples in [0,15] into
// 300 bytes, two samples per byte.
const (
	TimingCurveRegionSize = 600
	TimingCurveHalfBytes  = 300
	TimingCurveSamples    = 600

	// TimingCurveFill is the byte a freshly inserted region is filled with:
	// nibble pair (2,2), "normal speed" in both halves.
	TimingCurveFill = 0x22

	// NibbleMax is the largest representable sample value.
	NibbleMax = 15
)

// Effect flags byte. The byte at offset 0 of the effect-flags section carries
// the per-effect enable bits. The two curve bits must agree with the presence
// of the timing curve pointer.
const (
	EffectFlagsByteOffset = 0

	CurveSpeedEnableShift = 4
	CurveScaleEnableShift = 5

	CurveSpeedEnableBit = 1 << CurveSpeedEnableShift
	CurveScaleEnableBit = 1 << CurveScaleEnableShift
	CurveEnableMask     = CurveSpeedEnableBit | CurveScaleEnableBit
)

// TrailingShiftWindow is the generous slack shifted past the last known byte
// when relocating inside a live process image, where the true trailing extent
// of the container is not recorded anywhere. Over-covering is harmless;
// under-covering silently truncates downstream data.
const TrailingShiftWindow = 0x10000
