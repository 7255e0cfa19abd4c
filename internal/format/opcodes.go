package format

// Size-by-opcode tables for the three variable-width instruction streams.
// Each entry is the full byte width of the instruction including the opcode
// byte itself; 0 marks an opcode with no defined encoding. These tables are
// the single source of truth for decoding, encoding, and re-offsetting after
// an insert or delete. The engine never interprets instruction semantics.

// Script opcodes.
const (
	ScriptOpEnd        = 0x00
	ScriptOpNop        = 0x01
	ScriptOpWait       = 0x02
	ScriptOpLoopStart  = 0x03
	ScriptOpLoopEnd    = 0x04
	ScriptOpJump       = 0x05
	ScriptOpSpawn      = 0x06
	ScriptOpKill       = 0x07
	ScriptOpSetPos     = 0x08
	ScriptOpSetVel     = 0x09
	ScriptOpSetColor   = 0x0A
	ScriptOpSetScale   = 0x0B
	ScriptOpSetRot     = 0x0C
	ScriptOpPlaySound  = 0x0D
	ScriptOpStopSound  = 0x0E
	ScriptOpSetFlag    = 0x0F
	ScriptOpCamShake   = 0x10
	ScriptOpScreenFade = 0x11
)

// ScriptOpSize maps a script opcode to its encoded width.
var ScriptOpSize = [256]uint8{
	ScriptOpEnd:        1,
	ScriptOpNop:        1,
	ScriptOpWait:       2,
	ScriptOpLoopStart:  2,
	ScriptOpLoopEnd:    1,
	ScriptOpJump:       3,
	ScriptOpSpawn:      2,
	ScriptOpKill:       2,
	ScriptOpSetPos:     7,
	ScriptOpSetVel:     7,
	ScriptOpSetColor:   5,
	ScriptOpSetScale:   3,
	ScriptOpSetRot:     3,
	ScriptOpPlaySound:  3,
	ScriptOpStopSound:  2,
	ScriptOpSetFlag:    3,
	ScriptOpCamShake:   4,
	ScriptOpScreenFade: 4,
}

// SMD sound opcodes.
const (
	SoundOpEnd       = 0x00
	SoundOpTempo     = 0x01
	SoundOpProgram   = 0x02
	SoundOpVolume    = 0x03
	SoundOpPan       = 0x04
	SoundOpNote      = 0x05
	SoundOpRest      = 0x06
	SoundOpPitchBend = 0x07
	SoundOpLoopStart = 0x08
	SoundOpLoopEnd   = 0x09
	SoundOpDetune    = 0x0A
	SoundOpRelease   = 0x0B
)

// SoundOpSize maps an SMD sound opcode to its encoded width.
var SoundOpSize = [256]uint8{
	SoundOpEnd:       1,
	SoundOpTempo:     2,
	SoundOpProgram:   2,
	SoundOpVolume:    2,
	SoundOpPan:       2,
	SoundOpNote:      4,
	SoundOpRest:      2,
	SoundOpPitchBend: 3,
	SoundOpLoopStart: 1,
	SoundOpLoopEnd:   1,
	SoundOpDetune:    2,
	SoundOpRelease:   2,
}

// Sprite sequence opcodes.
const (
	SeqOpEnd       = 0x00
	SeqOpShowFrame = 0x01
	SeqOpSetPos    = 0x02
	SeqOpFlip      = 0x03
	SeqOpLoop      = 0x04
	SeqOpBlend     = 0x05
	SeqOpPalette   = 0x06
)

// SequenceOpSize maps a sprite sequence opcode to its encoded width.
var SequenceOpSize = [256]uint8{
	SeqOpEnd:       1,
	SeqOpShowFrame: 3,
	SeqOpSetPos:    5,
	SeqOpFlip:      2,
	SeqOpLoop:      2,
	SeqOpBlend:     2,
	SeqOpPalette:   2,
}
