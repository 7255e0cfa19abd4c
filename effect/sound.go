package effect

import "github.com/sprited/effectkit/internal/format"

// SoundOpcode is one SMD sound-definition opcode.
type SoundOpcode = Instr

// DecodeSound parses a sound-definition section span.
func DecodeSound(b []byte) ([]SoundOpcode, error) {
	return decodeStream(b, &format.SoundOpSize, "sound")
}

// EncodeSound serializes sound opcodes back to section bytes.
func EncodeSound(in []SoundOpcode) []byte {
	return encodeStream(in, &format.SoundOpSize)
}

// RequiredSoundLen is the committed byte length in needs.
func RequiredSoundLen(in []SoundOpcode) int {
	return streamLen(in, &format.SoundOpSize)
}
