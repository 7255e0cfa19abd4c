package effect

import "github.com/sprited/effectkit/internal/format"

// SequenceInstruction is one sprite-sequence instruction.
type SequenceInstruction = Instr

// DecodeSequence parses a frames section span.
func DecodeSequence(b []byte) ([]SequenceInstruction, error) {
	return decodeStream(b, &format.SequenceOpSize, "sequence")
}

// EncodeSequence serializes sequence instructions back to section bytes.
func EncodeSequence(in []SequenceInstruction) []byte {
	return encodeStream(in, &format.SequenceOpSize)
}

// RequiredSequenceLen is the committed byte length in needs.
func RequiredSequenceLen(in []SequenceInstruction) int {
	return streamLen(in, &format.SequenceOpSize)
}
