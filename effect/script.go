package effect

import "github.com/sprited/effectkit/internal/format"

// ScriptInstruction is one effect-script instruction.
type ScriptInstruction = Instr

// DecodeScript parses a script section span.
func DecodeScript(b []byte) ([]ScriptInstruction, error) {
	return decodeStream(b, &format.ScriptOpSize, "script")
}

// EncodeScript serializes script instructions back to section bytes.
func EncodeScript(in []ScriptInstruction) []byte {
	return encodeStream(in, &format.ScriptOpSize)
}

// RequiredScriptLen is the committed byte length in needs.
func RequiredScriptLen(in []ScriptInstruction) int {
	return streamLen(in, &format.ScriptOpSize)
}
