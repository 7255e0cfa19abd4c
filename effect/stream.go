package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// Instr is one variable-width instruction: an opcode byte plus its trailing
// parameter bytes. The engine never interprets the parameters; only the
// width matters, and the width comes from the section's size-by-opcode table.
type Instr struct {
	Op   byte
	Args []byte
}

// decodeStream walks a section span using the given size table. An opcode
// with no table entry is a decode error; a truncated trailing instruction is
// ErrTruncated.
func decodeStream(b []byte, sizes *[256]uint8, what string) ([]Instr, error) {
	var out []Instr
	for off := 0; off < len(b); {
		op := b[off]
		w := int(sizes[op])
		if w == 0 {
			return nil, fmt.Errorf("%s opcode %#02x at %#x: %w",
				what, op, off, format.ErrUnknownOpcode)
		}
		if off+w > len(b) {
			return nil, fmt.Errorf("%s opcode %#02x at %#x needs %d bytes: %w",
				what, op, off, w, format.ErrTruncated)
		}
		args := make([]byte, w-1)
		copy(args, b[off+1:off+w])
		out = append(out, Instr{Op: op, Args: args})
		off += w
	}
	return out, nil
}

// encodeStream serializes instructions using the size table. Args shorter
// than the opcode's width are zero-padded, longer ones truncated; the table
// is the single source of truth for the committed layout.
func encodeStream(in []Instr, sizes *[256]uint8) []byte {
	out := make([]byte, 0, streamLen(in, sizes))
	for _, ins := range in {
		w := int(sizes[ins.Op])
		if w == 0 {
			// Unknown opcodes have no defined width; emit the bare
			// opcode so the stream stays parseable downstream.
			w = 1
		}
		rec := make([]byte, w)
		rec[0] = ins.Op
		copy(rec[1:], ins.Args)
		out = append(out, rec...)
	}
	return out
}

// streamLen sums the table widths of in.
func streamLen(in []Instr, sizes *[256]uint8) int {
	n := 0
	for _, ins := range in {
		w := int(sizes[ins.Op])
		if w == 0 {
			w = 1
		}
		n += w
	}
	return n
}
