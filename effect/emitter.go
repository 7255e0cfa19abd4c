package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// Emitter is one 196-byte particle emitter record. The raw bytes are kept
// whole; named fields are windows into them, so unknown regions survive a
// round trip untouched.
type Emitter struct {
	Raw [format.EmitterSize]byte
}

// EmitterSchema names the understood emitter fields. Offsets not listed are
// preserved as-is.
var EmitterSchema = Schema{
	{Name: "kind", Off: 0x00, Width: 1},
	{Name: "blend", Off: 0x01, Width: 1},
	{Name: "texture", Off: 0x02, Width: 2},
	{Name: "spawn_rate", Off: 0x04, Width: 2},
	{Name: "lifetime", Off: 0x06, Width: 2},
	{Name: "pos_x", Off: 0x08, Width: 4},
	{Name: "pos_y", Off: 0x0C, Width: 4},
	{Name: "pos_z", Off: 0x10, Width: 4},
	{Name: "vel_x", Off: 0x14, Width: 4},
	{Name: "vel_y", Off: 0x18, Width: 4},
	{Name: "vel_z", Off: 0x1C, Width: 4},
	{Name: "accel_x", Off: 0x20, Width: 4},
	{Name: "accel_y", Off: 0x24, Width: 4},
	{Name: "accel_z", Off: 0x28, Width: 4},
	{Name: "color", Off: 0x2C, Width: 4},
	{Name: "scale_start", Off: 0x30, Width: 2},
	{Name: "scale_end", Off: 0x32, Width: 2},
	{Name: "spread", Off: 0x34, Width: 2},
	{Name: "gravity", Off: 0x36, Width: 2},
}

// Get reads a named field, or 0 when the schema does not know it.
func (e *Emitter) Get(name string) uint32 {
	f, ok := EmitterSchema.Lookup(name)
	if !ok {
		return 0
	}
	return GetField(e.Raw[:], f)
}

// Set writes a named field. Unknown names are ignored.
func (e *Emitter) Set(name string, v uint32) {
	f, ok := EmitterSchema.Lookup(name)
	if !ok {
		return
	}
	SetField(e.Raw[:], f, v)
}

// DecodeEmitters parses a particle section span into emitter records.
func DecodeEmitters(b []byte) ([]Emitter, error) {
	if len(b)%format.EmitterSize != 0 {
		return nil, fmt.Errorf("particle section of %d bytes: %w", len(b), ErrRecordSize)
	}
	out := make([]Emitter, len(b)/format.EmitterSize)
	for i := range out {
		copy(out[i].Raw[:], b[i*format.EmitterSize:])
	}
	return out, nil
}

// EncodeEmitters serializes emitter records back to section bytes.
func EncodeEmitters(es []Emitter) []byte {
	out := make([]byte, len(es)*format.EmitterSize)
	for i := range es {
		copy(out[i*format.EmitterSize:], es[i].Raw[:])
	}
	return out
}

// RequiredEmitterLen is the committed byte length es needs.
func RequiredEmitterLen(es []Emitter) int {
	return len(es) * format.EmitterSize
}
