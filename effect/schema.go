package effect

// Field names one scalar inside a fixed-size record: a byte offset and a
// width of 1, 2, or 4. All fields are little-endian and unsigned at this
// layer; interpretation belongs to the editor, not the engine.
type Field struct {
	Name  string
	Off   int
	Width int
}

// Schema is the explicit field layout of one fixed record type. A single
// generic accessor consumes it; the raw bytes stay authoritative so records
// round-trip exactly even where the schema names nothing.
type Schema []Field

// Lookup finds a field by name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// GetField reads the field from raw. Out-of-schema widths read as 0.
func GetField(raw []byte, f Field) uint32 {
	if f.Off < 0 || f.Off+f.Width > len(raw) {
		return 0
	}
	switch f.Width {
	case 1:
		return uint32(raw[f.Off])
	case 2:
		return uint32(raw[f.Off]) | uint32(raw[f.Off+1])<<8
	case 4:
		return uint32(raw[f.Off]) | uint32(raw[f.Off+1])<<8 |
			uint32(raw[f.Off+2])<<16 | uint32(raw[f.Off+3])<<24
	}
	return 0
}

// SetField writes the field into raw. Values wider than the field wrap to
// the field width; every fixed-width field is inherently representable, so
// there is nothing to error on.
func SetField(raw []byte, f Field, v uint32) {
	if f.Off < 0 || f.Off+f.Width > len(raw) {
		return
	}
	switch f.Width {
	case 1:
		raw[f.Off] = byte(v)
	case 2:
		raw[f.Off] = byte(v)
		raw[f.Off+1] = byte(v >> 8)
	case 4:
		raw[f.Off] = byte(v)
		raw[f.Off+1] = byte(v >> 8)
		raw[f.Off+2] = byte(v >> 16)
		raw[f.Off+3] = byte(v >> 24)
	}
}
