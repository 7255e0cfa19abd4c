package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// RGBA is one color entry in a color track.
type RGBA struct {
	R, G, B, A uint8
}

// ColorTrack is a tagged color-track record. The kind byte selects the
// variant: palette tracks are 198 bytes (49 entries), screen tracks 298
// bytes (74 entries).
type ColorTrack struct {
	Kind    uint8
	Flags   uint8
	Entries []RGBA
}

// Size returns the encoded byte length of the track.
func (t ColorTrack) Size() int {
	if t.Kind == format.ColorTrackKindScreen {
		return format.ColorTrackScreenSize
	}
	return format.ColorTrackPaletteSize
}

func colorTrackSizeFor(kind uint8) (int, error) {
	switch kind {
	case format.ColorTrackKindPalette:
		return format.ColorTrackPaletteSize, nil
	case format.ColorTrackKindScreen:
		return format.ColorTrackScreenSize, nil
	}
	return 0, fmt.Errorf("color track kind %d: %w", kind, format.ErrUnknownOpcode)
}

// DecodeColorTracks parses a span of concatenated color tracks. Each record
// is self-describing through its kind byte.
func DecodeColorTracks(b []byte) ([]ColorTrack, error) {
	var out []ColorTrack
	for off := 0; off < len(b); {
		size, err := colorTrackSizeFor(b[off])
		if err != nil {
			return nil, fmt.Errorf("color track at %#x: %w", off, err)
		}
		if off+size > len(b) {
			return nil, fmt.Errorf("color track at %#x needs %d bytes: %w",
				off, size, format.ErrTruncated)
		}
		rec := b[off : off+size]
		n := (size - format.ColorTrackHead) / format.ColorEntrySize
		t := ColorTrack{Kind: rec[0], Flags: rec[1], Entries: make([]RGBA, n)}
		for i := range t.Entries {
			e := rec[format.ColorTrackHead+i*format.ColorEntrySize:]
			t.Entries[i] = RGBA{R: e[0], G: e[1], B: e[2], A: e[3]}
		}
		out = append(out, t)
		off += size
	}
	return out, nil
}

// EncodeColorTracks serializes tracks back to section bytes. Entry slices
// shorter than the variant's capacity are zero-padded, longer ones truncated.
func EncodeColorTracks(ts []ColorTrack) []byte {
	out := make([]byte, 0, RequiredColorTrackLen(ts))
	for _, t := range ts {
		rec := make([]byte, t.Size())
		rec[0] = t.Kind
		rec[1] = t.Flags
		capacity := (t.Size() - format.ColorTrackHead) / format.ColorEntrySize
		for i, e := range t.Entries {
			if i >= capacity {
				break
			}
			off := format.ColorTrackHead + i*format.ColorEntrySize
			rec[off] = e.R
			rec[off+1] = e.G
			rec[off+2] = e.B
			rec[off+3] = e.A
		}
		out = append(out, rec...)
	}
	return out
}

// RequiredColorTrackLen is the committed byte length ts needs.
func RequiredColorTrackLen(ts []ColorTrack) int {
	n := 0
	for _, t := range ts {
		n += t.Size()
	}
	return n
}
