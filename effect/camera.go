package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// CameraKeyframe is one fixed 20-byte camera table keyframe.
type CameraKeyframe struct {
	Frame   uint16
	X, Y, Z int32
	Pan     int16
	Tilt    int16
	Zoom    uint16
}

// DecodeCamera parses a curve-table section span into camera keyframes.
func DecodeCamera(b []byte) ([]CameraKeyframe, error) {
	if len(b)%format.CameraKeyframeSize != 0 {
		return nil, fmt.Errorf("curve table of %d bytes: %w", len(b), ErrRecordSize)
	}
	out := make([]CameraKeyframe, len(b)/format.CameraKeyframeSize)
	for i := range out {
		rec := b[i*format.CameraKeyframeSize:]
		out[i] = CameraKeyframe{
			Frame: format.ReadU16(rec, 0),
			X:     format.ReadI32(rec, 2),
			Y:     format.ReadI32(rec, 6),
			Z:     format.ReadI32(rec, 10),
			Pan:   format.ReadI16(rec, 14),
			Tilt:  format.ReadI16(rec, 16),
			Zoom:  format.ReadU16(rec, 18),
		}
	}
	return out, nil
}

// EncodeCamera serializes camera keyframes back to section bytes.
func EncodeCamera(ks []CameraKeyframe) []byte {
	out := make([]byte, len(ks)*format.CameraKeyframeSize)
	for i, k := range ks {
		rec := out[i*format.CameraKeyframeSize:]
		format.PutU16(rec, 0, k.Frame)
		format.PutI32(rec, 2, k.X)
		format.PutI32(rec, 6, k.Y)
		format.PutI32(rec, 10, k.Z)
		format.PutI16(rec, 14, k.Pan)
		format.PutI16(rec, 16, k.Tilt)
		format.PutU16(rec, 18, k.Zoom)
	}
	return out
}

// RequiredCameraLen is the committed byte length ks needs.
func RequiredCameraLen(ks []CameraKeyframe) int {
	return len(ks) * format.CameraKeyframeSize
}
