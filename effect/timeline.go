package effect

import (
	"fmt"

	"github.com/sprited/effectkit/internal/format"
)

// TimelineKeyframe is one fixed 5-byte keyframe inside a timeline channel.
type TimelineKeyframe struct {
	Frame uint8
	Value int16
	Ease  uint8
	Flags uint8
}

// TimelineChannel is one 128-byte timeline channel: a 3-byte head followed by
// 25 fixed keyframes.
type TimelineChannel struct {
	Target   uint8
	Interp   uint8
	Reserved uint8
	Keys     [format.TimelineKeyframeCount]TimelineKeyframe
}

// DecodeTimeline parses a timeline section span into channels.
func DecodeTimeline(b []byte) ([]TimelineChannel, error) {
	if len(b)%format.TimelineChannelSize != 0 {
		return nil, fmt.Errorf("timeline section of %d bytes: %w", len(b), ErrRecordSize)
	}
	out := make([]TimelineChannel, len(b)/format.TimelineChannelSize)
	for i := range out {
		rec := b[i*format.TimelineChannelSize:]
		out[i].Target = rec[0]
		out[i].Interp = rec[1]
		out[i].Reserved = rec[2]
		for k := range out[i].Keys {
			kb := rec[format.TimelineChannelHead+k*format.TimelineKeyframeSize:]
			out[i].Keys[k] = TimelineKeyframe{
				Frame: kb[0],
				Value: format.ReadI16(kb, 1),
				Ease:  kb[3],
				Flags: kb[4],
			}
		}
	}
	return out, nil
}

// EncodeTimeline serializes channels back to section bytes.
func EncodeTimeline(chs []TimelineChannel) []byte {
	out := make([]byte, len(chs)*format.TimelineChannelSize)
	for i := range chs {
		rec := out[i*format.TimelineChannelSize:]
		rec[0] = chs[i].Target
		rec[1] = chs[i].Interp
		rec[2] = chs[i].Reserved
		for k, key := range chs[i].Keys {
			kb := rec[format.TimelineChannelHead+k*format.TimelineKeyframeSize:]
			kb[0] = key.Frame
			format.PutI16(kb, 1, key.Value)
			kb[3] = key.Ease
			kb[4] = key.Flags
		}
	}
	return out
}

// RequiredTimelineLen is the committed byte length chs needs.
func RequiredTimelineLen(chs []TimelineChannel) int {
	return len(chs) * format.TimelineChannelSize
}
