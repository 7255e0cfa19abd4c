package effect

import "github.com/sprited/effectkit/internal/format"

// Document is the parsed model of one container: every section's records,
// owned exclusively by the editing session. The editor mutates it freely;
// it is reconciled back into the backing store only during an apply-all
// transaction.
type Document struct {
	Sequences   []SequenceInstruction // frames
	ColorTracks []ColorTrack          // animation
	Script      []ScriptInstruction   // script
	Emitters    []Emitter             // particle
	Camera      []CameraKeyframe      // curve_table
	TimingCurve *TimingCurve          // timing_curve; nil = absent
	Flags       FlagsByte             // effect_flags, byte 0
	FlagsTail   []byte                // effect_flags, rest, preserved raw
	Timeline    []TimelineChannel     // timeline
	Sound       []SoundOpcode         // sound_def
	Texture     []byte                // texture, opaque
}

// RequiredLen is the byte length the section needs to commit the model's
// current records.
func (d *Document) RequiredLen(id SectionID) int {
	switch id {
	case SecFrames:
		return RequiredSequenceLen(d.Sequences)
	case SecAnimation:
		return RequiredColorTrackLen(d.ColorTracks)
	case SecScript:
		return RequiredScriptLen(d.Script)
	case SecParticle:
		return RequiredEmitterLen(d.Emitters)
	case SecCurveTable:
		return RequiredCameraLen(d.Camera)
	case SecTimingCurve:
		if d.TimingCurve == nil {
			return 0
		}
		return format.TimingCurveRegionSize
	case SecEffectFlags:
		return 1 + len(d.FlagsTail)
	case SecTimeline:
		return RequiredTimelineLen(d.Timeline)
	case SecSoundDef:
		return RequiredSoundLen(d.Sound)
	case SecTexture:
		return len(d.Texture)
	}
	return 0
}

// EncodeSection serializes the section's current records.
func (d *Document) EncodeSection(id SectionID) []byte {
	switch id {
	case SecFrames:
		return EncodeSequence(d.Sequences)
	case SecAnimation:
		return EncodeColorTracks(d.ColorTracks)
	case SecScript:
		return EncodeScript(d.Script)
	case SecParticle:
		return EncodeEmitters(d.Emitters)
	case SecCurveTable:
		return EncodeCamera(d.Camera)
	case SecTimingCurve:
		if d.TimingCurve == nil {
			return nil
		}
		return d.TimingCurve.Encode()
	case SecEffectFlags:
		out := make([]byte, 1+len(d.FlagsTail))
		out[0] = byte(d.Flags)
		copy(out[1:], d.FlagsTail)
		return out
	case SecTimeline:
		return EncodeTimeline(d.Timeline)
	case SecSoundDef:
		return EncodeSound(d.Sound)
	case SecTexture:
		return d.Texture
	}
	return nil
}
