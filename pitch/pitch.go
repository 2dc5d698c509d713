package pitch

import (
	"math"

	"github.com/jsphweid/midi2hltas/constants"
)

// Tuning fixes which note index sounds at ReferenceHz.
type Tuning struct {
	ReferencePitch int
	ReferenceHz    float64
}

// A4 = 69 = 440 Hz. Some exports were made against C5 = 72 instead, which is
// why the reference index is not a literal.
var DefaultTuning = Tuning{ReferencePitch: 69, ReferenceHz: 440}

func (t Tuning) Frequency(pitch uint8) float64 {
	return t.ReferenceHz * math.Pow(2, float64(int(pitch)-t.ReferencePitch)/12)
}

// Period is the length of one oscillation of pitch, in seconds.
func (t Tuning) Period(pitch uint8) float64 {
	return 1 / t.Frequency(pitch)
}

func Frequency(pitch uint8) float64 {
	return DefaultTuning.Frequency(pitch)
}

func Period(pitch uint8) float64 {
	return DefaultTuning.Period(pitch)
}

// SegmentDuration converts ticks to seconds. tempo is microseconds per
// quarter note; resolution 0 means constants.TicksPerQuarter.
func SegmentDuration(tempo uint32, ticks uint32, resolution uint16) float64 {
	if resolution == 0 {
		resolution = constants.TicksPerQuarter
	}
	return float64(tempo) / 1_000_000 / float64(resolution) * float64(ticks)
}
