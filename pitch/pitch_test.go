package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOfReferenceTone(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(1.0/440, Period(69), 1e-15)
	assert.InDelta(1.0/880, Period(81), 1e-15)
	assert.InDelta(220.0, Frequency(57), 1e-9)
}

func TestTuningWithC5Reference(t *testing.T) {
	tuning := Tuning{ReferencePitch: 72, ReferenceHz: 440}
	assert.InDelta(t, 440.0, tuning.Frequency(72), 1e-9)
	assert.InDelta(t, 220.0, tuning.Frequency(60), 1e-9)
}

func TestSegmentDuration(t *testing.T) {
	cases := []struct {
		tempo      uint32
		ticks      uint32
		resolution uint16
		expected   float64
	}{
		{500000, 480, 0, 0.5},
		{1000000, 480, 0, 1.0},
		{500000, 960, 480, 1.0},
		{500000, 0, 0, 0},
		{500000, 960, 960, 0.5},
	}
	for _, c := range cases {
		assert.InDelta(t, c.expected, SegmentDuration(c.tempo, c.ticks, c.resolution), 1e-12)
	}
}
