package scheduler

import (
	"testing"

	"github.com/jsphweid/midi2hltas/model"
	"github.com/stretchr/testify/assert"
)

func TestAdvanceReadsUntilDeltaAboveLegato(t *testing.T) {
	track := model.Track{
		model.Tempo(0, 600000),
		model.Note(1, 64, 100),
		model.Note(480, 67, 0),
		model.EndOfTrack(0),
	}
	var c Cursor
	scan := c.Advance(track, 1)

	assert := assert.New(t)
	assert.Equal(Scan{Tempo: 600000, Ticks: 480, Committed: true}, scan)
	assert.Equal(3, c.ReadPos)
	// the sounding event keeps the pitch of the one before it
	assert.Equal(uint8(64), c.Pitch)
	assert.Equal(uint8(0), c.Velocity)
	assert.True(c.FreshBeat)
	assert.False(c.Ended)
}

func TestAdvanceWithZeroLegatoStopsEarlier(t *testing.T) {
	track := model.Track{
		model.Note(1, 60, 100),
		model.Note(480, 64, 100),
	}
	var c Cursor
	scan := c.Advance(track, 0)

	assert.Equal(t, uint32(1), scan.Ticks)
	assert.Equal(t, uint8(60), c.Pitch)
	assert.Equal(t, 1, c.ReadPos)
}

func TestAdvanceIsNoopWhileSegmentPlays(t *testing.T) {
	track := model.Track{
		model.Note(480, 60, 100),
		model.Note(480, 62, 100),
		model.EndOfTrack(0),
	}
	var c Cursor
	c.Advance(track, 1)
	c.commit(480, 0.5)

	scan := c.Advance(track, 1)
	assert := assert.New(t)
	assert.Equal(Scan{}, scan)
	assert.Equal(1, c.ReadPos)
	assert.Equal(uint8(60), c.Pitch)

	c.decrement(0.5)
	scan = c.Advance(track, 1)
	assert.True(scan.Committed)
	assert.Equal(2, c.ReadPos)
	assert.Equal(uint8(62), c.Pitch)
}

func TestAdvanceCarriesPitchIntoSoundingSegment(t *testing.T) {
	track := model.Track{
		model.Note(480, 67, 100),
		model.Note(480, 72, 0),
		model.EndOfTrack(0),
	}
	var c Cursor
	c.Advance(track, 1)

	assert := assert.New(t)
	assert.Equal(uint8(67), c.Pitch)
	assert.Equal(uint8(100), c.Velocity)

	c.commit(480, 0.5)
	c.decrement(0.5)
	scan := c.Advance(track, 1)
	assert.True(scan.Committed)
	assert.Equal(uint8(67), c.Pitch)
	assert.Equal(uint8(0), c.Velocity)
}

func TestAdvanceEndOfTrack(t *testing.T) {
	track := model.Track{
		model.Other(0),
		model.EndOfTrack(960),
	}
	var c Cursor
	scan := c.Advance(track, 1)

	assert := assert.New(t)
	assert.True(c.Ended)
	assert.False(scan.Committed)
	assert.False(scan.Exhausted)
	assert.Equal(2, c.ReadPos)
}

func TestAdvanceExhaustedTrackEnds(t *testing.T) {
	var c Cursor
	scan := c.Advance(model.Track{model.Note(0, 60, 0)}, 1)
	assert.True(t, scan.Exhausted)
	assert.True(t, c.Ended)

	var empty Cursor
	scan = empty.Advance(nil, 1)
	assert.True(t, scan.Exhausted)
	assert.True(t, empty.Ended)
}

func TestDecrementNeverGoesNegative(t *testing.T) {
	c := Cursor{Remaining: 0.3, SubInterval: 0.1}
	c.decrement(0.25)

	assert := assert.New(t)
	assert.InDelta(0.05, c.Remaining, 1e-12)
	assert.Equal(0.0, c.SubInterval)

	c.decrement(0.05 - 1e-12)
	assert.Equal(0.0, c.Remaining)
}

func TestCommitClampsNegative(t *testing.T) {
	var c Cursor
	c.commit(10, -1)
	assert.Equal(t, 0.0, c.Remaining)
	c.commit(10, 0.5)
	c.commit(10, 0.25)
	assert.Equal(t, 0.75, c.Total)
}
