package scheduler

import (
	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/model"
)

// Cursor is the read state of one track.
type Cursor struct {
	ReadPos int
	Ended   bool

	// last non-zero pitch seen, 0 before the first one
	Pitch uint8
	// velocity of the last note event. 0 means sounding, anything else is a
	// rest (this is how the exports we consume are laid out).
	Velocity uint8

	// delta ticks of the current segment
	Ticks uint32
	// seconds left in the current segment
	Remaining float64
	// seconds left until the next re-trigger
	SubInterval float64
	// set on every read, cleared by the first trigger of the segment
	FreshBeat bool

	// length of the current segment when it was read
	Segment float64
	// sum of every committed segment
	Total float64

	warned bool
}

// Scan is what a single Advance call consumed.
type Scan struct {
	// last tempo marker read, 0 if none
	Tempo     uint32
	Ticks     uint32
	Committed bool
	// the track ran out without an end-of-track marker
	Exhausted bool
}

// Due reports whether the cursor finished its segment and may read again.
func (c *Cursor) Due() bool {
	return !c.Ended && c.Remaining <= constants.Epsilon
}

// Advance reads events until one has a delta above legato, which then
// becomes the next segment. It does nothing while a segment is still
// playing.
func (c *Cursor) Advance(track model.Track, legato uint32) Scan {
	var scan Scan
	if !c.Due() {
		return scan
	}

	for c.ReadPos < len(track) {
		evt := track[c.ReadPos]
		c.ReadPos++
		c.FreshBeat = true

		switch evt.Kind {
		case model.TempoEvent:
			scan.Tempo = evt.Tempo
		case model.EndOfTrackEvent:
			c.Ended = true
			return scan
		case model.NoteEvent:
			if evt.Velocity > 0 {
				c.Pitch = evt.Pitch
			}
			c.Velocity = evt.Velocity
		}

		if evt.Delta > legato {
			scan.Ticks = evt.Delta
			scan.Committed = true
			return scan
		}
	}

	c.Ended = true
	scan.Exhausted = true
	return scan
}

// commit starts a new segment of d seconds.
func (c *Cursor) commit(ticks uint32, d float64) {
	if d < 0 {
		d = 0
	}
	c.Ticks = ticks
	c.Remaining = d
	c.Segment = d
	c.Total += d
	c.warned = false
}

func (c *Cursor) decrement(step float64) {
	c.Remaining = clampZero(c.Remaining - step)
	c.SubInterval = clampZero(c.SubInterval - step)
}

func clampZero(v float64) float64 {
	if v <= constants.Epsilon {
		return 0
	}
	return v
}
