package scheduler

import (
	"log"

	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/pitch"
)

type Config struct {
	// Deltas at or below Legato (0 or 1 tick) do not end a segment read.
	Legato   uint32
	Tuning   pitch.Tuning
	TieBreak TieBreak

	// emit an incrementing marker before every wait record
	Diagnostic bool

	// Tempo assumed when a segment is read before any tempo marker.
	DefaultTempo uint32
	// fail with ErrMissingTempo instead of assuming DefaultTempo
	StrictTempo bool

	// ticks per quarter note, 0 means constants.TicksPerQuarter
	Resolution uint16

	// If > 0, a note segment never re-triggers more often than this.
	MaxTriggersPerSegment int

	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Legato:       1,
		Tuning:       pitch.DefaultTuning,
		TieBreak:     LowestRemainder,
		DefaultTempo: constants.DefaultTempo,
		Resolution:   constants.TicksPerQuarter,
	}
}
