package convert

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/jsphweid/midi2hltas/scheduler"
	"github.com/jsphweid/midi2hltas/util"
)

type Summary struct {
	ScriptID uuid.UUID
	Tracks   int
	Records  int
	Triggers int
	// extra records sent ahead of single-strike triggers
	Primes int
	Stops  int
	Waits    int
	Markers  int

	// sum of every wait record
	EmittedTime float64
	// cumulative segment time read from each track
	TrackTimes []float64
	// triggers fired per track
	TrackTriggers []int
}

func summarize(script []byte, records []model.Record, trackTimes []float64) Summary {
	sum := Summary{
		ScriptID:      ScriptID(script),
		Tracks:        len(trackTimes),
		Records:       len(records),
		TrackTimes:    trackTimes,
		TrackTriggers: make([]int, len(trackTimes)),
	}
	for _, rec := range records {
		switch rec.Kind {
		case model.WaitRecord:
			sum.Waits++
			sum.EmittedTime += rec.Frametime
		case model.StopRecord:
			sum.Stops++
		case model.MarkerRecord:
			sum.Markers++
		case model.PrimeRecord:
			sum.Primes++
		case model.TriggerRecord:
			sum.Triggers++
			if rec.Track != scheduler.NoTrack {
				sum.TrackTriggers[rec.Track]++
			}
		}
	}
	return sum
}

// Longest is the cumulative time of the longest track.
func (s Summary) Longest() float64 {
	return util.Max(s.TrackTimes...)
}

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "script id: %v\n", s.ScriptID)
	fmt.Fprintf(w, "tracks: %v\n", s.Tracks)
	fmt.Fprintf(w, "records: %v (triggers %v, primes %v, stops %v, waits %v, markers %v)\n", s.Records, s.Triggers, s.Primes, s.Stops, s.Waits, s.Markers)
	fmt.Fprintf(w, "emitted time: %.6fs (longest track %.6fs)\n", s.EmittedTime, s.Longest())
	fmt.Fprintf(w, "track triggers: %v\n", util.Sum(s.TrackTriggers))
	for i, d := range s.TrackTimes {
		fmt.Fprintf(w, "  track %d: %.6fs, %d triggers\n", i, d, s.TrackTriggers[i])
	}
}
