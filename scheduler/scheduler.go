package scheduler

import (
	"io"
	"log"
	"math"

	"github.com/jsphweid/midi2hltas/action"
	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/jsphweid/midi2hltas/pitch"
	"github.com/pkg/errors"
)

var (
	ErrEmptyScore   = errors.New("score has no tracks")
	ErrMissingTempo = errors.New("segment read before any tempo marker")
)

// NoTrack marks records that do not belong to a single track.
const NoTrack = -1

// Scheduler merges every track of a score onto one clock.
type Scheduler struct {
	score  model.Score
	table  action.Table
	cfg    Config
	logger *log.Logger

	cursors []*Cursor
	tempo   uint32
	records []model.Record
}

func New(score model.Score, table action.Table, cfg Config) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Tuning == (pitch.Tuning{}) {
		cfg.Tuning = pitch.DefaultTuning
	}
	if cfg.DefaultTempo == 0 {
		cfg.DefaultTempo = constants.DefaultTempo
	}
	return &Scheduler{score: score, table: table, cfg: cfg, logger: logger}
}

// Run schedules the whole score. Nothing is returned unless the run
// completes, so a failed run never leaves partial output behind.
func (s *Scheduler) Run() ([]model.Record, error) {
	n := len(s.score.Tracks)
	if n == 0 {
		return nil, ErrEmptyScore
	}
	if err := s.table.Validate(n); err != nil {
		return nil, err
	}

	s.cursors = make([]*Cursor, n)
	for i := range s.cursors {
		s.cursors[i] = &Cursor{}
	}
	s.tempo = 0
	s.records = nil

	curr := 0
	for !s.allEnded() {
		if err := s.advance(curr); err != nil {
			return nil, err
		}
		curr = (curr + 1) % n

		// every track needs its first segment before anything is merged
		if !s.allStarted() {
			continue
		}
		if s.allEnded() {
			break
		}
		s.merge()
	}

	return s.records, nil
}

// TrackTimes returns the cumulative segment time read from every track
// during the last Run.
func (s *Scheduler) TrackTimes() []float64 {
	res := make([]float64, len(s.cursors))
	for i, c := range s.cursors {
		res[i] = c.Total
	}
	return res
}

func (s *Scheduler) advance(track int) error {
	c := s.cursors[track]
	scan := c.Advance(s.score.Tracks[track], s.cfg.Legato)
	if scan.Tempo != 0 {
		s.tempo = scan.Tempo
	}
	if scan.Exhausted {
		s.logger.Printf("track %d has no end-of-track marker, ending it after %d events", track, c.ReadPos)
	}
	if !scan.Committed {
		return nil
	}
	if s.tempo == 0 {
		if s.cfg.StrictTempo {
			return errors.Wrapf(ErrMissingTempo, "track %d event %d", track, c.ReadPos-1)
		}
		s.logger.Printf("no tempo marker before track %d event %d, assuming %d", track, c.ReadPos-1, s.cfg.DefaultTempo)
		s.tempo = s.cfg.DefaultTempo
	}
	c.commit(scan.Ticks, pitch.SegmentDuration(s.tempo, scan.Ticks, s.cfg.Resolution))
	return nil
}

func (s *Scheduler) allEnded() bool {
	for _, c := range s.cursors {
		if !c.Ended {
			return false
		}
	}
	return true
}

func (s *Scheduler) allStarted() bool {
	for _, c := range s.cursors {
		if c.ReadPos == 0 && !c.Ended {
			return false
		}
	}
	return true
}

// outstanding is true while every live cursor still has segment time left.
func (s *Scheduler) outstanding() bool {
	live := false
	for _, c := range s.cursors {
		if c.Ended {
			continue
		}
		if c.Remaining <= constants.Epsilon {
			return false
		}
		live = true
	}
	return live
}

// merge steps the global clock until some track finishes its segment.
func (s *Scheduler) merge() {
	for s.outstanding() {
		s.trigger()

		selected := s.cfg.TieBreak.pick(s.cursors)
		// never step past the end of a segment
		step := math.Min(s.cursors[selected].SubInterval, s.shortestRemaining())

		if s.cfg.Diagnostic {
			s.emit(constants.ZeroFrametime, action.Counter{}, selected, model.MarkerRecord)
		}
		s.emit(step, action.None{}, NoTrack, model.WaitRecord)

		for _, c := range s.cursors {
			c.decrement(step)
		}
	}
}

func (s *Scheduler) shortestRemaining() float64 {
	shortest := math.Inf(1)
	for _, c := range s.cursors {
		if !c.Ended {
			shortest = math.Min(shortest, c.Remaining)
		}
	}
	return shortest
}

// trigger fires every cursor whose sub-interval ran out.
func (s *Scheduler) trigger() {
	for i, c := range s.cursors {
		if c.Ended || c.SubInterval > constants.Epsilon {
			continue
		}
		if c.Pitch == 0 {
			// nothing played yet, sit out the segment
			c.SubInterval = c.Remaining
			continue
		}
		if c.Velocity != 0 {
			s.emit(constants.ZeroFrametime, action.Stopsound{}, i, model.StopRecord)
			c.SubInterval = c.Remaining
			continue
		}

		act := s.table.Action(i)
		if c.FreshBeat || !action.IsSustainedTap(act) {
			if action.IsSingleStrike(act) {
				s.emit(constants.ZeroFrametime, act, i, model.PrimeRecord)
			}
			s.emit(constants.ZeroFrametime, act, i, model.TriggerRecord)
		}
		c.SubInterval = math.Min(s.subInterval(i, c), c.Remaining)
		c.FreshBeat = false
	}
}

// subInterval is one oscillation period of the cursor's pitch, widened when
// the segment would otherwise need more than MaxTriggersPerSegment triggers.
func (s *Scheduler) subInterval(track int, c *Cursor) float64 {
	period := s.cfg.Tuning.Period(c.Pitch)
	triggers := c.Segment / period
	if triggers > constants.TriggerWarnThreshold && !c.warned {
		s.logger.Printf("track %d: pitch %d needs %.0f triggers for a %.3fs segment", track, c.Pitch, triggers, c.Segment)
		c.warned = true
	}
	if limit := s.cfg.MaxTriggersPerSegment; limit > 0 && triggers > float64(limit) {
		period = c.Segment / float64(limit)
	}
	return period
}

func (s *Scheduler) emit(frametime float64, a action.Action, track int, kind model.RecordKind) {
	s.records = append(s.records, model.Record{
		Frametime: frametime,
		Repeat:    1,
		Action:    a,
		Track:     track,
		Kind:      kind,
	})
}
