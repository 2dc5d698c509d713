package midi

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/jsphweid/midi2hltas/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.Errorf("parsing midi file panicked: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

// ToScore keeps note-on, tempo and end-of-track messages. Everything else
// becomes an OtherEvent so its delta is not lost.
func ToScore(s *smf.SMF) model.Score {
	var score model.Score
	if tf, ok := s.TimeFormat.(smf.MetricTicks); ok {
		score.Resolution = uint16(tf)
	}
	for _, track := range s.Tracks {
		events := make(model.Track, 0, len(track))
		for _, evt := range track {
			events = append(events, toEvent(evt))
		}
		score.Tracks = append(score.Tracks, events)
	}
	return score
}

func toEvent(evt smf.Event) model.Event {
	msg := evt.Message
	var bpm float64
	switch {
	case msg.Is(smf.MetaEndOfTrackMsg):
		return model.EndOfTrack(evt.Delta)
	case msg.GetMetaTempo(&bpm):
		if bpm <= 0 {
			return model.Other(evt.Delta)
		}
		return model.Tempo(evt.Delta, uint32(math.Round(60_000_000/bpm)))
	}
	if key, vel, ok := noteOn(msg); ok {
		return model.Note(evt.Delta, key, vel)
	}
	return model.Other(evt.Delta)
}

// noteOn reads the raw status byte: a note-on with velocity 0 has to stay a
// note-on here instead of being folded into note-off.
func noteOn(msg smf.Message) (key uint8, vel uint8, ok bool) {
	if len(msg) != 3 || msg[0]&0xF0 != 0x90 {
		return 0, 0, false
	}
	return msg[1], msg[2], true
}

func ReadScore(filepath string) (model.Score, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return model.Score{}, err
	}
	return ToScore(s), nil
}
