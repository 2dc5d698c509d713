package convert

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/midi2hltas/config"
	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/hltas"
	"github.com/jsphweid/midi2hltas/midi"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/jsphweid/midi2hltas/scheduler"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	Config *config.Config

	// preview window, see midi.Excerpt
	StartTick uint64
	MaxNotes  int

	Logger *log.Logger
}

type Result struct {
	Script  []byte
	Records []model.Record
	Summary Summary
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

// Score schedules score and renders the script. Nothing is rendered unless
// scheduling succeeds.
func Score(score model.Score, opts Options) (Result, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	logger := opts.logger()
	if score.Resolution != 0 && score.Resolution != constants.TicksPerQuarter && !cfg.FileResolution {
		logger.Printf("file uses %d ticks per quarter, timing assumes %d", score.Resolution, constants.TicksPerQuarter)
	}

	s := scheduler.New(score, cfg.Actions, cfg.Scheduler(score.Resolution, logger))
	records, err := s.Run()
	if err != nil {
		return Result{}, errors.Wrap(err, "scheduling")
	}

	var buf bytes.Buffer
	if err := hltas.NewWriter(&buf, cfg.Preamble).WriteAll(records); err != nil {
		return Result{}, err
	}

	return Result{
		Script:  buf.Bytes(),
		Records: records,
		Summary: summarize(buf.Bytes(), records, s.TrackTimes()),
	}, nil
}

func SMF(mf *smf.SMF, opts Options) (Result, error) {
	if opts.StartTick > 0 || opts.MaxNotes > 0 {
		mf = midi.Excerpt(mf, opts.StartTick, opts.MaxNotes)
	}
	return Score(midi.ToScore(mf), opts)
}

func Reader(r io.Reader, opts Options) (Result, error) {
	mf, err := midi.Read(r)
	if err != nil {
		return Result{}, err
	}
	return SMF(mf, opts)
}

func File(path string, opts Options) (Result, error) {
	mf, err := midi.ReadMidiFile(path)
	if err != nil {
		return Result{}, err
	}
	return SMF(mf, opts)
}

// OutputPath puts the script next to the midi file.
func OutputPath(midiPath string) string {
	ext := filepath.Ext(midiPath)
	return strings.TrimSuffix(midiPath, ext) + constants.ScriptExt
}

// ScriptID is derived from the script bytes, so identical runs share it.
func ScriptID(script []byte) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, script)
}
