package cmd

import (
	"github.com/jsphweid/midi2hltas/action"
	"github.com/jsphweid/midi2hltas/config"
	"github.com/jsphweid/midi2hltas/convert"
	"github.com/jsphweid/midi2hltas/scheduler"
	"github.com/spf13/pflag"
)

// convertFlags override the config file for a single invocation. Only flags
// the user actually set are applied.
type convertFlags struct {
	actions        []string
	legato         uint32
	referencePitch int
	referenceHz    float64
	tieBreak       string
	diagnostic     bool
	defaultTempo   uint32
	strictTempo    bool
	fileResolution bool
	maxTriggers    int
	preamble       bool
	startTick      uint64
	maxNotes       int
}

func (f *convertFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.actions, "actions", "a", nil, "action for the next track, repeat once per track, e.g. -a slot:2 -a nice3 (see midi2hltas actions)")
	fs.Uint32Var(&f.legato, "legato", 1, "deltas at or below this many ticks (0 or 1) do not end a segment")
	fs.IntVar(&f.referencePitch, "reference-pitch", 69, "note index that sounds at --reference-hz (69 = A4, some exports use 72)")
	fs.Float64Var(&f.referenceHz, "reference-hz", 440, "frequency of the reference pitch")
	fs.StringVar(&f.tieBreak, "tie-break", scheduler.LowestRemainder.String(), "step selection: lowest-remainder|highest-pitch")
	fs.BoolVar(&f.diagnostic, "diagnostic", false, "emit numbered echo markers at every step")
	fs.Uint32Var(&f.defaultTempo, "default-tempo", 500000, "microseconds per quarter assumed before the first tempo marker")
	fs.BoolVar(&f.strictTempo, "strict-tempo", false, "fail instead of assuming --default-tempo")
	fs.BoolVar(&f.fileResolution, "file-resolution", false, "use the file's ticks per quarter instead of 480")
	fs.IntVar(&f.maxTriggers, "max-triggers", 0, "cap re-triggers per segment (0 = no cap)")
	fs.BoolVar(&f.preamble, "preamble", false, "write the HLTAS version/frames header")
	fs.Uint64Var(&f.startTick, "start-tick", 0, "preview: drop notes before this tick")
	fs.IntVar(&f.maxNotes, "max-notes", 0, "preview: stop every track after this many notes")
}

func (f *convertFlags) options(fs *pflag.FlagSet) (convert.Options, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return convert.Options{}, err
	}
	if err := f.apply(fs, cfg); err != nil {
		return convert.Options{}, err
	}
	return convert.Options{
		Config:    cfg,
		StartTick: f.startTick,
		MaxNotes:  f.maxNotes,
		Logger:    logger,
	}, nil
}

func (f *convertFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("actions") {
		actions, err := action.ParseList(f.actions)
		if err != nil {
			return err
		}
		cfg.Actions = action.NewTable(actions...)
	}
	if fs.Changed("tie-break") {
		tb, err := scheduler.ParseTieBreak(f.tieBreak)
		if err != nil {
			return err
		}
		cfg.TieBreak = tb
	}
	if fs.Changed("legato") {
		cfg.Legato = f.legato
	}
	if fs.Changed("reference-pitch") {
		cfg.ReferencePitch = f.referencePitch
	}
	if fs.Changed("reference-hz") {
		cfg.ReferenceHz = f.referenceHz
	}
	if fs.Changed("diagnostic") {
		cfg.Diagnostic = f.diagnostic
	}
	if fs.Changed("default-tempo") {
		cfg.DefaultTempo = f.defaultTempo
	}
	if fs.Changed("strict-tempo") {
		cfg.StrictTempo = f.strictTempo
	}
	if fs.Changed("file-resolution") {
		cfg.FileResolution = f.fileResolution
	}
	if fs.Changed("max-triggers") {
		cfg.MaxTriggersPerSegment = f.maxTriggers
	}
	if fs.Changed("preamble") {
		cfg.Preamble = f.preamble
	}
	return cfg.Validate()
}
