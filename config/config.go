package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/jsphweid/midi2hltas/action"
	"github.com/jsphweid/midi2hltas/constants"
	"github.com/jsphweid/midi2hltas/pitch"
	"github.com/jsphweid/midi2hltas/scheduler"
	"github.com/pkg/errors"
)

// Config is everything a conversion needs besides the score.
type Config struct {
	// one action per track, e.g. ["slot:2", "nice3"]
	Actions action.Table `json:"actions"`

	Legato         uint32             `json:"legato"`
	ReferencePitch int                `json:"referencePitch"`
	ReferenceHz    float64            `json:"referenceHz"`
	TieBreak       scheduler.TieBreak `json:"tieBreak"`
	Diagnostic     bool               `json:"diagnostic,omitempty"`

	DefaultTempo uint32 `json:"defaultTempo"`
	StrictTempo  bool   `json:"strictTempo,omitempty"`

	// use the file's ticks per quarter instead of 480
	FileResolution bool `json:"fileResolution,omitempty"`

	MaxTriggersPerSegment int `json:"maxTriggersPerSegment,omitempty"`

	// write the "version 1" / "frames" header
	Preamble bool `json:"preamble,omitempty"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Legato:         1,
		ReferencePitch: pitch.DefaultTuning.ReferencePitch,
		ReferenceHz:    pitch.DefaultTuning.ReferenceHz,
		TieBreak:       scheduler.LowestRemainder,
		DefaultTempo:   constants.DefaultTempo,
	}
}

// Load reads the config at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Legato > 1 {
		return errors.Errorf("legato must be 0 or 1, got %d", c.Legato)
	}
	if c.ReferenceHz <= 0 {
		return errors.Errorf("referenceHz must be positive, got %v", c.ReferenceHz)
	}
	if c.ReferencePitch < 0 || c.ReferencePitch > 127 {
		return errors.Errorf("referencePitch must be a note index, got %d", c.ReferencePitch)
	}
	if c.MaxTriggersPerSegment < 0 {
		return errors.Errorf("maxTriggersPerSegment must not be negative, got %d", c.MaxTriggersPerSegment)
	}
	return nil
}

func (c *Config) Tuning() pitch.Tuning {
	return pitch.Tuning{ReferencePitch: c.ReferencePitch, ReferenceHz: c.ReferenceHz}
}

// Scheduler builds the scheduler settings for a score declaring
// fileResolution ticks per quarter.
func (c *Config) Scheduler(fileResolution uint16, logger *log.Logger) scheduler.Config {
	cfg := scheduler.DefaultConfig()
	cfg.Legato = c.Legato
	cfg.Tuning = c.Tuning()
	cfg.TieBreak = c.TieBreak
	cfg.Diagnostic = c.Diagnostic
	cfg.DefaultTempo = c.DefaultTempo
	cfg.StrictTempo = c.StrictTempo
	cfg.MaxTriggersPerSegment = c.MaxTriggersPerSegment
	cfg.Logger = logger
	if c.FileResolution && fileResolution != 0 {
		cfg.Resolution = fileResolution
	}
	return cfg
}
