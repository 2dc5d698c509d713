package constants

import "os"

// GetConfigPath returns the config file named by MIDI2HLTAS_CONFIG, or ""
// when the built-in defaults should be used.
func GetConfigPath() string {
	return os.Getenv("MIDI2HLTAS_CONFIG")
}

func GetListenAddr() string {
	addr := os.Getenv("MIDI2HLTAS_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// Tick to duration conversion always assumes this resolution unless the
// caller opts into the file's own.
const TicksPerQuarter = 480

// 120 bpm, the SMF default when no tempo marker has been seen.
const DefaultTempo = 500000

// frametime used for records that should take effect "now"
const ZeroFrametime = 0.000000000001

// Remainders at or below this are treated as fully consumed.
const Epsilon = 1e-9

// A segment needing more triggers than this gets a warning.
const TriggerWarnThreshold = 1024

const ScriptExt = ".hltas"
