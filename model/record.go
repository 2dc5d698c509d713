package model

import "github.com/jsphweid/midi2hltas/action"

// RecordKind says why a record was emitted.
type RecordKind int

const (
	// WaitRecord advances the global clock.
	WaitRecord RecordKind = iota
	// TriggerRecord fires the track's action.
	TriggerRecord
	// PrimeRecord is the extra copy sent ahead of a single-strike trigger.
	PrimeRecord
	// StopRecord silences a resting track.
	StopRecord
	// MarkerRecord is a diagnostic counter.
	MarkerRecord
)

// Record is one output line: advance by Frametime seconds, Repeat times,
// firing Action.
type Record struct {
	Frametime float64
	Repeat    uint32
	Action    action.Action

	// track that caused the record, -1 for plain waits
	Track int
	Kind  RecordKind
}
