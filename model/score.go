package model

type EventKind uint8

const (
	// OtherEvent is any message the converter does not interpret. Its delta
	// still counts.
	OtherEvent EventKind = iota
	TempoEvent
	EndOfTrackEvent
	NoteEvent
)

// Event is one entry of a track. Delta is the tick distance to the previous
// event.
type Event struct {
	Kind     EventKind
	Delta    uint32
	Pitch    uint8
	Velocity uint8

	// microseconds per quarter note, TempoEvent only
	Tempo uint32
}

type Track = []Event

type Score struct {
	// ticks per quarter note as declared by the file, 0 if unknown
	Resolution uint16
	Tracks     []Track
}

func Note(delta uint32, pitch uint8, velocity uint8) Event {
	return Event{Kind: NoteEvent, Delta: delta, Pitch: pitch, Velocity: velocity}
}

func Tempo(delta uint32, tempo uint32) Event {
	return Event{Kind: TempoEvent, Delta: delta, Tempo: tempo}
}

func EndOfTrack(delta uint32) Event {
	return Event{Kind: EndOfTrackEvent, Delta: delta}
}

func Other(delta uint32) Event {
	return Event{Kind: OtherEvent, Delta: delta}
}

func (k EventKind) String() string {
	switch k {
	case TempoEvent:
		return "tempo"
	case EndOfTrackEvent:
		return "end"
	case NoteEvent:
		return "note"
	}
	return "other"
}

// TrackTicks sums every delta in t.
func TrackTicks(t Track) uint64 {
	var total uint64
	for _, evt := range t {
		total += uint64(evt.Delta)
	}
	return total
}
