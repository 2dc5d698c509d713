package midi

import (
	"github.com/jsphweid/midi2hltas/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func isNote(msg smf.Message) bool {
	return msg.Is(gomidi.NoteOnMsg) || msg.Is(gomidi.NoteOffMsg)
}

// Excerpt copies mf starting at ticksOffset. Notes before the offset are
// dropped, other events before it are kept with their delta clamped to 1
// so tempo changes still apply. With maxNotes > 0 each track is closed after
// that many note events.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNotes int
		closed := false
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case isNote(evt.Message):
				if absTicks < ticksOffset {
					continue
				}
				newTrack = append(newTrack, evt)
				numNotes++
				if maxNotes > 0 && numNotes >= maxNotes {
					newTrack.Close(0)
					closed = true
					break TrackEventLoop
				}
			case evt.Message.Is(smf.MetaEndOfTrackMsg):
				newTrack = append(newTrack, evt)
				closed = true
				break TrackEventLoop
			default:
				if absTicks < ticksOffset {
					evt.Delta = util.Min(evt.Delta, 1)
				}
				newTrack = append(newTrack, evt)
			}
		}
		if !closed {
			newTrack.Close(0)
		}

		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}
