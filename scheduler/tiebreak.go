package scheduler

import (
	"strings"

	"github.com/pkg/errors"
)

// TieBreak decides which cursor sets the next step.
type TieBreak int

const (
	// LowestRemainder picks the smallest sub-interval, first track on ties.
	LowestRemainder TieBreak = iota
	// HighestPitchFirst picks the highest pitch and only then the smallest
	// sub-interval. The step is still cut at the shortest segment left.
	HighestPitchFirst
)

var tieBreakNames = map[TieBreak]string{
	LowestRemainder:   "lowest-remainder",
	HighestPitchFirst: "highest-pitch",
}

func (t TieBreak) String() string {
	return tieBreakNames[t]
}

func ParseTieBreak(s string) (TieBreak, error) {
	for t, name := range tieBreakNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return LowestRemainder, errors.Errorf("unknown tie-break %q", s)
}

func (t TieBreak) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TieBreak) UnmarshalText(text []byte) error {
	parsed, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// pick returns the index of the selected cursor among the ones not ended,
// or -1 if every cursor ended.
func (t TieBreak) pick(cursors []*Cursor) int {
	best := -1
	for i, c := range cursors {
		if c.Ended {
			continue
		}
		if best < 0 || t.less(c, cursors[best]) {
			best = i
		}
	}
	return best
}

// less is strict so that the earlier track wins a tie.
func (t TieBreak) less(a, b *Cursor) bool {
	if t == HighestPitchFirst && a.Pitch != b.Pitch {
		return a.Pitch > b.Pitch
	}
	return a.SubInterval < b.SubInterval
}
