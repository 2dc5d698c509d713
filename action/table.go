package action

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrTableMismatch = errors.New("action table length does not match track count")

// Table maps a track index to the action it fires. It is fixed for a run.
type Table struct {
	actions []Action
}

func NewTable(actions ...Action) Table {
	return Table{actions: append([]Action(nil), actions...)}
}

func (t Table) Len() int {
	return len(t.actions)
}

// Action returns the action for track. Validate must have passed for the
// track count, so every index is present.
func (t Table) Action(track int) Action {
	return t.actions[track]
}

// Validate fails when the table does not have exactly one entry per track.
func (t Table) Validate(tracks int) error {
	if len(t.actions) != tracks {
		return errors.Wrapf(ErrTableMismatch, "%d actions for %d tracks", len(t.actions), tracks)
	}
	return nil
}

func (t Table) Strings() []string {
	res := make([]string, len(t.actions))
	for i, a := range t.actions {
		res[i] = String(a)
	}
	return res
}

func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Strings())
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	actions, err := ParseList(items)
	if err != nil {
		return err
	}
	t.actions = actions
	return nil
}
