package action

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolverText(t *testing.T) {
	cases := []struct {
		action   Action
		expected string
	}{
		{None{}, ""},
		{Flashlight{}, "impulse 100"},
		{SwitchScroll{Slot: 3}, "slot3"},
		{SwitchScroll{Slot: 9}, ""},
		{Nice{}, "speak player/sprayer"},
		{Nice2{}, `speak "common/bodysplat(v30)"`},
		{Nice3{}, `speak "common/wpn_moveselect(v30)"`},
		{Stopsound{}, "stopsound"},
		{Attack1{}, "+attack; wait; -attack"},
		{WpnMoveSelect{}, `speak "common/wpn_moveselect"`},
		{Emit{EmitInfo{Sound: "common/bodysplat.wav", Channel: 3, Volume: 0.1, From: 35}},
			`bxt_emit_sound "common/bodysplat.wav 3 0.1 35 0 0.8 0 100"`},
		{EmitDynamic{EmitInfo{Sound: "common/bodysplat.wav", Channel: 6, Volume: 0.3, From: 37}},
			`bxt_emit_sound_dynamic "common/bodysplat.wav 6 0.3 37 0 0.8 0 100"`},
	}
	for _, c := range cases {
		t.Run(String(c.action), func(t *testing.T) {
			assert.Equal(t, c.expected, NewResolver().Text(c.action))
		})
	}
}

func TestSwitchGroupAlternates(t *testing.T) {
	r := NewResolver()
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, r.Text(SwitchGroup{}))
	}
	assert.Equal(t, []string{"slot2", "slot1", "slot2", "slot1"}, got)

	// a fresh resolver starts over
	assert.Equal(t, "slot2", NewResolver().Text(SwitchGroup{}))
}

func TestCounterIncrements(t *testing.T) {
	r := NewResolver()
	assert := assert.New(t)
	assert.Equal("echo 1", r.Text(Counter{}))
	r.Text(SwitchGroup{})
	assert.Equal("echo 2", r.Text(Counter{}))
}

func TestParseRoundTripsString(t *testing.T) {
	for _, s := range []string{
		"none", "flashlight", "slot:2", "switch-group", "use", "ducktap", "nice", "nice2", "nice3",
		"stopsound", "attack1", "wpn-moveselect", "counter",
		"emit:common/bodysplat.wav,4,0.3,36", "emit-dynamic:player/pl_tile2.wav,4,150,0",
	} {
		a, err := Parse(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, s, String(a))
		}
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("jump")
	assert.True(errors.Is(err, ErrUnknownAction))

	_, err = Parse("slot:x")
	assert.Error(err)

	_, err = Parse("emit:a.wav,1,0.5")
	assert.Error(err)

	_, err = Parse("ducktap:1")
	assert.Error(err)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	a, err := Parse(" Ducktap ")
	assert.NoError(t, err)
	assert.Equal(t, Ducktap{}, a)
}

func TestVariantPredicates(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsSustainedTap(Ducktap{}))
	assert.False(IsSustainedTap(Use{}))
	assert.True(IsSingleStrike(Attack1{}))
	assert.False(IsSingleStrike(Flashlight{}))
}

func TestTableValidate(t *testing.T) {
	table := NewTable(SwitchScroll{Slot: 2}, Nice3{}, Use{})
	assert := assert.New(t)
	assert.NoError(table.Validate(3))

	err := table.Validate(4)
	assert.True(errors.Is(err, ErrTableMismatch))
}

func TestTableJSON(t *testing.T) {
	var table Table
	err := json.Unmarshal([]byte(`["slot:2", "nice3", "emit:common/bodysplat.wav,3,0.1,35"]`), &table)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3, table.Len())
	assert.Equal(Nice3{}, table.Action(1))

	data, err := json.Marshal(table)
	assert.NoError(err)
	assert.JSONEq(`["slot:2","nice3","emit:common/bodysplat.wav,3,0.1,35"]`, string(data))

	err = json.Unmarshal([]byte(`["slot:2", "moonwalk"]`), &table)
	assert.True(errors.Is(err, ErrUnknownAction))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "emit-dynamic")
	assert.IsIncreasing(t, names)
}
