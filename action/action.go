package action

import (
	"fmt"
	"strconv"
)

// Action is one command a track fires when its note re-triggers. The set of
// variants is closed; every switch over it lists all of them.
type Action interface {
	isAction()
}

type None struct{}

// Flashlight toggles the flashlight with impulse 100.
type Flashlight struct{}

// SwitchScroll selects a fixed weapon slot (0-5).
type SwitchScroll struct {
	Slot uint8
}

// SwitchGroup alternates between slot2 and slot1 every time it resolves.
type SwitchGroup struct{}

type Use struct{}

// Ducktap is repeat sensitive, so it only fires on the first trigger of a
// segment.
type Ducktap struct{}

type Nice struct{}
type Nice2 struct{}
type Nice3 struct{}

type Stopsound struct{}

// Attack1 needs a press pulse before it can repeat, so it is always primed
// with an extra record.
type Attack1 struct{}

type WpnMoveSelect struct{}

// EmitInfo holds the arguments of a bxt_emit_sound invocation.
type EmitInfo struct {
	Sound   string
	Channel int
	Volume  float32
	From    uint32
}

type Emit struct {
	EmitInfo
}

type EmitDynamic struct {
	EmitInfo
}

// Counter marks quantization boundaries with an increasing number. Debug only.
type Counter struct{}

func (None) isAction()          {}
func (Flashlight) isAction()    {}
func (SwitchScroll) isAction()  {}
func (SwitchGroup) isAction()   {}
func (Use) isAction()           {}
func (Ducktap) isAction()       {}
func (Nice) isAction()          {}
func (Nice2) isAction()         {}
func (Nice3) isAction()         {}
func (Stopsound) isAction()     {}
func (Attack1) isAction()       {}
func (WpnMoveSelect) isAction() {}
func (Emit) isAction()          {}
func (EmitDynamic) isAction()   {}
func (Counter) isAction()       {}

// IsSustainedTap reports whether a must be suppressed on repeat triggers.
func IsSustainedTap(a Action) bool {
	_, ok := a.(Ducktap)
	return ok
}

// IsSingleStrike reports whether a needs a priming record before each trigger.
func IsSingleStrike(a Action) bool {
	_, ok := a.(Attack1)
	return ok
}

func (e EmitInfo) args() string {
	return fmt.Sprintf("%s %d %s %d 0 0.8 0 100",
		e.Sound, e.Channel, strconv.FormatFloat(float64(e.Volume), 'f', -1, 32), e.From)
}
