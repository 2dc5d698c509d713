package action

import (
	"fmt"
	"strconv"
)

// Resolver turns actions into command text. It owns the state of the two
// stateful variants, so every output run needs its own Resolver.
type Resolver struct {
	group   uint8
	counter int
}

func NewResolver() *Resolver {
	return &Resolver{group: 1}
}

// Text returns the trailing command text for a. SwitchGroup and Counter
// advance their state on every call.
func (r *Resolver) Text(a Action) string {
	switch a := a.(type) {
	case None, Use, Ducktap:
		return ""
	case Flashlight:
		return "impulse 100"
	case SwitchScroll:
		if a.Slot > 5 {
			return ""
		}
		return "slot" + strconv.Itoa(int(a.Slot))
	case SwitchGroup:
		r.group = r.group%2 + 1
		return "slot" + strconv.Itoa(int(r.group))
	case Nice:
		return "speak player/sprayer"
	case Nice2:
		return `speak "common/bodysplat(v30)"`
	case Nice3:
		return `speak "common/wpn_moveselect(v30)"`
	case Stopsound:
		return "stopsound"
	case Attack1:
		return "+attack; wait; -attack"
	case WpnMoveSelect:
		return `speak "common/wpn_moveselect"`
	case Emit:
		return fmt.Sprintf(`bxt_emit_sound "%s"`, a.args())
	case EmitDynamic:
		return fmt.Sprintf(`bxt_emit_sound_dynamic "%s"`, a.args())
	case Counter:
		r.counter++
		return "echo " + strconv.Itoa(r.counter)
	}
	return ""
}
