package action

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

var ErrUnknownAction = errors.New("unknown action")

type parseFunc func(args string) (Action, error)

func plain(a Action) parseFunc {
	return func(args string) (Action, error) {
		if args != "" {
			return nil, errors.Errorf("takes no arguments, got %q", args)
		}
		return a, nil
	}
}

var registry = map[string]parseFunc{
	"none":           plain(None{}),
	"flashlight":     plain(Flashlight{}),
	"switch-group":   plain(SwitchGroup{}),
	"use":            plain(Use{}),
	"ducktap":        plain(Ducktap{}),
	"nice":           plain(Nice{}),
	"nice2":          plain(Nice2{}),
	"nice3":          plain(Nice3{}),
	"stopsound":      plain(Stopsound{}),
	"attack1":        plain(Attack1{}),
	"wpn-moveselect": plain(WpnMoveSelect{}),
	"counter":        plain(Counter{}),
	"slot": func(args string) (Action, error) {
		n, err := strconv.ParseUint(args, 10, 8)
		if err != nil {
			return nil, errors.Wrap(err, "slot number")
		}
		return SwitchScroll{Slot: uint8(n)}, nil
	},
	"emit": func(args string) (Action, error) {
		info, err := parseEmitInfo(args)
		if err != nil {
			return nil, err
		}
		return Emit{info}, nil
	},
	"emit-dynamic": func(args string) (Action, error) {
		info, err := parseEmitInfo(args)
		if err != nil {
			return nil, err
		}
		return EmitDynamic{info}, nil
	},
}

// emit arguments: sound,channel,volume,from
func parseEmitInfo(args string) (EmitInfo, error) {
	var info EmitInfo
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return info, errors.Errorf("want sound,channel,volume,from, got %q", args)
	}
	info.Sound = strings.TrimSpace(parts[0])
	if info.Sound == "" {
		return info, errors.New("empty sound name")
	}
	channel, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return info, errors.Wrap(err, "channel")
	}
	volume, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 32)
	if err != nil {
		return info, errors.Wrap(err, "volume")
	}
	from, err := strconv.ParseUint(strings.TrimSpace(parts[3]), 10, 32)
	if err != nil {
		return info, errors.Wrap(err, "from")
	}
	info.Channel = channel
	info.Volume = float32(volume)
	info.From = uint32(from)
	return info, nil
}

// Parse reads an action written as "name" or "name:args", e.g. "slot:2" or
// "emit:common/bodysplat.wav,3,0.1,35".
func Parse(s string) (Action, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(s), ":")
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "%q", name)
	}
	a, err := fn(args)
	if err != nil {
		return nil, errors.Wrapf(err, "action %q", s)
	}
	return a, nil
}

// ParseList parses one action per track.
func ParseList(items []string) ([]Action, error) {
	res := make([]Action, 0, len(items))
	for i, item := range items {
		a, err := Parse(item)
		if err != nil {
			return nil, errors.Wrapf(err, "track %d", i)
		}
		res = append(res, a)
	}
	return res, nil
}

// Names lists every action name Parse accepts, sorted.
func Names() []string {
	names := maps.Keys(registry)
	sort.Strings(names)
	return names
}

// String renders a in the syntax Parse accepts.
func String(a Action) string {
	switch a := a.(type) {
	case None:
		return "none"
	case Flashlight:
		return "flashlight"
	case SwitchScroll:
		return "slot:" + strconv.Itoa(int(a.Slot))
	case SwitchGroup:
		return "switch-group"
	case Use:
		return "use"
	case Ducktap:
		return "ducktap"
	case Nice:
		return "nice"
	case Nice2:
		return "nice2"
	case Nice3:
		return "nice3"
	case Stopsound:
		return "stopsound"
	case Attack1:
		return "attack1"
	case WpnMoveSelect:
		return "wpn-moveselect"
	case Emit:
		return "emit:" + a.EmitInfo.String()
	case EmitDynamic:
		return "emit-dynamic:" + a.EmitInfo.String()
	case Counter:
		return "counter"
	}
	return ""
}

func (e EmitInfo) String() string {
	return strings.Join([]string{
		e.Sound,
		strconv.Itoa(e.Channel),
		strconv.FormatFloat(float64(e.Volume), 'f', -1, 32),
		strconv.FormatUint(uint64(e.From), 10),
	}, ",")
}
