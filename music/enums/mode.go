package enums

import (
	"encoding/json"
	"strings"
)

// Mode is a rotation of a seven step scale.
type Mode int

const (
	Mode_Ionian Mode = iota
	Mode_Dorian
	Mode_Phrygian
	Mode_Lydian
	Mode_Mixolydian
	Mode_Aeolian
	Mode_Locrian
)

const ModeCount = 7

var Modes = []Mode{
	Mode_Ionian,
	Mode_Dorian,
	Mode_Phrygian,
	Mode_Lydian,
	Mode_Mixolydian,
	Mode_Aeolian,
	Mode_Locrian,
}

// ModeOf wraps n into the seven modes instead of failing.
func ModeOf(n int) Mode {
	return Mode(((n % ModeCount) + ModeCount) % ModeCount)
}

func (m Mode) Index() int {
	return int(m)
}

func (m Mode) String() string {
	switch m {
	case Mode_Ionian:
		return "Ionian"
	case Mode_Dorian:
		return "Dorian"
	case Mode_Phrygian:
		return "Phrygian"
	case Mode_Lydian:
		return "Lydian"
	case Mode_Mixolydian:
		return "Mixolydian"
	case Mode_Aeolian:
		return "Aeolian"
	case Mode_Locrian:
		return "Locrian"
	}
	return "undefined"
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func ParseMode(s string) (Mode, bool) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, true
		}
	}
	return 0, false
}
