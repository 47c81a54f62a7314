package enums

import (
	"encoding/json"
	"strings"
)

// NoteName is one of the seven diatonic letters. Its value is the pitch
// offset from A in semitones.
type NoteName int

const (
	NoteName_A NoteName = 0
	NoteName_B NoteName = 2
	NoteName_C NoteName = 3
	NoteName_D NoteName = 5
	NoteName_E NoteName = 7
	NoteName_F NoteName = 8
	NoteName_G NoteName = 10
)

var NoteNames = []NoteName{
	NoteName_A,
	NoteName_B,
	NoteName_C,
	NoteName_D,
	NoteName_E,
	NoteName_F,
	NoteName_G,
}

func (n NoteName) Pitch() int {
	return int(n)
}

func (n NoteName) StepUp() NoteName {
	switch n {
	case NoteName_A:
		return NoteName_B
	case NoteName_B:
		return NoteName_C
	case NoteName_C:
		return NoteName_D
	case NoteName_D:
		return NoteName_E
	case NoteName_E:
		return NoteName_F
	case NoteName_F:
		return NoteName_G
	}
	return NoteName_A
}

func (n NoteName) StepDown() NoteName {
	switch n {
	case NoteName_B:
		return NoteName_A
	case NoteName_C:
		return NoteName_B
	case NoteName_D:
		return NoteName_C
	case NoteName_E:
		return NoteName_D
	case NoteName_F:
		return NoteName_E
	case NoteName_G:
		return NoteName_F
	}
	return NoteName_G
}

func (n NoteName) String() string {
	switch n {
	case NoteName_A:
		return "A"
	case NoteName_B:
		return "B"
	case NoteName_C:
		return "C"
	case NoteName_D:
		return "D"
	case NoteName_E:
		return "E"
	case NoteName_F:
		return "F"
	case NoteName_G:
		return "G"
	}
	return "undefined"
}

func (n NoteName) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// ParseNoteName accepts a single letter A-G in either case.
func ParseNoteName(s string) (NoteName, bool) {
	for _, n := range NoteNames {
		if strings.EqualFold(s, n.String()) {
			return n, true
		}
	}
	return 0, false
}
