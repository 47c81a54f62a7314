package enums

import (
	"encoding/json"
	"fmt"
)

// Accidental is a signed semitone offset applied to a NoteName.
type Accidental int

const (
	Accidental_DoubleFlat Accidental = iota - 2
	Accidental_Flat
	Accidental_Natural
	Accidental_Sharp
	Accidental_DoubleSharp
)

func (a Accidental) Interval() int {
	return int(a)
}

// Symbol is the text written after the letter name.
func (a Accidental) Symbol() string {
	switch a {
	case Accidental_DoubleFlat:
		return "bb"
	case Accidental_Flat:
		return "b"
	case Accidental_Sharp:
		return "#"
	case Accidental_DoubleSharp:
		return "##"
	}
	return ""
}

func (a Accidental) String() string {
	s := "undefined"
	switch a {
	case Accidental_DoubleFlat:
		s = "DoubleFlat"
	case Accidental_Flat:
		s = "Flat"
	case Accidental_Natural:
		s = "Natural"
	case Accidental_Sharp:
		s = "Sharp"
	case Accidental_DoubleSharp:
		s = "DoubleSharp"
	}
	return fmt.Sprintf("%s(%+d)", s, int(a))
}

func (a Accidental) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Symbol())
}

// ParseAccidental matches the suffix of a note exactly.
func ParseAccidental(s string) (Accidental, bool) {
	switch s {
	case "bb":
		return Accidental_DoubleFlat, true
	case "b":
		return Accidental_Flat, true
	case "":
		return Accidental_Natural, true
	case "#":
		return Accidental_Sharp, true
	case "##":
		return Accidental_DoubleSharp, true
	}
	return 0, false
}
