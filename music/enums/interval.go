package enums

import (
	"encoding/json"
	"fmt"
)

// Interval is a named distance in semitones. 18 has no name.
type Interval int

const (
	Interval_Unison Interval = iota
	Interval_MinorSecond
	Interval_MajorSecond
	Interval_MinorThird
	Interval_MajorThird
	Interval_PerfectFourth
	Interval_Tritone
	Interval_PerfectFifth
	Interval_MinorSixth
	Interval_MajorSixth
	Interval_MinorSeventh
	Interval_MajorSeventh
	Interval_Octave
	Interval_MinorNinth
	Interval_MajorNinth
	Interval_MinorTenth
	Interval_MajorTenth
	Interval_PerfectEleventh
)

const (
	Interval_PerfectTwelfth Interval = iota + 19
	Interval_MinorThirteenth
	Interval_MajorThirteenth
)

var intervalName = map[Interval]string{
	Interval_Unison:          "Unison",
	Interval_MinorSecond:     "Minor 2",
	Interval_MajorSecond:     "Major 2",
	Interval_MinorThird:      "Minor 3",
	Interval_MajorThird:      "Major 3",
	Interval_PerfectFourth:   "Perfect 4",
	Interval_Tritone:         "Tritone",
	Interval_PerfectFifth:    "Perfect 5",
	Interval_MinorSixth:      "Minor 6",
	Interval_MajorSixth:      "Major 6",
	Interval_MinorSeventh:    "Minor 7",
	Interval_MajorSeventh:    "Major 7",
	Interval_Octave:          "Octave",
	Interval_MinorNinth:      "Minor 9",
	Interval_MajorNinth:      "Major 9",
	Interval_MinorTenth:      "Minor 10",
	Interval_MajorTenth:      "Major 10",
	Interval_PerfectEleventh: "Perfect 11",
	Interval_PerfectTwelfth:  "Perfect 12",
	Interval_MinorThirteenth: "Minor 13",
	Interval_MajorThirteenth: "Major 13",
}

// NewInterval converts a semitone count from a hardcoded table into an
// Interval. It panics on a size with no name.
func NewInterval(size int) Interval {
	i, ok := LookupInterval(size)
	if !ok {
		panic(fmt.Sprintf("Invalid Interval size: %d", size))
	}
	return i
}

// LookupInterval is the fallible form of NewInterval for untrusted input.
func LookupInterval(size int) (Interval, bool) {
	i := Interval(size)
	_, ok := intervalName[i]
	return i, ok
}

func (i Interval) Size() int {
	return int(i)
}

func (i Interval) String() string {
	if s, ok := intervalName[i]; ok {
		return s
	}
	return fmt.Sprintf("undefined(%d)", int(i))
}

func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}
