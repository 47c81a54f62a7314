package note

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/but80/eartrainer/music/enums"
	"github.com/pkg/errors"
)

const PitchClasses = 12

// Note is a spelled pitch class. Two notes are Equal when they sound the
// same, even if they are spelled differently.
type Note struct {
	Name       enums.NoteName
	Accidental enums.Accidental
}

func New(name enums.NoteName, accidental enums.Accidental) Note {
	return Note{Name: name, Accidental: accidental}
}

// defaultSpelling assigns naturals to white keys and sharps to black keys.
var defaultSpelling = [PitchClasses]Note{
	{enums.NoteName_A, enums.Accidental_Natural},
	{enums.NoteName_A, enums.Accidental_Sharp},
	{enums.NoteName_B, enums.Accidental_Natural},
	{enums.NoteName_C, enums.Accidental_Natural},
	{enums.NoteName_C, enums.Accidental_Sharp},
	{enums.NoteName_D, enums.Accidental_Natural},
	{enums.NoteName_D, enums.Accidental_Sharp},
	{enums.NoteName_E, enums.Accidental_Natural},
	{enums.NoteName_F, enums.Accidental_Natural},
	{enums.NoteName_F, enums.Accidental_Sharp},
	{enums.NoteName_G, enums.Accidental_Natural},
	{enums.NoteName_G, enums.Accidental_Sharp},
}

// FromPitch returns the default spelling of a pitch class in [0,12).
// Any other value is a programming error and panics.
func FromPitch(pitch int) Note {
	if pitch < 0 || PitchClasses <= pitch {
		panic(fmt.Sprintf("Invalid pitch class: %d", pitch))
	}
	return defaultSpelling[pitch]
}

func normalize(semitones int) int {
	return ((semitones % PitchClasses) + PitchClasses) % PitchClasses
}

func (n Note) Pitch() int {
	return normalize(n.Name.Pitch() + n.Accidental.Interval())
}

// Equal compares pitch classes.
func (n Note) Equal(other Note) bool {
	return n.Pitch() == other.Pitch()
}

// SameSpelling compares letter and accidental.
func (n Note) SameSpelling(other Note) bool {
	return n.Name == other.Name && n.Accidental == other.Accidental
}

// Transpose moves the note by a signed number of semitones and returns
// the default spelling of the result.
func (n Note) Transpose(semitones int) Note {
	return FromPitch(normalize(n.Pitch() + normalize(semitones)))
}

func (n Note) Add(interval enums.Interval) Note {
	return n.Transpose(interval.Size())
}

func (n Note) Sub(interval enums.Interval) Note {
	return n.Transpose(-interval.Size())
}

// Enharmonic returns the other common spelling of the same pitch class.
func (n Note) Enharmonic() Note {
	result := n
	switch n.Accidental {
	case enums.Accidental_DoubleFlat, enums.Accidental_DoubleSharp:
		result = FromPitch(n.Pitch())
	case enums.Accidental_Flat:
		result.Name = n.Name.StepDown()
		result.Accidental = enums.Accidental_Sharp
		if n.Name == enums.NoteName_C || n.Name == enums.NoteName_F {
			result.Accidental = enums.Accidental_Natural
		}
	case enums.Accidental_Sharp:
		result.Name = n.Name.StepUp()
		result.Accidental = enums.Accidental_Flat
		if n.Name == enums.NoteName_B || n.Name == enums.NoteName_E {
			result.Accidental = enums.Accidental_Natural
		}
	}
	if result.Pitch() != n.Pitch() {
		panic(fmt.Sprintf("Enharmonic of %s changed pitch: %s", n, result))
	}
	return result
}

// SpellAs respells n on the given letter. It fails when that would need
// more than a double accidental.
func (n Note) SpellAs(name enums.NoteName) (Note, bool) {
	diff := normalize(n.Pitch() - name.Pitch())
	if PitchClasses/2 < diff {
		diff -= PitchClasses
	}
	if diff < enums.Accidental_DoubleFlat.Interval() || enums.Accidental_DoubleSharp.Interval() < diff {
		return n, false
	}
	return New(name, enums.Accidental(diff)), true
}

func (n Note) String() string {
	return n.Name.String() + n.Accidental.Symbol()
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnrecognizedNoteError reports text that is not a note.
type UnrecognizedNoteError struct {
	Text string
}

func (e *UnrecognizedNoteError) Error() string {
	return fmt.Sprintf("unrecognized note %q", e.Text)
}

// IsUnrecognized reports whether the cause of err is an UnrecognizedNoteError.
func IsUnrecognized(err error) bool {
	_, ok := errors.Cause(err).(*UnrecognizedNoteError)
	return ok
}

// Parse reads a letter A-G in either case followed by "", "b", "bb", "#"
// or "##". No surrounding whitespace is accepted.
func Parse(s string) (Note, error) {
	if s == "" {
		return Note{}, errors.WithStack(&UnrecognizedNoteError{Text: s})
	}
	name, ok := enums.ParseNoteName(s[:1])
	if !ok {
		return Note{}, errors.WithStack(&UnrecognizedNoteError{Text: s})
	}
	accidental, ok := enums.ParseAccidental(s[1:])
	if !ok {
		return Note{}, errors.WithStack(&UnrecognizedNoteError{Text: s})
	}
	return New(name, accidental), nil
}

// MustParse is for hardcoded notes.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Notes is an ordered spelling such as a chord or a scale.
type Notes []Note

// Equal compares two sequences note by note by pitch class.
func (ns Notes) Equal(other Notes) bool {
	if len(ns) != len(other) {
		return false
	}
	for i := range ns {
		if !ns[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// SameSpelling compares two sequences note by note by spelling.
func (ns Notes) SameSpelling(other Notes) bool {
	if len(ns) != len(other) {
		return false
	}
	for i := range ns {
		if !ns[i].SameSpelling(other[i]) {
			return false
		}
	}
	return true
}

func (ns Notes) Strings() []string {
	result := make([]string, len(ns))
	for i, n := range ns {
		result[i] = n.String()
	}
	return result
}

func (ns Notes) String() string {
	return strings.Join(ns.Strings(), " ")
}

// ParseNotes reads whitespace separated notes and stops at the first one
// that does not parse.
func ParseNotes(input string) (Notes, error) {
	result := Notes{}
	for i, field := range strings.Fields(input) {
		n, err := Parse(field)
		if err != nil {
			return nil, errors.Wrapf(err, "note #%d", i+1)
		}
		result = append(result, n)
	}
	return result, nil
}
