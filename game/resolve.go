package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/but80/eartrainer/music/chord"
	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
	"github.com/but80/eartrainer/music/scale"
	"github.com/pkg/errors"
)

// UnknownNameError reports a chord, scale, mode or interval that is not in the catalog.
type UnknownNameError struct {
	Kind string
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func IsUnknownName(err error) bool {
	_, ok := errors.Cause(err).(*UnknownNameError)
	return ok
}

func unknown(kind, name string) error {
	return errors.WithStack(&UnknownNameError{Kind: kind, Name: name})
}

// Spelling is a labelled answer as the quiz would expect it.
type Spelling struct {
	Label string     `json:"label"`
	Notes note.Notes `json:"notes"`
}

func (s Spelling) String() string {
	return fmt.Sprintf("%s: %s", s.Label, s.Notes)
}

// catalogName accepts dashes and underscores in place of spaces.
func catalogName(name string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
}

func SpellInterval(root note.Note, size int, descending bool) (Spelling, error) {
	iv, ok := enums.LookupInterval(size)
	if !ok {
		return Spelling{}, unknown("interval", strconv.Itoa(size))
	}
	round := &IntervalsRound{Root: root, Descending: descending, Interval: iv}
	return Spelling{
		Label: round.Prompt(),
		Notes: note.Notes{root, round.Expected()},
	}, nil
}

func SpellChord(root note.Note, quality string) (Spelling, error) {
	q, ok := chord.Lookup(catalogName(quality))
	if !ok {
		return Spelling{}, unknown("chord quality", quality)
	}
	round := &ChordsRound{Root: root, Quality: q}
	return Spelling{Label: round.Prompt(), Notes: round.Expected()}, nil
}

// SpellScale spells a scale, or a mode of it when mode is not empty.
func SpellScale(root note.Note, name string, mode string) (Spelling, error) {
	s, ok := scale.Lookup(catalogName(name))
	if !ok {
		return Spelling{}, unknown("scale", name)
	}
	choice := PlainScale(s)
	if mode != "" {
		m, ok := enums.ParseMode(mode)
		if !ok {
			return Spelling{}, unknown("mode", mode)
		}
		choice = ModalScale(scale.NewModal(s, m))
	}
	round := &ScalesRound{Root: root, Scale: choice}
	return Spelling{Label: round.Prompt(), Notes: round.Expected()}, nil
}

// Resolve interprets target as an interval size, a chord quality, a scale
// or a mode of the major scale, in that order.
func Resolve(root note.Note, target string, descending bool) (Spelling, error) {
	if size, err := strconv.Atoi(target); err == nil {
		return SpellInterval(root, size, descending)
	}
	if _, ok := chord.Lookup(catalogName(target)); ok {
		return SpellChord(root, target)
	}
	if _, ok := scale.Lookup(catalogName(target)); ok {
		return SpellScale(root, target, "")
	}
	if _, ok := enums.ParseMode(target); ok {
		return SpellScale(root, scale.Major.Name(), target)
	}
	return Spelling{}, unknown("chord, scale or mode", target)
}
