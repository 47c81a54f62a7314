package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/but80/eartrainer/music/chord"
	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
	"github.com/but80/eartrainer/music/scale"
)

type Outcome int

const (
	Outcome_Correct Outcome = iota
	Outcome_Incorrect
	Outcome_Error
)

func (o Outcome) String() string {
	switch o {
	case Outcome_Correct:
		return "Correct"
	case Outcome_Incorrect:
		return "Incorrect"
	case Outcome_Error:
		return "Error"
	}
	return "undefined"
}

// Result is the graded answer. Errors are not scored.
type Result struct {
	Outcome Outcome
	Message string
	Elapsed time.Duration
}

type Round interface {
	Label() string
	Prompt() string
	Evaluate(input string, sk *Scorekeeper) Result
}

func errorResult(err error) Result {
	return Result{Outcome: Outcome_Error, Message: fmt.Sprintf("Error: %s.", err)}
}

func correctResult(elapsed time.Duration) Result {
	return Result{
		Outcome: Outcome_Correct,
		Message: fmt.Sprintf("Correct! (%.2f sec.)", elapsed.Seconds()),
		Elapsed: elapsed,
	}
}

func gradeNotes(input string, expected note.Notes, sk *Scorekeeper) Result {
	notes, err := note.ParseNotes(input)
	if err != nil {
		return errorResult(err)
	}
	correct := notes.Equal(expected)
	elapsed := sk.AddResult(correct)
	if correct {
		return correctResult(elapsed)
	}
	return Result{
		Outcome: Outcome_Incorrect,
		Message: fmt.Sprintf("Incorrect! (Expected %s)", expected),
		Elapsed: elapsed,
	}
}

type IntervalsRound struct {
	Root       note.Note
	Descending bool
	Interval   enums.Interval
}

func NewIntervalsRound(r Random) *IntervalsRound {
	return &IntervalsRound{
		Root:       Choose(r, StandardNotes),
		Descending: Flip(r),
		Interval:   Choose(r, StandardIntervals),
	}
}

func (ir *IntervalsRound) Label() string {
	return "Interval"
}

func (ir *IntervalsRound) Prompt() string {
	direction := "up"
	if ir.Descending {
		direction = "down"
	}
	return fmt.Sprintf("%s %s a %s", ir.Root, direction, ir.Interval)
}

func (ir *IntervalsRound) Expected() note.Note {
	if ir.Descending {
		return ir.Root.Sub(ir.Interval)
	}
	return ir.Root.Add(ir.Interval)
}

func (ir *IntervalsRound) Evaluate(input string, sk *Scorekeeper) Result {
	expected := ir.Expected()
	n, err := note.Parse(strings.TrimSpace(input))
	if err != nil {
		return errorResult(err)
	}
	correct := n.Equal(expected)
	elapsed := sk.AddResult(correct)
	if correct {
		return correctResult(elapsed)
	}
	return Result{
		Outcome: Outcome_Incorrect,
		Message: fmt.Sprintf("Incorrect! (Expected %s.)", expected),
		Elapsed: elapsed,
	}
}

type ChordsRound struct {
	Root    note.Note
	Quality chord.Quality
}

func NewChordsRound(r Random) *ChordsRound {
	return &ChordsRound{
		Root:    Choose(r, StandardNotes),
		Quality: Choose(r, StandardChordQualities),
	}
}

func (cr *ChordsRound) Label() string {
	return "Chord"
}

func (cr *ChordsRound) Prompt() string {
	return fmt.Sprintf("%s %s", cr.Root, cr.Quality)
}

func (cr *ChordsRound) Expected() note.Notes {
	return cr.Quality.Spell(cr.Root)
}

func (cr *ChordsRound) Evaluate(input string, sk *Scorekeeper) Result {
	return gradeNotes(input, cr.Expected(), sk)
}

// ScaleChoice is either a plain scale or a mode of one.
type ScaleChoice struct {
	modal bool
	scale scale.Scale
	mode  enums.Mode
}

func PlainScale(s scale.Scale) ScaleChoice {
	return ScaleChoice{scale: s}
}

func ModalScale(m scale.Modal) ScaleChoice {
	return ScaleChoice{modal: true, scale: m.Scale, mode: m.Mode}
}

func (c ScaleChoice) IsModal() bool {
	return c.modal
}

func (c ScaleChoice) Spell(root note.Note) note.Notes {
	if c.modal {
		return scale.NewModal(c.scale, c.mode).Spell(root)
	}
	return c.scale.Spell(root)
}

// String is the scale name, or the mode name for a modal choice.
func (c ScaleChoice) String() string {
	if c.modal {
		return c.mode.String()
	}
	return c.scale.Name()
}

type ScalesRound struct {
	Root  note.Note
	Scale ScaleChoice
}

func NewScalesRound(r Random) *ScalesRound {
	root := Choose(r, StandardNotes)
	var choice ScaleChoice
	if Flip(r) {
		choice = PlainScale(Choose(r, StandardScales))
	} else {
		mode := enums.ModeOf(Between(r, 0, enums.ModeCount))
		choice = ModalScale(scale.NewModal(StandardScales[0], mode))
	}
	return &ScalesRound{Root: root, Scale: choice}
}

func (sr *ScalesRound) Label() string {
	return "Scale"
}

func (sr *ScalesRound) Prompt() string {
	return fmt.Sprintf("%s %s", sr.Root, sr.Scale)
}

func (sr *ScalesRound) Expected() note.Notes {
	return sr.Scale.Spell(sr.Root)
}

func (sr *ScalesRound) Evaluate(input string, sk *Scorekeeper) Result {
	return gradeNotes(input, sr.Expected(), sk)
}
