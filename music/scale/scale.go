package scale

import (
	"fmt"
	"strings"

	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
)

// Scale is a sequence of steps. A diatonic scale has seven steps summing
// to an octave.
type Scale struct {
	name  string
	steps []enums.Interval
}

// FromSteps builds a Scale from hardcoded semitone counts. It panics on a
// size that is not an Interval.
func FromSteps(name string, sizes ...int) Scale {
	steps := make([]enums.Interval, len(sizes))
	for i, size := range sizes {
		steps[i] = enums.NewInterval(size)
	}
	return Scale{name: name, steps: steps}
}

func (s Scale) Name() string {
	return s.name
}

func (s Scale) Steps() []enums.Interval {
	return append([]enums.Interval{}, s.steps...)
}

// Shift rotates the steps left by n, so that the result starts on the
// n-th degree of s.
func (s Scale) Shift(n int) Scale {
	if len(s.steps) == 0 {
		return s
	}
	n = ((n % len(s.steps)) + len(s.steps)) % len(s.steps)
	steps := make([]enums.Interval, 0, len(s.steps))
	steps = append(steps, s.steps[n:]...)
	steps = append(steps, s.steps[:n]...)
	return Scale{
		name:  fmt.Sprintf("%s(+%d)", s.name, n),
		steps: steps,
	}
}

// Spell walks the steps from root. A note landing on the letter of its
// predecessor is respelled, first enharmonically and then, if the letter
// still repeats, on the following letter. The closing octave is computed
// and dropped.
func (s Scale) Spell(root note.Note) note.Notes {
	result := make(note.Notes, 0, len(s.steps)+1)
	result = append(result, root)
	n := root
	for _, step := range s.steps {
		prev := n
		n = n.Add(step)
		if n.Name == prev.Name {
			n = n.Enharmonic()
		}
		if n.Name == prev.Name {
			if respelled, ok := n.SpellAs(prev.Name.StepUp()); ok {
				n = respelled
			}
		}
		result = append(result, n)
	}
	return result[:len(result)-1]
}

func (s Scale) String() string {
	return s.name
}

var (
	Major         = FromSteps("Major", 2, 2, 1, 2, 2, 2, 1)
	Minor         = FromSteps("Minor", 2, 1, 2, 2, 1, 2, 2)
	HarmonicMinor = FromSteps("Harmonic Minor", 2, 1, 2, 2, 1, 3, 1)
)

var All = []Scale{
	Major,
	Minor,
	HarmonicMinor,
}

// Lookup finds a scale by name, ignoring case.
func Lookup(name string) (Scale, bool) {
	for _, s := range All {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return Scale{}, false
}
