package chord

import (
	"strings"

	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
)

// Quality is a chord described by the intervals between consecutive tones.
type Quality struct {
	name      string
	intervals []enums.Interval
}

func NewQuality(name string, intervals ...enums.Interval) Quality {
	return Quality{
		name:      name,
		intervals: append([]enums.Interval{}, intervals...),
	}
}

// FromSizes builds a Quality from hardcoded semitone counts. It panics on
// a size that is not an Interval.
func FromSizes(name string, sizes ...int) Quality {
	intervals := make([]enums.Interval, len(sizes))
	for i, size := range sizes {
		intervals[i] = enums.NewInterval(size)
	}
	return Quality{name: name, intervals: intervals}
}

func (q Quality) Name() string {
	return q.name
}

func (q Quality) Intervals() []enums.Interval {
	return append([]enums.Interval{}, q.intervals...)
}

func (q Quality) NoteCount() int {
	return len(q.intervals) + 1
}

// Spell stacks each interval on the previous tone. Letter collisions are
// left as they are.
func (q Quality) Spell(root note.Note) note.Notes {
	result := make(note.Notes, 0, q.NoteCount())
	result = append(result, root)
	n := root
	for _, interval := range q.intervals {
		n = n.Add(interval)
		result = append(result, n)
	}
	return result
}

func (q Quality) String() string {
	return q.name
}

var (
	Triad_Major               = FromSizes("Maj", 4, 3)
	Triad_Minor               = FromSizes("Min", 3, 4)
	Triad_Diminished          = FromSizes("Dim", 3, 3)
	Triad_Augmented           = FromSizes("Aug", 4, 4)
	Triad_Suspended2          = FromSizes("Sus2", 2, 5)
	Triad_Phrygian            = FromSizes("Phr", 1, 6)
	Triad_Suspended4          = FromSizes("Sus4", 5, 2)
	Triad_Lydian              = FromSizes("Lyd", 6, 1)
	Seventh_Dominant          = FromSizes("Dom7", 4, 3, 3)
	Seventh_Major             = FromSizes("Maj7", 4, 3, 4)
	Seventh_Minor             = FromSizes("Min7", 3, 4, 3)
	Seventh_Diminished        = FromSizes("Dim7", 3, 3, 3)
	Seventh_HalfDiminished    = FromSizes("Min7(b5)", 3, 3, 4)
	Seventh_AugmentedDominant = FromSizes("Dom7(#5)", 4, 4, 2)
	Seventh_AugmentedMajor    = FromSizes("Maj7(#5)", 4, 4, 3)
	Seventh_DiminishedMajor   = FromSizes("Dim(Maj7)", 3, 3, 7)
)

var Triads = []Quality{
	Triad_Major,
	Triad_Minor,
	Triad_Diminished,
	Triad_Augmented,
	Triad_Suspended2,
	Triad_Phrygian,
	Triad_Suspended4,
	Triad_Lydian,
}

var Sevenths = []Quality{
	Seventh_Dominant,
	Seventh_Major,
	Seventh_Minor,
	Seventh_Diminished,
	Seventh_HalfDiminished,
	Seventh_AugmentedDominant,
	Seventh_AugmentedMajor,
	Seventh_DiminishedMajor,
}

// All lists every known quality, triads first.
func All() []Quality {
	return append(append([]Quality{}, Triads...), Sevenths...)
}

// Lookup finds a quality by name, ignoring case.
func Lookup(name string) (Quality, bool) {
	for _, q := range All() {
		if strings.EqualFold(q.name, name) {
			return q, true
		}
	}
	return Quality{}, false
}
