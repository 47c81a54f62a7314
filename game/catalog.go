package game

import (
	"fmt"
	"strings"

	"github.com/but80/eartrainer/music/chord"
	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
	"github.com/but80/eartrainer/music/scale"
	"github.com/but80/eartrainer/music/util"
)

// StandardNotes holds the default spelling of every pitch class, each
// sharp followed by its flat spelling.
var StandardNotes = standardNotes()

func standardNotes() []note.Note {
	result := make([]note.Note, 0, 17)
	for pitch := 0; pitch < note.PitchClasses; pitch++ {
		n := note.FromPitch(pitch)
		result = append(result, n)
		if n.Accidental == enums.Accidental_Sharp {
			result = append(result, note.New(n.Name.StepUp(), enums.Accidental_Flat))
		}
	}
	return result
}

var StandardIntervals = []enums.Interval{
	enums.Interval_MinorSecond,
	enums.Interval_MajorSecond,
	enums.Interval_MinorThird,
	enums.Interval_MajorThird,
	enums.Interval_PerfectFourth,
	enums.Interval_Tritone,
	enums.Interval_PerfectFifth,
	enums.Interval_MinorSixth,
	enums.Interval_MajorSixth,
	enums.Interval_MinorSeventh,
	enums.Interval_MajorSeventh,
}

var StandardChordQualities = []chord.Quality{
	chord.Triad_Major,
	chord.Triad_Minor,
	chord.Triad_Diminished,
	chord.Triad_Augmented,
	chord.Seventh_Major,
	chord.Seventh_Minor,
	chord.Seventh_Diminished,
	chord.Seventh_HalfDiminished,
	chord.Seventh_Dominant,
}

// StandardScales starts with the major scale, which modal rounds rotate.
var StandardScales = []scale.Scale{
	scale.Major,
	scale.Minor,
	scale.HarmonicMinor,
}

type CatalogEntry struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
	Standard  bool   `json:"standard"`
}

// Catalog is a printable view of everything the quiz knows about.
type Catalog struct {
	Notes     []note.Note      `json:"notes"`
	Intervals []enums.Interval `json:"intervals"`
	Chords    []CatalogEntry   `json:"chords"`
	Scales    []CatalogEntry   `json:"scales"`
	Modes     []enums.Mode     `json:"modes"`
}

func sizesOf(intervals []enums.Interval) []int {
	result := make([]int, len(intervals))
	for i, iv := range intervals {
		result[i] = iv.Size()
	}
	return result
}

func NewCatalog() *Catalog {
	c := &Catalog{
		Notes:     append([]note.Note{}, StandardNotes...),
		Intervals: append([]enums.Interval{}, StandardIntervals...),
		Modes:     append([]enums.Mode{}, enums.Modes...),
	}
	standard := map[string]bool{}
	for _, q := range StandardChordQualities {
		standard[q.Name()] = true
	}
	for _, q := range chord.All() {
		c.Chords = append(c.Chords, CatalogEntry{
			Name:      q.Name(),
			Intervals: sizesOf(q.Intervals()),
			Standard:  standard[q.Name()],
		})
	}
	for _, s := range scale.All {
		c.Scales = append(c.Scales, CatalogEntry{
			Name:      s.Name(),
			Intervals: sizesOf(s.Steps()),
			Standard:  true,
		})
	}
	return c
}

func entryRows(entries []CatalogEntry) [][]string {
	rows := [][]string{}
	for _, e := range entries {
		sizes := make([]string, len(e.Intervals))
		for i, s := range e.Intervals {
			sizes[i] = fmt.Sprint(s)
		}
		mark := ""
		if e.Standard {
			mark = "*"
		}
		rows = append(rows, []string{e.Name, strings.Join(sizes, " "), mark})
	}
	return rows
}

func (c *Catalog) String() string {
	notes := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = n.String()
	}
	intervals := [][]string{}
	for _, iv := range c.Intervals {
		intervals = append(intervals, []string{fmt.Sprint(iv.Size()), iv.String()})
	}
	modes := make([]string, len(c.Modes))
	for i, m := range c.Modes {
		modes[i] = m.String()
	}
	return "Notes:\n" + util.Indent(strings.Join(notes, " "), "  ") + "\n" +
		"Intervals:\n" + util.Indent(util.Table(intervals), "  ") + "\n" +
		"Chords (* = quizzed):\n" + util.Indent(util.Table(entryRows(c.Chords)), "  ") + "\n" +
		"Scales:\n" + util.Indent(util.Table(entryRows(c.Scales)), "  ") + "\n" +
		"Modes:\n" + util.Indent(strings.Join(modes, " "), "  ")
}
