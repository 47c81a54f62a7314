package chord

import (
	"testing"

	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
	"github.com/stretchr/testify/assert"
)

func TestSpellMajorFromC(t *testing.T) {
	notes := Triad_Major.Spell(note.MustParse("C"))
	assert.Equal(t, "C E G", notes.String())
	assert.Equal(t, []int{3, 7, 10}, []int{notes[0].Pitch(), notes[1].Pitch(), notes[2].Pitch()})
	for _, n := range notes {
		assert.Equal(t, enums.Accidental_Natural, n.Accidental)
	}
}

func TestSpell(t *testing.T) {
	cases := []struct {
		quality Quality
		root    string
		want    string
	}{
		{Triad_Minor, "A", "A C E"},
		{Triad_Diminished, "B", "B D F"},
		{Triad_Augmented, "C", "C E G#"},
		{Seventh_Dominant, "G", "G B D F"},
		{Seventh_Major, "F", "F A C E"},
		{Seventh_Minor, "D", "D F A C"},
		{Seventh_HalfDiminished, "B", "B D F A"},
		{Seventh_Diminished, "C#", "C# E G A#"},
	}
	for _, c := range cases {
		t.Run(c.root+" "+c.quality.Name(), func(t *testing.T) {
			got := c.quality.Spell(note.MustParse(c.root))
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestSpellLength(t *testing.T) {
	root := note.MustParse("Eb")
	for _, q := range All() {
		notes := q.Spell(root)
		assert.Len(t, notes, q.NoteCount(), q.Name())
		assert.True(t, notes[0].SameSpelling(root), q.Name())
		assert.Len(t, q.Intervals(), q.NoteCount()-1)
	}
}

func TestSpellIsDeterministic(t *testing.T) {
	root := note.MustParse("Ab")
	assert.True(t, Seventh_Dominant.Spell(root).SameSpelling(Seventh_Dominant.Spell(root)))
}

func TestIntervalsAreCopied(t *testing.T) {
	intervals := Triad_Major.Intervals()
	intervals[0] = enums.Interval_Unison
	assert.Equal(t, enums.Interval_MajorThird, Triad_Major.Intervals()[0])
}

func TestFromSizesPanicsOnUnmappedSize(t *testing.T) {
	assert.Panics(t, func() { FromSizes("broken", 4, 18) })
}

func TestLookup(t *testing.T) {
	q, ok := Lookup("dom7")
	assert.True(t, ok)
	assert.Equal(t, "Dom7", q.String())

	q, ok = Lookup("Min7(b5)")
	assert.True(t, ok)
	assert.Equal(t, Seventh_HalfDiminished.Intervals(), q.Intervals())

	_, ok = Lookup("Min9")
	assert.False(t, ok)
	assert.Len(t, All(), len(Triads)+len(Sevenths))
}

func TestDiminishedMajorStacksPastTheOctave(t *testing.T) {
	got := Seventh_DiminishedMajor.Spell(note.MustParse("C"))
	assert.Equal(t, "C D# F# C#", got.String())
	assert.Equal(t, 4, Seventh_DiminishedMajor.NoteCount())
}
