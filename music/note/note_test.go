package note

import (
	"fmt"
	"sync"
	"testing"

	"github.com/but80/eartrainer/music/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accidentals = []enums.Accidental{
	enums.Accidental_DoubleFlat,
	enums.Accidental_Flat,
	enums.Accidental_Natural,
	enums.Accidental_Sharp,
	enums.Accidental_DoubleSharp,
}

func allNotes() Notes {
	var result Notes
	for _, name := range enums.NoteNames {
		for _, acc := range accidentals {
			result = append(result, New(name, acc))
		}
	}
	return result
}

func allIntervals() []enums.Interval {
	var result []enums.Interval
	for size := 0; size <= 21; size++ {
		if i, ok := enums.LookupInterval(size); ok {
			result = append(result, i)
		}
	}
	return result
}

func TestNoteEquality(t *testing.T) {
	assert := assert.New(t)
	assert.True(New(enums.NoteName_D, enums.Accidental_Sharp).Equal(New(enums.NoteName_E, enums.Accidental_Flat)))
	assert.False(New(enums.NoteName_D, enums.Accidental_Sharp).Equal(New(enums.NoteName_E, enums.Accidental_Natural)))
	assert.False(New(enums.NoteName_D, enums.Accidental_Sharp).SameSpelling(New(enums.NoteName_E, enums.Accidental_Flat)))
}

func TestEqualityIsPitchClassEquivalence(t *testing.T) {
	notes := allNotes()
	for _, a := range notes {
		for _, b := range notes {
			want := ((a.Name.Pitch()+a.Accidental.Interval())-(b.Name.Pitch()+b.Accidental.Interval())+24)%12 == 0
			assert.Equal(t, want, a.Equal(b), "%s vs %s", a, b)
		}
	}
}

func TestPitchIsNormalized(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, New(enums.NoteName_A, enums.Accidental_Flat).Pitch())
	assert.Equal(10, New(enums.NoteName_A, enums.Accidental_DoubleFlat).Pitch())
	assert.Equal(0, New(enums.NoteName_G, enums.Accidental_DoubleSharp).Pitch())
	for _, n := range allNotes() {
		assert.True(0 <= n.Pitch() && n.Pitch() < 12, n.String())
	}
}

func TestFromPitch(t *testing.T) {
	expected := "A A# B C C# D D# E F F# G G#"
	var notes Notes
	for p := 0; p < PitchClasses; p++ {
		n := FromPitch(p)
		assert.Equal(t, p, n.Pitch())
		notes = append(notes, n)
	}
	assert.Equal(t, expected, notes.String())
	assert.Panics(t, func() { FromPitch(12) })
	assert.Panics(t, func() { FromPitch(-1) })
}

func TestRoundTripArithmetic(t *testing.T) {
	for _, n := range allNotes() {
		for _, i := range allIntervals() {
			assert.True(t, n.Add(i).Sub(i).Equal(n), "(%s + %s) - %s", n, i, i)
		}
	}
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("C")
	assert.Equal("E", c.Add(enums.Interval_MajorThird).String())
	assert.Equal("G#", c.Sub(enums.Interval_MajorThird).String())
	assert.Equal("A", c.Transpose(-3).String())
	assert.Equal("A", c.Transpose(-27).String())
	assert.Equal("C#", c.Transpose(25).String())
	assert.Equal("G", c.Add(enums.Interval_PerfectTwelfth).String())
}

func TestEnharmonic(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"C", "C"},
		{"Db", "C#"},
		{"Cb", "B"},
		{"Fb", "E"},
		{"Eb", "D#"},
		{"C#", "Db"},
		{"B#", "C"},
		{"E#", "F"},
		{"G#", "Ab"},
		{"Ebb", "D"},
		{"F##", "G"},
		{"Bbb", "A"},
		{"Cbb", "A#"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got := MustParse(c.in).Enharmonic()
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestEnharmonicKeepsPitchClass(t *testing.T) {
	for _, n := range allNotes() {
		e := n.Enharmonic()
		assert.Equal(t, n.Pitch(), e.Pitch(), n.String())
		assert.Equal(t, n.Pitch(), e.Enharmonic().Pitch(), n.String())
		if n.Accidental == enums.Accidental_Flat || n.Accidental == enums.Accidental_Sharp {
			assert.NotEqual(t, n.Name, e.Name, n.String())
		}
	}
}

func TestParse(t *testing.T) {
	ok := map[string]Note{
		"C":   New(enums.NoteName_C, enums.Accidental_Natural),
		"c":   New(enums.NoteName_C, enums.Accidental_Natural),
		"C#":  New(enums.NoteName_C, enums.Accidental_Sharp),
		"Dbb": New(enums.NoteName_D, enums.Accidental_DoubleFlat),
		"g##": New(enums.NoteName_G, enums.Accidental_DoubleSharp),
		"bb":  New(enums.NoteName_B, enums.Accidental_Flat),
	}
	for s, want := range ok {
		got, err := Parse(s)
		require.NoError(t, err, s)
		assert.True(t, want.SameSpelling(got), s)
	}

	for _, s := range []string{"H", "", "Cbbb", "C ", " C", "C#b", "Cx", "1"} {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			assert.True(t, IsUnrecognized(err))
			assert.Contains(t, err.Error(), fmt.Sprintf("%q", s))
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	for _, n := range allNotes() {
		parsed, err := Parse(n.String())
		require.NoError(t, err)
		assert.True(t, n.SameSpelling(parsed), n.String())
	}
}

func TestParseNotes(t *testing.T) {
	notes, err := ParseNotes("  C  e G\t")
	require.NoError(t, err)
	assert.Equal(t, "C E G", notes.String())

	notes, err = ParseNotes("")
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, err = ParseNotes("C X G")
	require.Error(t, err)
	assert.True(t, IsUnrecognized(err))
	assert.Contains(t, err.Error(), "note #2")
}

func TestNotesEqual(t *testing.T) {
	a, _ := ParseNotes("D# F G")
	b, _ := ParseNotes("Eb F G")
	c, _ := ParseNotes("Eb F")
	assert.True(t, a.Equal(b))
	assert.False(t, a.SameSpelling(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.SameSpelling(a))
}

func TestConcurrentUse(t *testing.T) {
	notes := allNotes()
	intervals := allIntervals()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range notes {
				for _, i := range intervals {
					if !n.Add(i).Sub(i).Equal(n) || n.Enharmonic().Pitch() != n.Pitch() {
						t.Errorf("invariant broken for %s %s", n, i)
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestSpellAs(t *testing.T) {
	cases := []struct {
		in   string
		name enums.NoteName
		want string
		ok   bool
	}{
		{"B", enums.NoteName_C, "Cb", true},
		{"A", enums.NoteName_B, "Bbb", true},
		{"E", enums.NoteName_D, "D##", true},
		{"C", enums.NoteName_C, "C", true},
		{"G#", enums.NoteName_A, "Ab", true},
		{"C", enums.NoteName_F, "C", false},
	}
	for _, c := range cases {
		got, ok := MustParse(c.in).SpellAs(c.name)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got.String(), c.in)
		assert.Equal(t, MustParse(c.in).Pitch(), got.Pitch(), c.in)
	}
}
