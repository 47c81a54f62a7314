package pb

import (
	"testing"

	"github.com/but80/eartrainer/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStruct(t *testing.T) {
	s, err := ToStruct(game.NewCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"chords", "intervals", "modes", "notes", "scales"}, Keys(s))

	notes := s.Fields["notes"].GetListValue().GetValues()
	require.Len(t, notes, 17)
	assert.Equal(t, "A", notes[0].GetStringValue())
	assert.Equal(t, "Ab", notes[16].GetStringValue())

	chords := s.Fields["chords"].GetListValue().GetValues()
	require.Len(t, chords, 16)
	major := chords[0].GetStructValue().GetFields()
	assert.Equal(t, "Maj", major["name"].GetStringValue())
	assert.True(t, major["standard"].GetBoolValue())
	sizes := major["intervals"].GetListValue().GetValues()
	require.Len(t, sizes, 2)
	assert.Equal(t, 4.0, sizes[0].GetNumberValue())
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(game.NewCatalog())
	require.NoError(t, err)
	loaded, err := LoadBytes(b)
	require.NoError(t, err)
	modes := loaded.Fields["modes"].GetListValue().GetValues()
	require.Len(t, modes, 7)
	assert.Equal(t, "Locrian", modes[6].GetStringValue())
}

func TestToStructRejectsNonObject(t *testing.T) {
	_, err := ToStruct([]int{1, 2})
	assert.Error(t, err)
}

func TestLoadBytesRejectsGarbage(t *testing.T) {
	_, err := LoadBytes([]byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
