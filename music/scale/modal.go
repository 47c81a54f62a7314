package scale

import (
	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/note"
)

// Modal is a scale played from one of its modes.
type Modal struct {
	Scale Scale
	Mode  enums.Mode
}

func NewModal(s Scale, mode enums.Mode) Modal {
	return Modal{Scale: s, Mode: mode}
}

func (m Modal) Spell(root note.Note) note.Notes {
	return m.Scale.Shift(m.Mode.Index()).Spell(root)
}

func (m Modal) String() string {
	return m.Mode.String()
}
