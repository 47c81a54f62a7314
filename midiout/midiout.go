package midiout

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/but80/eartrainer/music/log"
	"github.com/but80/eartrainer/music/note"
	"github.com/but80/go-smaf/v2/enums"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Style は、音の鳴らし方です。
type Style int

const (
	// Style_Block は、全音を同時に鳴らします。
	Style_Block Style = iota
	// Style_Arpeggio は、1音ずつ順に鳴らします。
	Style_Arpeggio
)

func (s Style) String() string {
	switch s {
	case Style_Block:
		return "block"
	case Style_Arpeggio:
		return "arpeggio"
	}
	return "undefined"
}

// MarshalJSON は、Style をJSONに変換します。
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseStyle は、文字列を Style に変換します。
func ParseStyle(s string) (Style, bool) {
	for _, v := range []Style{Style_Block, Style_Arpeggio} {
		if strings.EqualFold(s, v.String()) {
			return v, true
		}
	}
	return 0, false
}

const ticksPerQuarter = 960

// Options は、MIDIファイル出力の設定です。
type Options struct {
	Octave   int
	Channel  uint8
	Velocity uint8
	Tempo    float64
	Style    Style
}

// DefaultOptions は、既定の出力設定を返します。
func DefaultOptions() Options {
	return Options{
		Octave:   4,
		Velocity: 100,
		Tempo:    120,
		Style:    Style_Arpeggio,
	}
}

// Phrase は、1つのトラックに書き出す音列です。
type Phrase struct {
	Name  string
	Notes note.Notes
}

// semitonesAboveC は、ノートのCからの半音数を返します。ピッチクラスはAが0です。
func semitonesAboveC(n note.Note) int {
	return (n.Pitch() + 9) % note.PitchClasses
}

// Keys は、音列を指定オクターブから始まる上行のノートナンバー列に変換します。
func Keys(notes note.Notes, octave int) ([]uint8, error) {
	keys := make([]uint8, 0, len(notes))
	prev := -1
	for i, n := range notes {
		key := (octave+1)*note.PitchClasses + semitonesAboveC(n)
		if 0 <= prev {
			diff := (semitonesAboveC(n) - prev%note.PitchClasses + note.PitchClasses) % note.PitchClasses
			if diff == 0 {
				diff = note.PitchClasses
			}
			key = prev + diff
		}
		if key < 0 || 127 < key {
			return nil, errors.Errorf("note #%d (%s) is out of MIDI range: %d", i+1, n, key)
		}
		keys = append(keys, uint8(key))
		prev = key
	}
	return keys, nil
}

func keyNames(keys []uint8) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = enums.Note(k).Name()
	}
	return strings.Join(names, " ")
}

func (o Options) addPhrase(tr *smf.Track, keys []uint8) {
	quarter := uint32(ticksPerQuarter)
	switch o.Style {
	case Style_Block:
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(o.Channel, k, o.Velocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = quarter * 4
			}
			tr.Add(delta, midi.NoteOff(o.Channel, k))
		}
	default:
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(o.Channel, k, o.Velocity))
			tr.Add(quarter, midi.NoteOff(o.Channel, k))
		}
	}
}

// Write は、各 Phrase を1トラックずつ Standard MIDI File として書き出します。
func Write(w io.Writer, phrases []Phrase, opts Options) error {
	log.Enter()
	defer log.Leave()
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	for _, p := range phrases {
		keys, err := Keys(p.Notes, opts.Octave)
		if err != nil {
			return errors.Wrapf(err, "phrase %q", p.Name)
		}
		log.Debugf("%s: %s", p.Name, keyNames(keys))
		var tr smf.Track
		tr.Add(0, smf.MetaTrackSequenceName(p.Name))
		tr.Add(0, smf.MetaTempo(opts.Tempo))
		opts.addPhrase(&tr, keys)
		tr.Close(0)
		if err := s.Add(tr); err != nil {
			return errors.WithStack(err)
		}
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
