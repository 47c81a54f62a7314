package game

import (
	"encoding/json"
	"strings"
)

type GameMode int

const (
	GameMode_Mixed GameMode = iota
	GameMode_Intervals
	GameMode_Chords
	GameMode_Scales
)

var GameModes = []GameMode{
	GameMode_Mixed,
	GameMode_Intervals,
	GameMode_Chords,
	GameMode_Scales,
}

func (m GameMode) String() string {
	switch m {
	case GameMode_Mixed:
		return "mixed"
	case GameMode_Intervals:
		return "intervals"
	case GameMode_Chords:
		return "chords"
	case GameMode_Scales:
		return "scales"
	}
	return "undefined"
}

func (m GameMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func ParseGameMode(s string) (GameMode, bool) {
	for _, m := range GameModes {
		if strings.EqualFold(s, m.String()) {
			return m, true
		}
	}
	return 0, false
}

// GameModeList formats the choices for flag usage.
func GameModeList() string {
	names := make([]string, len(GameModes))
	for i, m := range GameModes {
		names[i] = m.String()
	}
	return "(" + strings.Join(names, "|") + ")"
}

// NextRound draws a round. Mixed picks one of the other modes first.
func (m GameMode) NextRound(r Random) Round {
	switch m {
	case GameMode_Intervals:
		return NewIntervalsRound(r)
	case GameMode_Chords:
		return NewChordsRound(r)
	case GameMode_Scales:
		return NewScalesRound(r)
	}
	return Choose(r, GameModes[1:]).NextRound(r)
}
