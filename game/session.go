package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/but80/eartrainer/music/log"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

func feedbackColor(o Outcome) *color.Color {
	switch o {
	case Outcome_Correct:
		return green
	case Outcome_Incorrect:
		return red
	}
	return yellow
}

// Session asks rounds until the player enters an empty line or "exit",
// input ends, or Rounds rounds have been asked.
type Session struct {
	Mode        GameMode
	Random      Random
	Scorekeeper *Scorekeeper
	Rounds      int
	ShowState   bool

	in   *bufio.Reader
	out  io.Writer
	last *Result
}

func NewSession(mode GameMode, r Random, sk *Scorekeeper, in io.Reader, out io.Writer) *Session {
	return &Session{
		Mode:        mode,
		Random:      r,
		Scorekeeper: sk,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

func (s *Session) Run() error {
	log.Debugf("session %s: mode %s", s.Scorekeeper.SessionID, s.Mode)
	for asked := 0; s.Rounds == 0 || asked < s.Rounds; asked++ {
		quit, err := s.Play(s.Mode.NextRound(s.Random))
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	return nil
}

// Play asks a single round and reports whether the player quit.
func (s *Session) Play(round Round) (bool, error) {
	if s.ShowState {
		// the clear wipes the last feedback, so repeat it
		s.Scorekeeper.PrintState(s.out)
		if s.last != nil {
			s.printFeedback(*s.last)
		}
	}
	fmt.Fprintf(s.out, "%s - %s: ", round.Label(), round.Prompt())
	input, err := s.nextInput()
	if err != nil {
		return false, err
	}
	if input == "" || input == "exit" {
		return true, nil
	}
	result := round.Evaluate(input, s.Scorekeeper)
	log.Debugf("%s %q: %s", round.Label(), input, result.Outcome)
	s.printFeedback(result)
	s.last = &result
	return false, nil
}

func (s *Session) printFeedback(result Result) {
	feedbackColor(result.Outcome).Fprintf(s.out, "  %s\n", result.Message)
}

func (s *Session) nextInput() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimRight(line, " \t\r\n"), nil
}
