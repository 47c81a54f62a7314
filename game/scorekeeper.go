package game

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ahmetalpbalkan/go-cursor"
	"github.com/google/uuid"
)

type attempt struct {
	correct bool
	elapsed time.Duration
}

// Scorekeeper times each graded answer. It is shared by the round loop and
// the interrupt handler, so every method locks.
type Scorekeeper struct {
	SessionID string

	mu           sync.Mutex
	now          func() time.Time
	attemptStart time.Time
	results      []attempt
}

func NewScorekeeper() *Scorekeeper {
	return newScorekeeperWithClock(time.Now)
}

func newScorekeeperWithClock(now func() time.Time) *Scorekeeper {
	return &Scorekeeper{
		SessionID:    uuid.New().String(),
		now:          now,
		attemptStart: now(),
	}
}

// AddResult records an answer and returns the time since the previous one.
func (sk *Scorekeeper) AddResult(correct bool) time.Duration {
	sk.mu.Lock()
	defer sk.mu.Unlock()
	t := sk.now()
	elapsed := t.Sub(sk.attemptStart)
	sk.results = append(sk.results, attempt{correct: correct, elapsed: elapsed})
	sk.attemptStart = t
	return elapsed
}

type Report struct {
	SessionID   string
	Count       int
	Correct     int
	CorrectTime time.Duration
}

func (sk *Scorekeeper) Report() Report {
	sk.mu.Lock()
	defer sk.mu.Unlock()
	r := Report{SessionID: sk.SessionID, Count: len(sk.results)}
	for _, a := range sk.results {
		if a.correct {
			r.Correct++
			r.CorrectTime += a.elapsed
		}
	}
	return r
}

func (r Report) Percent() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Count) * 100
}

// AverageSeconds spreads the time spent on correct answers over all answers.
func (r Report) AverageSeconds() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.CorrectTime.Seconds() / float64(r.Count)
}

func (r Report) String() string {
	return fmt.Sprintf(
		"\nFinal results:\n  %.1f%% correct.\n  %.2f sec. average.\n",
		r.Percent(),
		r.AverageSeconds(),
	)
}

// Print writes the final report.
func (sk *Scorekeeper) Print(w io.Writer) {
	fmt.Fprint(w, sk.Report().String())
}

// PrintState clears the terminal and shows the running score.
func (sk *Scorekeeper) PrintState(w io.Writer) {
	r := sk.Report()
	fmt.Fprint(w, cursor.ClearEntireScreen())
	fmt.Fprint(w, cursor.MoveTo(0, 0))
	fmt.Fprintf(w, "Session %s  %d/%d correct (%.0f%%)\n\n", r.SessionID[:8], r.Correct, r.Count, r.Percent())
}
