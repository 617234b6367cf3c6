// Package stats keeps a per-process tally of rounds played, for the summary
// the shell prints at exit. Nothing here is persisted.
package stats

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean/stdev over pushed values, using Welford's
// algorithm.
type Statistic struct {
	totalIterations int
	last            float64

	// For Welford's algorithm:
	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.last = val
	s.totalIterations++
	if s.totalIterations == 1 {
		s.oldM = val
		s.newM = val
		s.oldS = 0
	} else {
		s.newM = s.oldM + (val-s.oldM)/float64(s.totalIterations)
		s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
		s.oldM = s.newM
		s.oldS = s.newS
	}
}

func (s *Statistic) Mean() float64 {
	if s.totalIterations > 0 {
		return s.newM
	}
	return 0.0
}

func (s *Statistic) Variance() float64 {
	if s.totalIterations <= 1 {
		return 0.0
	}
	return s.newS / float64(s.totalIterations-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Last() float64 {
	return s.last
}

func (s *Statistic) Iterations() int {
	return s.totalIterations
}

// RoundResult is the outcome of one finished round.
type RoundResult struct {
	Won         bool
	GuessesUsed int
	WordLength  int
}

// Tally accumulates round results for one session.
type Tally struct {
	results []RoundResult
	guesses Statistic
}

// Push records a finished round. Guesses-used feeds the running statistic
// only on wins; a lost round always exhausts the budget.
func (t *Tally) Push(r RoundResult) {
	t.results = append(t.results, r)
	if r.Won {
		t.guesses.Push(float64(r.GuessesUsed))
	}
}

func (t *Tally) Rounds() int {
	return len(t.results)
}

func (t *Tally) Wins() int {
	return lo.CountBy(t.results, func(r RoundResult) bool { return r.Won })
}

func (t *Tally) Losses() int {
	return t.Rounds() - t.Wins()
}

// Summary renders the tally for display. Empty when no rounds finished.
func (t *Tally) Summary() string {
	if t.Rounds() == 0 {
		return ""
	}
	s := fmt.Sprintf("Rounds: %d  Won: %d  Lost: %d", t.Rounds(), t.Wins(), t.Losses())
	if t.guesses.Iterations() > 0 {
		s += fmt.Sprintf("  Avg guesses per win: %.1f", t.guesses.Mean())
	}
	return s
}
