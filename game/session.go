// Package game controls the state of a single hangman round: the surviving
// candidate words, the guessed letters, the remaining-guess budget, and the
// hint shown to the player. Each turn it partitions the candidates and lets
// the adversary engine pick the hint that keeps the most words alive.
package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/duffman188/Hang-Man/adversary"
	"github.com/duffman188/Hang-Man/words"
)

// DefaultMaxGuesses is the per-round wrong-guess budget.
const DefaultMaxGuesses = 5

// Phase is where a session is in its lifecycle.
type Phase int

const (
	// LengthSelection waits for a word-length request.
	LengthSelection Phase = iota
	// Playing accepts letter guesses.
	Playing
	// Won and Lost end a round; FinishRound moves them to Replay.
	Won
	Lost
	// Replay waits for a play-again answer.
	Replay
	// Terminated means the player is done.
	Terminated
)

func (p Phase) String() string {
	switch p {
	case LengthSelection:
		return "length-selection"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Replay:
		return "replay"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

var (
	// ErrZeroLength rejects a length request of 0.
	ErrZeroLength = errors.New("word length must be a positive or negative integer")
	// ErrNoWords rejects a length with no words in the list.
	ErrNoWords = errors.New("no words of the requested length")
	// ErrNotALetter rejects a guess that is not one alphabetic character.
	ErrNotALetter = errors.New("guess must be a single alphabetical letter")
	// ErrAlreadyGuessed rejects a repeated guess.
	ErrAlreadyGuessed = errors.New("letter was already guessed")
	// ErrWrongPhase rejects an operation the current phase does not accept.
	ErrWrongPhase = errors.New("operation not valid in this phase")
)

// A TurnResult reports what one accepted guess did.
type TurnResult struct {
	Letter     rune
	Hit        bool
	NoProgress bool // the hint did not change, hit or miss
	Hint       adversary.Pattern
	Remaining  int
	Won        bool
	Lost       bool
	Revealed   string // only set on a loss
}

// A Session owns one player's run of rounds. It is not safe for concurrent
// use; every turn is strictly sequential.
type Session struct {
	list       *words.List
	maxGuesses int

	phase          Phase
	candidates     []string
	guessed        adversary.Letters
	remaining      int
	hint           adversary.Pattern
	showDetails    bool
	lastPartitions map[adversary.Pattern][]string

	randSeed   int64
	randSource *rand.Rand
}

// NewSession creates a session in LengthSelection. maxGuesses <= 0 selects
// DefaultMaxGuesses.
func NewSession(list *words.List, maxGuesses int) *Session {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	seed := int64(frand.Uint64n(math.MaxInt64))
	log.Debug().Int64("seed", seed).Msg("new session")
	return &Session{
		list:       list,
		maxGuesses: maxGuesses,
		phase:      LengthSelection,
		randSeed:   seed,
		randSource: rand.New(rand.NewSource(seed)),
	}
}

// SetRandomizer replaces the random source used for selection tie-breaks
// and the losing reveal, so tests can fix a seed.
func (s *Session) SetRandomizer(r *rand.Rand) {
	s.randSource = r
}

// StartRound begins a round with words of length |lengthReq|. A negative
// request additionally turns on detailed play, which only affects what the
// caller displays, never what the engine selects. Zero and lengths with no
// words are rejected with the session unchanged.
func (s *Session) StartRound(lengthReq int) error {
	if s.phase != LengthSelection {
		return fmt.Errorf("%w: cannot start a round while %s", ErrWrongPhase, s.phase)
	}
	if lengthReq == 0 {
		return ErrZeroLength
	}
	length := lengthReq
	if length < 0 {
		length = -length
	}
	candidates := s.list.OfLength(length)
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %d", ErrNoWords, length)
	}
	s.candidates = candidates
	s.guessed = adversary.NewLetters()
	s.remaining = s.maxGuesses
	s.hint = adversary.Blank(length)
	s.showDetails = lengthReq < 0
	s.lastPartitions = nil
	s.phase = Playing
	log.Debug().Int("length", length).Int("candidates", len(candidates)).
		Bool("details", s.showDetails).Msg("round started")
	return nil
}

// Guess plays one letter. Invalid input (not a single alphabetic character,
// or a letter already guessed) is rejected with the session unchanged.
// Otherwise the candidates are partitioned by the pattern each would show,
// the adversary picks the worst bucket for the guesser, and the session
// state is replaced in one step once the choice is made.
func (s *Session) Guess(input string) (*TurnResult, error) {
	if s.phase != Playing {
		return nil, fmt.Errorf("%w: cannot guess while %s", ErrWrongPhase, s.phase)
	}
	runes := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return nil, ErrNotALetter
	}
	guess := runes[0]
	if s.guessed.Has(guess) {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyGuessed, guess)
	}

	guessed := s.guessed.With(guess)
	partitions := adversary.Partition(s.candidates, guessed)
	hint, err := adversary.Select(partitions, s.randSource)
	if err != nil {
		// Candidates are never empty while Playing, so this is an
		// internal invariant violation.
		return nil, err
	}

	previous := s.hint
	s.guessed = guessed
	s.candidates = partitions[hint]
	s.lastPartitions = partitions
	s.hint = hint

	result := &TurnResult{
		Letter:     guess,
		Hit:        hint.Has(guess),
		NoProgress: hint == previous,
		Hint:       hint,
	}
	if !result.Hit {
		s.remaining--
	}
	result.Remaining = s.remaining

	if hint.Complete() {
		s.phase = Won
		result.Won = true
	} else if s.remaining == 0 {
		s.phase = Lost
		result.Lost = true
		// Any surviving candidate satisfies every hint shown so far.
		result.Revealed = s.candidates[s.randSource.Intn(len(s.candidates))]
	}
	log.Debug().Str("guess", string(guess)).Str("hint", string(hint)).
		Int("candidates", len(s.candidates)).Int("remaining", s.remaining).
		Msg("turn played")
	return result, nil
}

// FinishRound acknowledges a won or lost round and moves to Replay.
func (s *Session) FinishRound() error {
	if s.phase != Won && s.phase != Lost {
		return fmt.Errorf("%w: cannot finish a round while %s", ErrWrongPhase, s.phase)
	}
	s.phase = Replay
	return nil
}

// PlayAgain answers the replay prompt: back to LengthSelection for another
// round, or Terminated.
func (s *Session) PlayAgain(again bool) error {
	if s.phase != Replay {
		return fmt.Errorf("%w: no replay decision pending while %s", ErrWrongPhase, s.phase)
	}
	if again {
		s.phase = LengthSelection
	} else {
		s.phase = Terminated
	}
	return nil
}

// Quit abandons the session from any phase.
func (s *Session) Quit() {
	s.phase = Terminated
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Hint() adversary.Pattern { return s.hint }

func (s *Session) Remaining() int { return s.remaining }

func (s *Session) Guessed() string { return s.guessed.String() }

func (s *Session) ShowDetails() bool { return s.showDetails }

func (s *Session) CandidateCount() int { return len(s.candidates) }

func (s *Session) MaxGuesses() int { return s.maxGuesses }

func (s *Session) RandSeed() int64 { return s.randSeed }

// Candidates returns a copy of the surviving words; shown in detailed play.
func (s *Session) Candidates() []string {
	out := make([]string, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// LastPartitions returns the partition map from the most recent turn, or
// nil before the first turn of a round; shown in detailed play.
func (s *Session) LastPartitions() map[adversary.Pattern][]string {
	return s.lastPartitions
}
