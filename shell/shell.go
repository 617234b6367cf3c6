// Package shell runs the interactive prompt loop around a game session.
package shell

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/duffman188/Hang-Man/adversary"
	"github.com/duffman188/Hang-Man/config"
	"github.com/duffman188/Hang-Man/game"
	"github.com/duffman188/Hang-Man/stats"
	"github.com/duffman188/Hang-Man/words"
)

const (
	lengthPrompt = "\033[31mlength>\033[0m "
	letterPrompt = "\033[31mguess>\033[0m "
	replayPrompt = "\033[31magain (y/n)>\033[0m "
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	list    *words.List
	session *game.Session
	tally   stats.Tally
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          lengthPrompt,
		HistoryFile:     "/tmp/hangman_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

var errEmptyWordList = errors.New("word list is empty")

// loadWordList refuses a list with no words, whatever the cause: a game
// cannot start without candidates.
func loadWordList(filename string) (*words.List, error) {
	list, err := words.Load(filename)
	if err != nil {
		return nil, err
	}
	if list.Len() == 0 {
		return nil, errEmptyWordList
	}
	return list, nil
}

// Loop reads input until the player quits or the session terminates. All
// input-validation failures re-enter the same prompt; only a failed word
// list load ends the loop early.
func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	list, err := loadWordList(sc.cfg.GetString("word-file"))
	if err != nil {
		log.Err(err).Msg("could not load word list")
		sc.showMessage("Unable to load words. Exiting game.")
		sig <- syscall.SIGINT
		return
	}
	sc.list = list
	sc.session = game.NewSession(list, sc.cfg.GetInt("max-guesses"))
	if seed := sc.cfg.GetInt64("seed"); seed != 0 {
		sc.session.SetRandomizer(rand.New(rand.NewSource(seed)))
	}

	sc.showMessage("Enter a word length to begin (negative for detailed play), or `quit` to exit.")

	for {
		sc.setPrompt()
		if sc.session.Phase() == game.Playing {
			sc.showStatus()
		}

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" || line == "bye" {
			break
		}

		switch sc.session.Phase() {
		case game.LengthSelection:
			sc.handleLength(line)
		case game.Playing:
			sc.handleLetter(line)
		case game.Replay:
			sc.handleReplay(line)
		}

		if sc.session.Phase() == game.Terminated {
			break
		}
	}

	if summary := sc.tally.Summary(); summary != "" {
		sc.showMessage(summary)
	}
	sc.showMessage("Thanks for playing! Goodbye!")
	sig <- syscall.SIGINT
	log.Debug().Msg("exiting readline loop...")
}

func promptForPhase(p game.Phase) string {
	switch p {
	case game.Playing:
		return letterPrompt
	case game.Replay:
		return replayPrompt
	}
	return lengthPrompt
}

func (sc *ShellController) setPrompt() {
	sc.l.SetPrompt(promptForPhase(sc.session.Phase()))
}

func (sc *ShellController) showStatus() {
	sc.showMessage("")
	sc.showMessage("You have " + strconv.Itoa(sc.session.Remaining()) + " guesses remaining")
	sc.showMessage("Guessed letters: " + sc.session.Guessed())
	sc.showMessage("Current hint: " + string(sc.session.Hint()))
	if sc.session.ShowDetails() {
		sc.showMessage("Potential words: " + strings.Join(sc.session.Candidates(), " "))
		sc.showMessage("There are " + strconv.Itoa(sc.session.CandidateCount()) + " possible words")
	}
}

func (sc *ShellController) handleLength(line string) {
	length, err := strconv.Atoi(line)
	if err != nil {
		sc.showMessage("Invalid input. Please enter a valid integer for word length.")
		return
	}
	err = sc.session.StartRound(length)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrZeroLength):
		sc.showMessage("Word length must be a positive or negative integer.")
	case errors.Is(err, game.ErrNoWords):
		sc.showMessage("No words of that length found. Please choose a different length.")
	default:
		sc.showError(err)
	}
}

func (sc *ShellController) handleLetter(line string) {
	result, err := sc.session.Guess(line)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrNotALetter):
		sc.showMessage("Input must be a single alphabetical letter.")
		return
	case errors.Is(err, game.ErrAlreadyGuessed):
		sc.showMessage("You have already guessed the letter '" + line + "'. Try again.")
		return
	default:
		// The selector failing mid-round is an internal invariant
		// violation, not bad input.
		log.Fatal().Err(err).Msg("turn failed")
		return
	}

	if sc.session.ShowDetails() {
		sc.showPartitions()
	}

	letter := string(result.Letter)
	if result.Hit {
		sc.showMessage("Yes! '" + letter + "' is in the word!")
	} else {
		sc.showMessage("I'm sorry '" + letter + "' is not in the word.")
	}
	if result.NoProgress {
		sc.showMessage("'" + letter + "' did not change the word.")
	}

	if result.Won {
		sc.showMessage("You win! The word was " + string(result.Hint))
		sc.endRound(true)
	} else if result.Lost {
		sc.showMessage("You have lost. The word was " + result.Revealed)
		sc.endRound(false)
	}
}

func (sc *ShellController) showPartitions() {
	partitions := sc.session.LastPartitions()
	keys := make([]adversary.Pattern, 0, len(partitions))
	for p := range partitions {
		keys = append(keys, p)
	}
	slices.Sort(keys)
	sc.showMessage("Partitions:")
	for _, k := range keys {
		sc.showMessage(string(k) + ": " + strings.Join(partitions[k], " "))
	}
}

func (sc *ShellController) endRound(won bool) {
	sc.tally.Push(stats.RoundResult{
		Won:         won,
		GuessesUsed: sc.session.MaxGuesses() - sc.session.Remaining(),
		WordLength:  len(sc.session.Hint()),
	})
	if err := sc.session.FinishRound(); err != nil {
		log.Fatal().Err(err).Msg("round end failed")
	}
	sc.showMessage("Do you want to play again? (y/n)")
}

func parseReplay(line string) (again bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y":
		return true, true
	case "n":
		return false, true
	}
	return false, false
}

func (sc *ShellController) handleReplay(line string) {
	again, ok := parseReplay(line)
	if !ok {
		sc.showMessage("Please enter 'y' or 'n'.")
		return
	}
	if err := sc.session.PlayAgain(again); err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}
	if again {
		sc.showMessage("Enter a word length to begin (negative for detailed play), or `quit` to exit.")
	}
}
