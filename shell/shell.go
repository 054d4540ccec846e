// Package shell is the interactive text interface. It consumes only the
// game's public operations and read accessors; all game rules live in the
// core packages.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/blockfall/blockfall/game"
	"github.com/blockfall/blockfall/pieces"
)

type ShellController struct {
	l    *readline.Instance
	game *game.Game
}

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

// NewShellController creates the interactive controller with a fresh,
// nondeterministically seeded game.
func NewShellController(catalog *pieces.Catalog) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mblockfall>\033[0m ",
		HistoryFile:     "/tmp/blockfall_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, game: game.NewGame(catalog)}
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	sc.showGame()
	for {
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
		if done := sc.execute(line); done {
			break
		}
	}
	log.Debug().Msg("exiting shell")
}

func (sc *ShellController) execute(line string) bool {
	fields, err := shellquote.Split(line)
	if err != nil {
		showMessage("error: "+err.Error(), sc.l.Stderr())
		return false
	}
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "exit", "quit", "q":
		showMessage(fmt.Sprintf("final score: %d", sc.game.Score()), sc.l.Stderr())
		return true
	case "help", "?":
		usage(sc.l.Stderr())
	case "show", "s":
		sc.showGame()
	case "hand", "h":
		sc.showHand()
	case "moves", "m":
		sc.showMoves(args)
	case "place", "p":
		sc.place(args)
	case "new", "reset":
		sc.game.Reset()
		sc.showGame()
	case "score":
		showMessage(fmt.Sprintf("score: %d  turn: %d", sc.game.Score(), sc.game.Turn()),
			sc.l.Stderr())
	default:
		showMessage("unknown command; type help", sc.l.Stderr())
	}
	return false
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the board and hand\n")
	io.WriteString(w, "hand - display the current hand\n")
	io.WriteString(w, "moves [slot] - list legal placements, optionally for one hand slot\n")
	io.WriteString(w, "place <slot> <row> <col> - place a hand piece at (row, col)\n")
	io.WriteString(w, "new - start a new game\n")
	io.WriteString(w, "score - show score and turn\n")
	io.WriteString(w, "exit - quit\n")
}

func (sc *ShellController) showGame() {
	w := sc.l.Stderr()
	showMessage(fmt.Sprintf("turn %d  score %d", sc.game.Turn(), sc.game.Score()), w)
	showMessage(sc.game.Board().ToDisplayText(), w)
	sc.showHand()
	if sc.game.GameOver() {
		showMessage("GAME OVER - no legal placements left. Type new to restart.", w)
	}
}

func (sc *ShellController) showHand() {
	w := sc.l.Stderr()
	hand := sc.game.Hand()
	used := sc.game.HandUsed()
	catalog := sc.game.Catalog()
	for i, pieceIdx := range hand {
		p := catalog.Piece(pieceIdx)
		status := ""
		if used[i] {
			status = " (used)"
		}
		showMessage(fmt.Sprintf("[%d] %s%s", i, p.Name, status), w)
		if !used[i] {
			showMessage(p.String(), w)
		}
	}
}

func (sc *ShellController) showMoves(args []string) {
	w := sc.l.Stderr()
	if len(args) > 0 {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			showMessage("moves: slot must be a number", w)
			return
		}
		moves := sc.game.LegalMoves(slot)
		showMessage(fmt.Sprintf("%d legal placements for slot %d", len(moves), slot), w)
		return
	}
	moves := sc.game.AllLegalMoves()
	showMessage(fmt.Sprintf("%d legal placements", len(moves)), w)
}

func (sc *ShellController) place(args []string) {
	w := sc.l.Stderr()
	if len(args) != 3 {
		showMessage("usage: place <slot> <row> <col>", w)
		return
	}
	nums := make([]int, 3)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			showMessage("place: arguments must be numbers", w)
			return
		}
		nums[i] = n
	}
	if sc.game.GameOver() || !sc.game.CanPlace(nums[0], nums[1], nums[2]) {
		// An illegal placement is a no-op; tell the user why nothing moved.
		showMessage("illegal placement", w)
		return
	}
	points := sc.game.PlaceAt(nums[0], nums[1], nums[2])
	if points > 0 {
		showMessage(fmt.Sprintf("+%d points!", points), w)
	}
	sc.showGame()
}
