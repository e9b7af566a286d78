// internal/cli/menu.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/tylerbartnick/WarCardGame/internal/game"
	"github.com/tylerbartnick/WarCardGame/internal/models"
)

const menuText = `
===== War =====
 1) New game
 2) Play one turn
 3) Run to completion
 4) Show score
 5) Help
 6) Quit
`

const helpText = `War is played with a standard 52-card deck split evenly between two
players. Each turn both players reveal their front card; the higher rank
takes both. On a tie ("war") each player lays one card face down and a
new active card; the new comparison decides the whole pile, and further
ties repeat the sequence. A player who cannot put up the two cards a war
requires forfeits their remaining deck. Suits never matter. The first
player to hold no cards loses.`

// Menu drives a game through an interactive text loop. It owns the
// prompter, the renderer, and at most one game at a time.
type Menu struct {
	prompter *Prompter
	out      io.Writer
	log      *logrus.Logger
	rules    game.Rules
	newRNG   func() *rand.Rand

	game *game.WarGame
}

// NewMenu builds a menu loop around the given streams. newRNG supplies
// the random source for each fresh game, so a seeded factory makes
// whole sessions reproducible.
func NewMenu(in io.Reader, out io.Writer, logger *logrus.Logger, rules game.Rules, newRNG func() *rand.Rand) *Menu {
	return &Menu{
		prompter: NewPrompter(in, out),
		out:      out,
		log:      logger,
		rules:    rules,
		newRNG:   newRNG,
	}
}

// Run executes the menu loop until the player quits, input ends, or the
// context is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := m.prompter.ReadLine(menuText + "> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := m.newGame(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "2":
			m.playOneTurn()
		case "3":
			m.runToCompletion(ctx)
		case "4":
			m.showScore()
		case "5":
			fmt.Fprintln(m.out, helpText)
		case "6":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintf(m.out, "Unknown option %q; enter 1-6.\n", choice)
		}
	}
}

func (m *Menu) newGame() error {
	nameA, err := m.prompter.PlayerName("player 1", "")
	if err != nil {
		return err
	}
	nameB, err := m.prompter.PlayerName("player 2", nameA)
	if err != nil {
		return err
	}

	playerA, err := models.NewPlayer(nameA)
	if err != nil {
		return err
	}
	playerB, err := models.NewPlayer(nameB)
	if err != nil {
		return err
	}

	g := game.NewWarGame(m.log, m.newRNG(), m.rules)
	g.BroadcastFn = NewEventRenderer(m.out)
	if err := g.AddPlayer(playerA); err != nil {
		return err
	}
	if err := g.AddPlayer(playerB); err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}

	m.game = g
	fmt.Fprintf(m.out, "New game: %s vs %s. 26 cards each.\n", nameA, nameB)
	return nil
}

func (m *Menu) playOneTurn() {
	if !m.requireGame() {
		return
	}
	if _, err := m.game.PlayOneTurn(); err != nil {
		fmt.Fprintf(m.out, "Cannot play a turn: %v\n", err)
	}
}

func (m *Menu) runToCompletion(ctx context.Context) {
	if !m.requireGame() {
		return
	}
	if _, err := m.game.RunToCompletion(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(m.out, "Batch run stopped: %v\n", err)
	}
}

func (m *Menu) showScore() {
	if !m.requireGame() {
		return
	}
	p1, p2 := m.game.Score()
	fmt.Fprintf(m.out, "%s: %d card(s) | %s: %d card(s) | turns played: %d\n",
		m.game.Players[0].Name, p1, m.game.Players[1].Name, p2, m.game.TotalTurns)
}

func (m *Menu) requireGame() bool {
	if m.game == nil {
		fmt.Fprintln(m.out, "No game in progress; start one first.")
		return false
	}
	return true
}
