// internal/game/game.go
package game

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tylerbartnick/WarCardGame/internal/deck"
	"github.com/tylerbartnick/WarCardGame/internal/models"
)

// MinCardsForWar is the number of cards a player must still hold to
// fight a triggered war (one face-down, one new active card). A player
// below this threshold forfeits immediately without drawing.
const MinCardsForWar = 2

var (
	// ErrGameFull is returned when a third player is added.
	ErrGameFull = errors.New("game already has two players")
	// ErrStarted is returned when players are added after Start.
	ErrStarted = errors.New("game already started")
	// ErrNotStarted is returned when a turn is played before Start.
	ErrNotStarted = errors.New("game not started")
	// ErrGameOver is returned when a turn is played on a finished game.
	ErrGameOver = errors.New("game is over")
)

// TurnOutcome describes the result of one resolved turn, including any
// war cascade within it.
type TurnOutcome struct {
	Winner    *models.Player   // pile recipient; nil on a double forfeit
	Forfeited []*models.Player // players whose decks were discarded this turn
	WonCards  []*models.Card   // the play pile, in accumulated order
	WarRounds int              // number of war tiers fought this turn
}

// GameResult is the terminal (or current-standing) result of a game.
type GameResult struct {
	Draw       bool
	Winner     *models.Player // nil when Draw
	P1Count    int
	P2Count    int
	TotalTurns int
}

// WarGame holds the entire state for a single game instance in memory.
// The engine is synchronous and turn-by-turn; the mutex only guards
// against a display layer polling scores while a batch run is active.
type WarGame struct {
	ID uuid.UUID

	Players    []*models.Player
	TotalTurns int
	Rules      Rules
	Started    bool

	// BroadcastFn is used to send events to the display layer. If nil,
	// no broadcast is done.
	BroadcastFn func(ev GameEvent)

	Mu sync.Mutex

	rng *rand.Rand
	log *logrus.Logger
}

// NewWarGame builds an empty instance. The random source drives every
// shuffle, so a seeded rng yields a fully reproducible game. A nil
// logger silences the engine.
func NewWarGame(logger *logrus.Logger, rng *rand.Rand, rules Rules) *WarGame {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	if rules.ShuffleInterval == 0 {
		rules.ShuffleInterval = DefaultRules().ShuffleInterval
	}
	id, _ := uuid.NewRandom()
	return &WarGame{
		ID:      id,
		Players: []*models.Player{},
		Rules:   rules,
		rng:     rng,
		log:     logger,
	}
}

// AddPlayer registers a player. War is strictly a two-player game.
func (g *WarGame) AddPlayer(p *models.Player) error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started {
		return ErrStarted
	}
	if len(g.Players) >= 2 {
		return ErrGameFull
	}
	g.Players = append(g.Players, p)
	g.log.WithFields(logrus.Fields{
		"game":   g.ID,
		"player": p.Name,
	}).Debug("player added")
	return nil
}

// Start generates the 52-card deck, shuffles it, and deals it 26/26
// alternating between the two players.
func (g *WarGame) Start() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started {
		return ErrStarted
	}
	if len(g.Players) != 2 {
		return errors.New("exactly two players are required")
	}

	cards := deck.NewStandardDeck()
	deck.Shuffle(g.rng, cards)
	deck.DealAlternating(cards, g.Players[0], g.Players[1])
	g.Started = true

	g.log.WithFields(logrus.Fields{
		"game": g.ID,
		"p1":   g.Players[0].Name,
		"p2":   g.Players[1].Name,
	}).Info("game started")
	return nil
}

// IsGameOver reports whether either player's deck is empty. Game-over
// is derived from deck state, never stored.
func (g *WarGame) IsGameOver() bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.isGameOverLocked()
}

func (g *WarGame) isGameOverLocked() bool {
	if !g.Started {
		return false
	}
	return g.Players[0].Count() == 0 || g.Players[1].Count() == 0
}

// Score returns the two players' current card counts.
func (g *WarGame) Score() (int, int) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Players[0].Count(), g.Players[1].Count()
}

// Result computes the current standing: a draw iff both counts are
// equal (only reachable at zero via a double forfeit), otherwise the
// player holding more cards.
func (g *WarGame) Result() GameResult {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.resultLocked()
}

func (g *WarGame) resultLocked() GameResult {
	a, b := g.Players[0], g.Players[1]
	res := GameResult{
		P1Count:    a.Count(),
		P2Count:    b.Count(),
		TotalTurns: g.TotalTurns,
	}
	switch {
	case res.P1Count == res.P2Count:
		res.Draw = true
	case res.P1Count > res.P2Count:
		res.Winner = a
	default:
		res.Winner = b
	}
	return res
}

// PlayOneTurn resolves exactly one turn: both players reveal their front
// card, ties cascade into wars, and the whole play pile goes to the
// eventual winner. The turn counter advances by exactly 1 regardless of
// how many war tiers were fought. Every SHUFFLE_INTERVAL completed
// turns both decks are reshuffled in place to bound game length.
func (g *WarGame) PlayOneTurn() (TurnOutcome, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started {
		return TurnOutcome{}, ErrNotStarted
	}
	if g.isGameOverLocked() {
		return TurnOutcome{}, ErrGameOver
	}

	a, b := g.Players[0], g.Players[1]
	turn := g.TotalTurns + 1

	pile := make([]*models.Card, 0, 8)
	cardA, cardB := a.Draw(), b.Draw()
	pile = append(pile, cardA, cardB)

	var outcome TurnOutcome
	for {
		if cardA.Rank != cardB.Rank {
			winner := a
			if cardB.Rank > cardA.Rank {
				winner = b
			}
			winner.AddToBack(pile...)
			outcome.Winner = winner
			outcome.WonCards = pile
			break
		}

		// War: both active cards tied.
		outcome.WarRounds++
		g.fireEvent(GameEvent{
			Type:  EventWarStart,
			Turn:  turn,
			Card1: renderCard(cardA),
			Card2: renderCard(cardB),
			Payload: map[string]interface{}{
				"depth": outcome.WarRounds,
				"pile":  len(pile),
			},
		})

		// Each side is checked and forfeited independently, so both
		// decks can be discarded in the same step.
		shortA := a.Count() < MinCardsForWar
		shortB := b.Count() < MinCardsForWar
		if shortA || shortB {
			if shortA {
				g.forfeitLocked(a, turn)
				outcome.Forfeited = append(outcome.Forfeited, a)
			}
			if shortB {
				g.forfeitLocked(b, turn)
				outcome.Forfeited = append(outcome.Forfeited, b)
			}
			switch {
			case shortA && !shortB:
				b.AddToBack(pile...)
				outcome.Winner = b
				outcome.WonCards = pile
			case shortB && !shortA:
				a.AddToBack(pile...)
				outcome.Winner = a
				outcome.WonCards = pile
			}
			// Double forfeit: the pile leaves play with the decks.
			break
		}

		// One card face-down from each player, then the new active pair.
		downA, downB := a.Draw(), b.Draw()
		cardA, cardB = a.Draw(), b.Draw()
		pile = append(pile, downA, downB, cardA, cardB)
	}

	g.TotalTurns++

	ev := GameEvent{
		Type:  EventTurnResult,
		Turn:  g.TotalTurns,
		Card1: renderCard(cardA),
		Card2: renderCard(cardB),
		Payload: map[string]interface{}{
			"pile":     len(pile),
			"wars":     outcome.WarRounds,
			"p1_count": a.Count(),
			"p2_count": b.Count(),
		},
	}
	if outcome.Winner != nil {
		ev.Player = &EventPlayer{Name: outcome.Winner.Name, Count: outcome.Winner.Count()}
	}
	g.fireEvent(ev)

	if g.isGameOverLocked() {
		g.endGameLocked()
	} else if g.Rules.ShuffleInterval > 0 && g.TotalTurns%g.Rules.ShuffleInterval == 0 {
		g.reshuffleLocked()
	}

	return outcome, nil
}

// RunToCompletion repeatedly plays turns until the game ends, the
// MaxTurns bound is hit, or the context is cancelled. Each turn is a
// plain synchronous PlayOneTurn call; cancellation is only observed
// between turns.
func (g *WarGame) RunToCompletion(ctx context.Context) (GameResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return g.Result(), err
		}

		g.Mu.Lock()
		over := g.isGameOverLocked()
		maxed := g.Rules.MaxTurns > 0 && g.TotalTurns >= g.Rules.MaxTurns
		g.Mu.Unlock()

		if over {
			break
		}
		if maxed {
			g.log.WithFields(logrus.Fields{
				"game":  g.ID,
				"turns": g.TotalTurns,
			}).Warn("turn limit reached before game end")
			break
		}

		if _, err := g.PlayOneTurn(); err != nil {
			return g.Result(), err
		}
	}
	return g.Result(), nil
}

// forfeitLocked discards a player's remaining deck mid-war.
func (g *WarGame) forfeitLocked(p *models.Player, turn int) {
	lost := p.Forfeit()
	g.log.WithFields(logrus.Fields{
		"game":   g.ID,
		"player": p.Name,
		"lost":   len(lost),
	}).Info("war forfeit")
	g.fireEvent(GameEvent{
		Type:   EventWarForfeit,
		Turn:   turn,
		Player: &EventPlayer{Name: p.Name, Count: 0},
		Payload: map[string]interface{}{
			"discarded": len(lost),
		},
	})
}

// reshuffleLocked reorders both decks in place. Membership and length
// never change; without this, game length is effectively unbounded.
func (g *WarGame) reshuffleLocked() {
	for _, p := range g.Players {
		deck.Shuffle(g.rng, p.Deck)
	}
	g.log.WithFields(logrus.Fields{
		"game": g.ID,
		"turn": g.TotalTurns,
	}).Debug("decks reshuffled")
	g.fireEvent(GameEvent{
		Type: EventDeckReshuffle,
		Turn: g.TotalTurns,
		Payload: map[string]interface{}{
			"p1_count": g.Players[0].Count(),
			"p2_count": g.Players[1].Count(),
		},
	})
}

func (g *WarGame) endGameLocked() {
	res := g.resultLocked()
	fields := logrus.Fields{
		"game":  g.ID,
		"turns": res.TotalTurns,
	}
	ev := GameEvent{
		Type: EventGameEnd,
		Turn: res.TotalTurns,
		Payload: map[string]interface{}{
			"p1_count": res.P1Count,
			"p2_count": res.P2Count,
			"draw":     res.Draw,
		},
	}
	if res.Winner != nil {
		fields["winner"] = res.Winner.Name
		ev.Player = &EventPlayer{Name: res.Winner.Name, Count: res.Winner.Count()}
	}
	g.log.WithFields(fields).Info("game over")
	g.fireEvent(ev)
}

func renderCard(c *models.Card) *EventCard {
	return &EventCard{Rank: c.Rank.String(), Suit: string(c.Suit)}
}
