// internal/cli/render.go
package cli

import (
	"fmt"
	"io"

	"github.com/tylerbartnick/WarCardGame/internal/game"
)

// NewEventRenderer returns a broadcast hook that formats game events
// for the terminal. Attach it to WarGame.BroadcastFn; pass nil there
// instead for silent batch runs.
func NewEventRenderer(out io.Writer) func(game.GameEvent) {
	return func(ev game.GameEvent) {
		switch ev.Type {
		case game.EventWarStart:
			fmt.Fprintf(out, "  WAR! %s of %s vs %s of %s (pile: %v)\n",
				ev.Card1.Rank, ev.Card1.Suit, ev.Card2.Rank, ev.Card2.Suit, ev.Payload["pile"])
		case game.EventWarForfeit:
			fmt.Fprintf(out, "  %s cannot continue the war and forfeits %v card(s)!\n",
				ev.Player.Name, ev.Payload["discarded"])
		case game.EventTurnResult:
			if ev.Player != nil {
				fmt.Fprintf(out, "Turn %d: %s of %s vs %s of %s -> %s takes %v card(s) [%v-%v]\n",
					ev.Turn, ev.Card1.Rank, ev.Card1.Suit, ev.Card2.Rank, ev.Card2.Suit,
					ev.Player.Name, ev.Payload["pile"], ev.Payload["p1_count"], ev.Payload["p2_count"])
			} else {
				fmt.Fprintf(out, "Turn %d: both players forfeit; no one takes the pile\n", ev.Turn)
			}
		case game.EventDeckReshuffle:
			fmt.Fprintf(out, "  (decks reshuffled after turn %d)\n", ev.Turn)
		case game.EventGameEnd:
			if ev.Player != nil {
				fmt.Fprintf(out, "Game over after %d turn(s): %s wins %v-%v!\n",
					ev.Turn, ev.Player.Name, ev.Payload["p1_count"], ev.Payload["p2_count"])
			} else {
				fmt.Fprintf(out, "Game over after %d turn(s): a draw.\n", ev.Turn)
			}
		}
	}
}
