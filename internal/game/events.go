// internal/game/events.go
package game

// GameEventType is an enum-like type for broadcasting game actions.
type GameEventType string

const (
	EventTurnResult    GameEventType = "game_turn_result"    // Outcome of a completed turn
	EventWarStart      GameEventType = "game_war_start"      // Active cards tied; war triggered
	EventWarForfeit    GameEventType = "game_war_forfeit"    // A player could not meet the war requirement
	EventDeckReshuffle GameEventType = "game_deck_reshuffle" // Periodic reshuffle of both decks
	EventGameEnd       GameEventType = "game_end"            // Game over + result
)

// EventPlayer identifies a player within GameEvent payloads.
type EventPlayer struct {
	Name  string `json:"name"`
	Count int    `json:"count"` // cards held after the event
}

// EventCard carries a card's render form within GameEvent payloads.
type EventCard struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// GameEvent holds data about an event that the display layer can render.
// Card1/Card2 are the active comparison cards where that applies.
type GameEvent struct {
	Type   GameEventType `json:"type"`
	Turn   int           `json:"turn"`
	Player *EventPlayer  `json:"player,omitempty"` // turn/war winner, or the forfeiting player
	Card1  *EventCard    `json:"card1,omitempty"`
	Card2  *EventCard    `json:"card2,omitempty"`

	// Payload holds miscellaneous fields (pile size, war depth, scores).
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// fireEvent invokes the broadcast hook if one is attached.
func (g *WarGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn == nil {
		return
	}
	g.BroadcastFn(ev)
}
