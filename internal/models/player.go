package models

import (
	"github.com/google/uuid"
)

// Player owns a display name and a FIFO deck of cards. The deck is
// mutated only by Draw (front) and AddToBack; deck length is the
// player's score.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Deck []*Card   `json:"deck"`
}

// NewPlayer creates a player with an empty deck. The name is assumed
// already sanitized by the input layer.
func NewPlayer(name string) (*Player, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &Player{
		ID:   id,
		Name: name,
		Deck: []*Card{},
	}, nil
}

// Draw removes and returns the front card of the deck, or nil if the
// deck is empty. Callers are expected to check Count first; drawing
// from an empty deck is a contract violation on their side.
func (p *Player) Draw() *Card {
	if len(p.Deck) == 0 {
		return nil
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	return card
}

// AddToBack appends cards to the back of the deck in the order given.
func (p *Player) AddToBack(cards ...*Card) {
	p.Deck = append(p.Deck, cards...)
}

// Count returns the number of cards the player holds.
func (p *Player) Count() int {
	return len(p.Deck)
}

// Forfeit empties the player's deck and returns the discarded cards.
// Used when the player cannot meet a war's card requirement.
func (p *Player) Forfeit() []*Card {
	lost := p.Deck
	p.Deck = []*Card{}
	return lost
}
