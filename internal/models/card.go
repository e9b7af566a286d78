package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Rank is a card's rank. Ranks run 2 through 14; 11-14 are the face
// cards Jack, Queen, King, Ace. Game comparisons use rank only.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// String renders numeric ranks as digits and face cards as J/Q/K/A.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Suit is a card's suit. Suit is display-only; it never breaks ties.
type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists the four suits in deck-construction order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Card is an immutable playing card. Cards are created once at game
// start and circulate between player decks for the rest of play.
type Card struct {
	ID   uuid.UUID `json:"id"`
	Rank Rank      `json:"rank"`
	Suit Suit      `json:"suit"`
}

// NewCard creates a card with a fresh identity.
func NewCard(rank Rank, suit Suit) *Card {
	id, _ := uuid.NewRandom()
	return &Card{ID: id, Rank: rank, Suit: suit}
}

// String returns the display form, e.g. "A of Spades" or "7 of Hearts".
func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
