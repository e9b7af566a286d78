// internal/deck/deck.go
package deck

import (
	"math/rand"

	"github.com/tylerbartnick/WarCardGame/internal/models"
)

// StandardDeckSize is the number of cards in a full deck.
const StandardDeckSize = 52

// NewStandardDeck builds the 52-card set in deterministic order:
// rank-major (2 through Ace), suit-minor (Hearts, Diamonds, Clubs,
// Spades). Shuffling is a separate step.
func NewStandardDeck() []*models.Card {
	cards := make([]*models.Card, 0, StandardDeckSize)
	for rank := models.Two; rank <= models.Ace; rank++ {
		for _, suit := range models.Suits {
			cards = append(cards, models.NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle permutes cards in place with Fisher-Yates: each index i is
// swapped with a uniformly chosen index in [i, n-1]. The random source
// is injected so tests can seed it.
func Shuffle(rng *rand.Rand, cards []*models.Card) {
	n := len(cards)
	for i := 0; i < n-1; i++ {
		j := i + rng.Intn(n-i)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// DealAlternating distributes cards by index parity: even indices to a,
// odd indices to b, preserving the order encountered.
func DealAlternating(cards []*models.Card, a, b *models.Player) {
	for i, card := range cards {
		if i%2 == 0 {
			a.AddToBack(card)
		} else {
			b.AddToBack(card)
		}
	}
}
