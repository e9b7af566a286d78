// internal/deck/deck_test.go
package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tylerbartnick/WarCardGame/internal/models"
)

// multiset keys a deck by (rank, suit) counts, ignoring order and identity.
func multiset(cards []*models.Card) map[[2]string]int {
	m := make(map[[2]string]int)
	for _, c := range cards {
		m[[2]string{c.Rank.String(), string(c.Suit)}]++
	}
	return m
}

func TestNewStandardDeck(t *testing.T) {
	cards := NewStandardDeck()
	require.Len(t, cards, StandardDeckSize)

	// Deterministic nested order: rank-major, suit-minor.
	assert.Equal(t, models.Two, cards[0].Rank)
	assert.Equal(t, models.Hearts, cards[0].Suit)
	assert.Equal(t, models.Two, cards[3].Rank)
	assert.Equal(t, models.Spades, cards[3].Suit)
	assert.Equal(t, models.Three, cards[4].Rank)
	assert.Equal(t, models.Ace, cards[51].Rank)
	assert.Equal(t, models.Spades, cards[51].Suit)

	// One of each (rank, suit) pair.
	seen := multiset(cards)
	assert.Len(t, seen, StandardDeckSize)
	for pair, count := range seen {
		assert.Equal(t, 1, count, "duplicate card %v", pair)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cards := NewStandardDeck()
	before := multiset(cards)

	Shuffle(rng, cards)

	require.Len(t, cards, StandardDeckSize)
	assert.Equal(t, before, multiset(cards), "shuffle must never create or destroy cards")
}

func TestShuffleSeededDeterminism(t *testing.T) {
	first := NewStandardDeck()
	second := NewStandardDeck()

	Shuffle(rand.New(rand.NewSource(42)), first)
	Shuffle(rand.New(rand.NewSource(42)), second)

	for i := range first {
		assert.Equal(t, first[i].Rank, second[i].Rank, "rank mismatch at %d", i)
		assert.Equal(t, first[i].Suit, second[i].Suit, "suit mismatch at %d", i)
	}
}

func TestDealAlternating(t *testing.T) {
	a, err := models.NewPlayer("Alice")
	require.NoError(t, err)
	b, err := models.NewPlayer("Bob")
	require.NoError(t, err)

	cards := NewStandardDeck()
	DealAlternating(cards, a, b)

	require.Equal(t, 26, a.Count())
	require.Equal(t, 26, b.Count())
	assert.Equal(t, StandardDeckSize, a.Count()+b.Count())

	// Parity split preserves encounter order.
	for i := 0; i < 26; i++ {
		assert.Same(t, cards[2*i], a.Deck[i])
		assert.Same(t, cards[2*i+1], b.Deck[i])
	}
}
