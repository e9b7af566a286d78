package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankString(t *testing.T) {
	cases := map[Rank]string{
		Two:   "2",
		Nine:  "9",
		Ten:   "10",
		Jack:  "J",
		Queen: "Q",
		King:  "K",
		Ace:   "A",
	}
	for rank, want := range cases {
		assert.Equal(t, want, rank.String())
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A of Spades", NewCard(Ace, Spades).String())
	assert.Equal(t, "7 of Hearts", NewCard(Seven, Hearts).String())
	assert.Equal(t, "10 of Diamonds", NewCard(Ten, Diamonds).String())
}
