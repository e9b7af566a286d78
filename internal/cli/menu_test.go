// internal/cli/menu_test.go
package cli

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerbartnick/WarCardGame/internal/game"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seededRNG(seed int64) func() *rand.Rand {
	return func() *rand.Rand {
		return rand.New(rand.NewSource(seed))
	}
}

func TestMenuSession(t *testing.T) {
	script := strings.Join([]string{
		"2",     // turn before any game exists
		"1",     // new game
		"Alice", // player 1
		"alice", // rejected: duplicate of player 1
		"Bob",   // player 2
		"4",     // score
		"2",     // one turn
		"5",     // help
		"9",     // unknown option
		"6",     // quit
	}, "\n") + "\n"

	var out bytes.Buffer
	m := NewMenu(strings.NewReader(script), &out, testLogger(), game.DefaultRules(), seededRNG(42))

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "No game in progress")
	assert.Contains(t, got, "already taken")
	assert.Contains(t, got, "New game: Alice vs Bob")
	assert.Contains(t, got, "Alice: 26 card(s) | Bob: 26 card(s)")
	assert.Contains(t, got, "Turn 1:")
	assert.Contains(t, got, "52-card deck")
	assert.Contains(t, got, "Unknown option")
	assert.Contains(t, got, "Goodbye!")
}

func TestMenuBatchRun(t *testing.T) {
	script := "1\nAlice\nBob\n3\n6\n"
	var out bytes.Buffer
	rules := game.Rules{ShuffleInterval: 25, MaxTurns: 100000}
	m := NewMenu(strings.NewReader(script), &out, testLogger(), rules, seededRNG(7))

	require.NoError(t, m.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Turn 1:")
	// Two identically seeded sessions replay the same transcript.
	var out2 bytes.Buffer
	m2 := NewMenu(strings.NewReader(script), &out2, testLogger(), rules, seededRNG(7))
	require.NoError(t, m2.Run(context.Background()))
	assert.Equal(t, got, out2.String())
}

func TestMenuQuitsOnEOF(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(""), &out, testLogger(), game.DefaultRules(), seededRNG(1))
	assert.NoError(t, m.Run(context.Background()))
}
