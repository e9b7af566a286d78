// cmd/war/main.go
package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/tylerbartnick/WarCardGame/internal/cli"
	"github.com/tylerbartnick/WarCardGame/internal/game"
)

func main() {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("WAR_LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	rules := game.RulesFromEnv(game.DefaultRules())

	seed := time.Now().UnixNano()
	if v := os.Getenv("WAR_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			seed = n
		} else {
			logger.Warnf("ignoring malformed WAR_SEED %q", v)
		}
	}

	// Each new game in the session gets its own source; bumping the seed
	// keeps a WAR_SEED-pinned session reproducible game over game.
	newRNG := func() *rand.Rand {
		r := rand.New(rand.NewSource(seed))
		seed++
		return r
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	menu := cli.NewMenu(os.Stdin, os.Stdout, logger, rules, newRNG)
	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("menu loop exited: %v", err)
	}
}
