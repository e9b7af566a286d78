// internal/game/rules.go
package game

import (
	"fmt"
	"os"
	"strconv"
)

// Rules defines the tunable knobs of a game. Zero values are replaced
// by defaults at game construction.
type Rules struct {
	ShuffleInterval int `json:"shuffleInterval"` // reshuffle both decks every N completed turns; 0 means default, <0 disables
	MaxTurns        int `json:"maxTurns"`        // safety bound for RunToCompletion; <=0 means unbounded
}

// DefaultRules returns the standard configuration: reshuffle every 25
// turns, no turn cap.
func DefaultRules() Rules {
	return Rules{
		ShuffleInterval: 25,
		MaxTurns:        0,
	}
}

// Update merges new rule values from a generic map. Keys that are not
// present keep their old value; invalid types or values are rejected.
func (r *Rules) Update(newRules map[string]interface{}) error {
	assignInt := func(field *int, key string) error {
		val, exists := newRules[key]
		if !exists || val == nil {
			return nil
		}
		// JSON numbers are often float64, handle conversion
		switch v := val.(type) {
		case float64:
			*field = int(v)
		case int:
			*field = v
		default:
			return fmt.Errorf("invalid type for %s", key)
		}
		return nil
	}

	if err := assignInt(&r.ShuffleInterval, "shuffleInterval"); err != nil {
		return err
	}
	if err := assignInt(&r.MaxTurns, "maxTurns"); err != nil {
		return err
	}
	return nil
}

// RulesFromEnv layers WAR_SHUFFLE_INTERVAL and WAR_MAX_TURNS over the
// given base. Unset or malformed variables keep the base value.
func RulesFromEnv(base Rules) Rules {
	rules := base
	if v := os.Getenv("WAR_SHUFFLE_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rules.ShuffleInterval = n
		}
	}
	if v := os.Getenv("WAR_MAX_TURNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rules.MaxTurns = n
		}
	}
	return rules
}
