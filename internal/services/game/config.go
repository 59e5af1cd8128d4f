package game

import "time"

// Config holds the tunable rules of the turn/challenge flow
type Config struct {
	// ChallengeWindow is how long a submitted move stays challengeable
	ChallengeWindow time.Duration

	// ChallengerLosesTurn skips the challenger's upcoming turn when
	// their challenge fails
	ChallengerLosesTurn bool
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{
		ChallengeWindow:     30 * time.Second,
		ChallengerLosesTurn: true,
	}
}
