package engine

import (
	"fmt"
	"strings"
)

// ParseDifficulty parses user input to a Difficulty.
// Supported: trivial, easy, medium, hard, legendary (and their first letters),
// or the numeric scale 1-5. Empty input returns DefaultDifficulty.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultDifficulty, nil
	case "trivial", "t", "1":
		return DifficultyTrivial, nil
	case "easy", "e", "2":
		return DifficultyEasy, nil
	case "medium", "m", "3":
		return DifficultyMedium, nil
	case "hard", "h", "4":
		return DifficultyHard, nil
	case "legendary", "l", "5", "epic":
		return DifficultyLegendary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, input)
	}
}
