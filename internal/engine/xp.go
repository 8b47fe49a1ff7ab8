package engine

const (
	// StreakBreakPenaltyPerDay is charged per streak day lost on failure.
	StreakBreakPenaltyPerDay = 10

	// StreakBreakPenaltyCap bounds the streak-break penalty.
	StreakBreakPenaltyCap = 150

	// failureCostPercent is the share of base EXP lost when a quest fails.
	failureCostPercent = 50
)

// BaseExp returns the fixed EXP value of a difficulty. Unknown difficulties
// are worth nothing.
func BaseExp(d Difficulty) int {
	switch d {
	case DifficultyTrivial:
		return 5
	case DifficultyEasy:
		return 15
	case DifficultyMedium:
		return 30
	case DifficultyHard:
		return 60
	case DifficultyLegendary:
		return 120
	default:
		return 0
	}
}

// streakMultiplierPercent keeps the multiplier as an integer percentage so
// rounding stays exact.
func streakMultiplierPercent(streak int) int {
	switch {
	case streak >= 30:
		return 150
	case streak >= 14:
		return 130
	case streak >= 7:
		return 115
	case streak >= 3:
		return 105
	default:
		return 100
	}
}

// StreakMultiplier returns the completion bonus factor for a streak length.
func StreakMultiplier(streak int) float64 {
	return float64(streakMultiplierPercent(streak)) / 100
}

// CompletionExp computes the EXP granted for completing a quest of the given
// difficulty while holding streak (the value before this completion counts).
func CompletionExp(d Difficulty, streak int) int {
	return roundPercent(BaseExp(d), streakMultiplierPercent(streak))
}

// FailureExp is the intrinsic cost of failing a quest, independent of streak.
func FailureExp(d Difficulty) int {
	return roundPercent(BaseExp(d), failureCostPercent)
}

// StreakBreakPenalty is the extra EXP lost when a failure resets a running
// streak. A zero streak costs nothing.
func StreakBreakPenalty(streak int) int {
	if streak <= 0 {
		return 0
	}
	return min(streak*StreakBreakPenaltyPerDay, StreakBreakPenaltyCap)
}

// roundPercent returns round-half-up(value * percent / 100) for non-negative
// inputs.
func roundPercent(value int, percent int) int {
	return (value*percent + 50) / 100
}
