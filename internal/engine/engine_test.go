package engine

import "testing"

func TestTierBoundaries(t *testing.T) {
	if got := TierForExp(0); got != 0 {
		t.Fatalf("TierForExp(0)=%d, want 0", got)
	}
	for i, tier := range Tiers {
		if got := TierForExp(tier.Threshold); got != i {
			t.Fatalf("TierForExp(%d)=%d, want %d", tier.Threshold, got, i)
		}
		if i == 0 {
			continue
		}
		if got := TierForExp(tier.Threshold - 1); got != i-1 {
			t.Fatalf("TierForExp(%d)=%d, want %d", tier.Threshold-1, got, i-1)
		}
	}
	if got := TierForExp(1_000_000); got != MaxTierIndex {
		t.Fatalf("TierForExp(1e6)=%d, want %d", got, MaxTierIndex)
	}
}

func TestTierForExpMonotonic(t *testing.T) {
	prev := 0
	for exp := 0; exp <= 30_000; exp += 7 {
		got := TierForExp(exp)
		if got < prev {
			t.Fatalf("TierForExp(%d)=%d dropped below %d", exp, got, prev)
		}
		if Tiers[got].Threshold > exp {
			t.Fatalf("TierForExp(%d)=%d has threshold %d above exp", exp, got, Tiers[got].Threshold)
		}
		prev = got
	}
}

func TestTierProgress(t *testing.T) {
	if got := TierProgress(0, 0); got != 0 {
		t.Fatalf("TierProgress(0,0)=%v, want 0", got)
	}
	if got := TierProgress(100, 0); got != 0.5 {
		t.Fatalf("TierProgress(100,0)=%v, want 0.5", got)
	}
	// Stale index: exp already past the next threshold.
	if got := TierProgress(5000, 0); got != 1 {
		t.Fatalf("TierProgress(5000,0)=%v, want 1", got)
	}
	if got := TierProgress(0, 3); got != 0 {
		t.Fatalf("TierProgress(0,3)=%v, want 0", got)
	}
	for _, exp := range []int{0, 25000, 99999} {
		if got := TierProgress(exp, MaxTierIndex); got != 1 {
			t.Fatalf("TierProgress(%d,max)=%v, want 1", exp, got)
		}
	}
	for exp := 0; exp <= 26_000; exp += 13 {
		p := TierProgress(exp, TierForExp(exp))
		if p < 0 || p > 1 {
			t.Fatalf("TierProgress(%d)=%v out of [0,1]", exp, p)
		}
	}
}

func TestExpToNextTier(t *testing.T) {
	if missing, ok := ExpToNextTier(150); !ok || missing != 50 {
		t.Fatalf("ExpToNextTier(150)=%d,%v want 50,true", missing, ok)
	}
	if _, ok := ExpToNextTier(25000); ok {
		t.Fatalf("ExpToNextTier at max rank should report ok=false")
	}
}

func TestCompletionExp(t *testing.T) {
	cases := []struct {
		d      Difficulty
		streak int
		want   int
	}{
		{DifficultyTrivial, 0, 5},
		{DifficultyEasy, 2, 15},
		{DifficultyMedium, 0, 30},
		{DifficultyHard, 0, 60},
		{DifficultyLegendary, 0, 120},
		{DifficultyEasy, 3, 16},   // 15.75
		{DifficultyTrivial, 6, 5}, // 5.25
		{DifficultyHard, 7, 69},   // 69.0
		{DifficultyMedium, 7, 35}, // 34.5 rounds up
		{DifficultyMedium, 14, 39},
		{DifficultyLegendary, 29, 156},
		{DifficultyLegendary, 30, 180},
		{DifficultyTrivial, 100, 8}, // 7.5 rounds up
	}
	for _, c := range cases {
		if got := CompletionExp(c.d, c.streak); got != c.want {
			t.Fatalf("CompletionExp(%s, %d)=%d, want %d", c.d, c.streak, got, c.want)
		}
	}
}

func TestStreakMultiplierSteps(t *testing.T) {
	steps := map[int]float64{0: 1.0, 2: 1.0, 3: 1.05, 6: 1.05, 7: 1.15, 13: 1.15, 14: 1.3, 29: 1.3, 30: 1.5, 365: 1.5}
	for streak, want := range steps {
		if got := StreakMultiplier(streak); got != want {
			t.Fatalf("StreakMultiplier(%d)=%v, want %v", streak, got, want)
		}
	}
}

func TestFailureExpAndPenalty(t *testing.T) {
	want := map[Difficulty]int{
		DifficultyTrivial:   3, // 2.5 rounds up
		DifficultyEasy:      8, // 7.5 rounds up
		DifficultyMedium:    15,
		DifficultyHard:      30,
		DifficultyLegendary: 60,
	}
	for d, w := range want {
		if got := FailureExp(d); got != w {
			t.Fatalf("FailureExp(%s)=%d, want %d", d, got, w)
		}
	}

	if got := StreakBreakPenalty(0); got != 0 {
		t.Fatalf("StreakBreakPenalty(0)=%d, want 0", got)
	}
	if got := StreakBreakPenalty(4); got != 40 {
		t.Fatalf("StreakBreakPenalty(4)=%d, want 40", got)
	}
	if got := StreakBreakPenalty(15); got != 150 {
		t.Fatalf("StreakBreakPenalty(15)=%d, want 150", got)
	}
	if got := StreakBreakPenalty(40); got != 150 {
		t.Fatalf("StreakBreakPenalty(40)=%d, want 150", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	ok := map[string]Difficulty{
		"":          DefaultDifficulty,
		"Trivial":   DifficultyTrivial,
		" hard ":    DifficultyHard,
		"5":         DifficultyLegendary,
		"legendary": DifficultyLegendary,
		"m":         DifficultyMedium,
	}
	for in, want := range ok {
		got, err := ParseDifficulty(in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDifficulty(%q)=%s, want %s", in, got, want)
		}
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatalf("expected error for unknown difficulty")
	}
}
