package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEvaluation_ZeroActivity(t *testing.T) {
	r := GenerateEvaluation(DefaultState(), day0)

	assert.Equal(t, "2025-03-10", r.Date)
	assert.Equal(t, 0, r.ExpGained)
	assert.Equal(t, 0, r.ExpLost)
	assert.Equal(t, WeakZoneZeroActivity, r.WeakZone)
	assert.Equal(t, SuggestTrivialQuest, r.Suggestion)
}

func TestGenerateEvaluation_FailuresOutnumberCompletions(t *testing.T) {
	s := stateWith(
		quest("a", DifficultyEasy, day0),
		quest("b", DifficultyEasy, day0),
		quest("c", DifficultyEasy, day0),
	)
	s, _ = CompleteQuest(s, "a", day0)
	s, _ = FailQuest(s, "b", day0)
	s, _ = FailQuest(s, "c", day0)

	r := GenerateEvaluation(s, day0.Add(time.Hour))

	assert.Equal(t, WeakZoneCompletionRatio, r.WeakZone)
	assert.Equal(t, SuggestReduceDifficulty, r.Suggestion)
	assert.Equal(t, 15, r.ExpGained)
	assert.Equal(t, 8+10+8, r.ExpLost) // the first failure also breaks a 1-day streak
	assert.Equal(t, 1, r.CompletedToday)
	assert.Equal(t, 2, r.FailedToday)
}

func TestGenerateEvaluation_Accumulation(t *testing.T) {
	s := stateWith(
		quest("a", DifficultyEasy, day0),
		quest("b", DifficultyEasy, day0),
		quest("c", DifficultyEasy, day0),
		quest("d", DifficultyEasy, day0),
	)
	r := GenerateEvaluation(s, day0)
	assert.Equal(t, WeakZoneAccumulation, r.WeakZone)
	assert.Equal(t, 4, r.PendingToday)

	// Three pending is still tolerated; with no EXP moved the day reads as idle.
	s, _ = DeleteQuest(s, "d")
	r = GenerateEvaluation(s, day0)
	assert.Equal(t, WeakZoneZeroActivity, r.WeakZone)
}

func TestGenerateEvaluation_RatioBeatsAccumulation(t *testing.T) {
	s := stateWith(
		quest("f", DifficultyTrivial, day0),
		quest("a", DifficultyEasy, day0),
		quest("b", DifficultyEasy, day0),
		quest("c", DifficultyEasy, day0),
		quest("d", DifficultyEasy, day0),
	)
	s, _ = FailQuest(s, "f", day0)

	r := GenerateEvaluation(s, day0)
	assert.Equal(t, WeakZoneCompletionRatio, r.WeakZone)
}

func TestGenerateEvaluation_StreakBroken(t *testing.T) {
	yesterday := day0.AddDate(0, 0, -1)
	s := stateWith(quest("old", DifficultyEasy, yesterday), quest("today", DifficultyEasy, day0))
	s.LongestStreak = 5
	s.TotalExp = 300
	s.TierIndex = TierForExp(300)
	s.ExpHistory = []LedgerEntry{{Date: DayKey(day0), Gained: 0, Lost: 40}}
	// A quest failed yesterday does not count against today.
	s.Quests[0].Failed = true
	s.Quests[1].Completed = true

	r := GenerateEvaluation(s, day0)

	assert.Equal(t, WeakZoneStreakBroken, r.WeakZone)
	assert.Equal(t, SuggestRebuildStreak, r.Suggestion)
	assert.Equal(t, 1, r.CreatedToday)
}

func TestGenerateEvaluation_Healthy(t *testing.T) {
	s := stateWith(quest("a", DifficultyMedium, day0))
	s, _ = CompleteQuest(s, "a", day0)

	r := GenerateEvaluation(s, day0)

	assert.Equal(t, WeakZoneNone, r.WeakZone)
	assert.Equal(t, SuggestMaintain, r.Suggestion)
	assert.Equal(t, 30, r.ExpGained)
}

func TestGenerateEvaluation_UsesCallerLocationForQuestDays(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on the 10th is already the 11th in Tokyo.
	created := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	s := stateWith(
		quest("a", DifficultyEasy, created),
		quest("b", DifficultyEasy, created),
		quest("c", DifficultyEasy, created),
		quest("d", DifficultyEasy, created),
	)

	now := time.Date(2025, 3, 11, 8, 0, 0, 0, tokyo)
	r := GenerateEvaluation(s, now)
	assert.Equal(t, "2025-03-11", r.Date)
	assert.Equal(t, 4, r.PendingToday)
	assert.Equal(t, WeakZoneAccumulation, r.WeakZone)

	r = GenerateEvaluation(s, now.In(time.UTC))
	assert.Equal(t, "2025-03-10", r.Date)
	assert.Equal(t, 4, r.PendingToday)
}
