package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	s := stateWith(
		quest("a", DifficultyEasy, day0),
		quest("b", DifficultyEasy, day0),
		quest("c", DifficultyEasy, day0),
	)
	assert.Equal(t, 0.0, ComputeStats(s).SuccessRate())

	s, _ = CompleteQuest(s, "a", day0)
	s, _ = FailQuest(s, "b", day0)

	st := ComputeStats(s)
	assert.Equal(t, Stats{Active: 1, Completed: 1, Failed: 1}, st)
	assert.Equal(t, 2, st.Resolved())
	assert.InDelta(t, 0.5, st.SuccessRate(), 1e-9)

	active := ActiveQuests(s)
	require.Len(t, active, 1)
	assert.Equal(t, "c", active[0].ID)
}

func TestRecentLedger(t *testing.T) {
	s := DefaultState()
	s.ExpHistory = []LedgerEntry{
		{Date: "2025-03-01", Gained: 10, Lost: 0},
		{Date: "2025-03-02", Gained: 5, Lost: 20},
		{Date: "2025-03-04", Gained: 30, Lost: 15},
	}

	days := RecentLedger(s, 2)
	require.Len(t, days, 2)
	assert.Equal(t, LedgerDay{Date: "2025-03-02", Gained: 5, Lost: 20, Net: -15}, days[0])
	assert.Equal(t, 15, days[1].Net)

	assert.Len(t, RecentLedger(s, 7), 3)
	assert.Nil(t, RecentLedger(s, 0))
}

func TestAchievements(t *testing.T) {
	s := stateWith(quest("leg", DifficultyLegendary, day0))
	s.TotalExp = 650
	s.TierIndex = TierForExp(650)
	s.LongestStreak = 7

	c := NewAchievementChecker(s)
	earned := map[string]bool{}
	for _, a := range c.GetAchievements() {
		earned[a.ID] = a.Earned
	}
	assert.True(t, earned["tier_1"])
	assert.True(t, earned["tier_2"])
	assert.False(t, earned["tier_3"])
	assert.True(t, earned["streak_7"])
	assert.False(t, earned["streak_14"])
	assert.False(t, earned["first_quest"])
	assert.False(t, earned["legend"])

	s, _ = CompleteQuest(s, "leg", day0)
	c = NewAchievementChecker(s)
	assert.Equal(t, len(Tiers)-1+4+5, c.CountTotal())
	earned = map[string]bool{}
	for _, a := range c.GetAchievements() {
		earned[a.ID] = a.Earned
	}
	assert.True(t, earned["first_quest"])
	assert.True(t, earned["legend"])
	assert.Equal(t, 2+2+2, c.CountEarned())
}
