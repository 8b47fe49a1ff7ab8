package engine

import "fmt"

// Achievement represents a badge/achievement the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements a snapshot has earned.
type AchievementChecker struct {
	state PlayerState
	stats Stats
}

func NewAchievementChecker(state PlayerState) *AchievementChecker {
	return &AchievementChecker{
		state: state,
		stats: ComputeStats(state),
	}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	var achievements []Achievement

	// One per rank above the starting one.
	for i := 1; i < len(Tiers); i++ {
		t := Tiers[i]
		achievements = append(achievements, Achievement{
			ID:          fmt.Sprintf("tier_%d", i),
			Name:        t.Name,
			Description: fmt.Sprintf("Reach %d EXP", t.Threshold),
			Icon:        t.Badge,
			Earned:      c.state.TierIndex >= i,
		})
	}

	// Streak milestones track the longest streak so a break does not revoke them.
	achievements = append(achievements,
		c.streakAchievement("streak_3", "Getting Started", "3-day streak", "🔥", 3),
		c.streakAchievement("streak_7", "Week Warrior", "7-day streak", "⚔️", 7),
		c.streakAchievement("streak_14", "Dedicated", "14-day streak", "🛡️", 14),
		c.streakAchievement("streak_30", "Monthly Master", "30-day streak", "🌙", 30),
	)

	achievements = append(achievements,
		c.questCountAchievement("first_quest", "First Quest", "Complete 1 quest", "✓", 1),
		c.questCountAchievement("productive", "Productive", "Complete 10 quests", "📋", 10),
		c.questCountAchievement("achiever", "Achiever", "Complete 50 quests", "🏅", 50),
		c.questCountAchievement("powerhouse", "Powerhouse", "Complete 100 quests", "🏆", 100),
		c.legendaryAchievement("legend", "Legend", "Complete a legendary quest", "🐉"),
	)

	return achievements
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	earned := c.state.LongestStreak >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) questCountAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.stats.Completed >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) legendaryAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, q := range c.state.Quests {
		if q.Completed && q.Difficulty == DifficultyLegendary {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
