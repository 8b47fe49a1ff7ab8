package engine

// Normalize repairs a snapshot loaded from storage so the progression
// invariants hold before it reaches CompleteQuest or FailQuest. A quest
// flagged both completed and failed is kept as failed.
func Normalize(s PlayerState) PlayerState {
	s.TotalExp = max(0, s.TotalExp)
	s.CurrentStreak = max(0, s.CurrentStreak)
	s.LongestStreak = max(0, s.LongestStreak, s.CurrentStreak)
	s.TierIndex = TierForExp(s.TotalExp)

	quests := make([]Quest, 0, len(s.Quests))
	for _, q := range s.Quests {
		if q.Completed && q.Failed {
			q.Completed = false
			q.CompletedAt = nil
		}
		if !q.Difficulty.IsValid() {
			q.Difficulty = DefaultDifficulty
		}
		quests = append(quests, q)
	}
	s.Quests = quests

	history := make([]LedgerEntry, 0, len(s.ExpHistory))
	for _, e := range s.ExpHistory {
		e.Gained = max(0, e.Gained)
		e.Lost = max(0, e.Lost)
		history = append(history, e)
	}
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	s.ExpHistory = history
	return s
}
