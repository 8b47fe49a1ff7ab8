package engine

import "time"

// CompleteResult is the delta produced by CompleteQuest. Presentation layers
// key animations off ExpGained and TierChanged.
type CompleteResult struct {
	QuestID      string
	ExpGained    int
	TierChanged  bool
	TierBefore   int
	TierAfter    int
	StreakBefore int
	StreakAfter  int
}

// FailResult is the delta produced by FailQuest. ExpLost is Cost plus
// StreakPenalty; the amount actually removed from TotalExp may be smaller
// because EXP is floored at zero.
type FailResult struct {
	QuestID       string
	ExpLost       int
	Cost          int
	StreakPenalty int
	StreakLost    int
}

// CompleteQuest resolves quest id as completed at now and returns the new
// snapshot. A missing or already resolved quest returns s unchanged with a
// zero result.
func CompleteQuest(s PlayerState, id string, now time.Time) (PlayerState, CompleteResult) {
	idx := s.questIndex(id)
	if idx < 0 || s.Quests[idx].IsTerminal() {
		return s, CompleteResult{}
	}
	quest := s.Quests[idx]

	// Reward uses the streak held before this completion.
	xp := CompletionExp(quest.Difficulty, s.CurrentStreak)
	today := DayKey(now)
	streak := AdvanceStreak(s.LastActiveDate, today, s.CurrentStreak)

	tierBefore := s.TierIndex
	next := s
	next.TotalExp = s.TotalExp + xp
	next.TierIndex = TierForExp(next.TotalExp)
	next.CurrentStreak = streak
	next.LongestStreak = max(s.LongestStreak, streak)
	next.LastActiveDate = today
	next.ExpHistory = recordExp(s.ExpHistory, today, xp, 0)

	completedAt := now
	quest.Completed = true
	quest.CompletedAt = &completedAt
	next.Quests = replaceQuest(s.Quests, idx, quest)

	return next, CompleteResult{
		QuestID:      id,
		ExpGained:    xp,
		TierChanged:  next.TierIndex != tierBefore,
		TierBefore:   tierBefore,
		TierAfter:    next.TierIndex,
		StreakBefore: s.CurrentStreak,
		StreakAfter:  streak,
	}
}

// FailQuest resolves quest id as failed at now. The quest's failure cost and,
// if a streak was running, the streak-break penalty are deducted with
// TotalExp floored at zero. The streak resets to zero; LongestStreak and
// LastActiveDate are kept.
func FailQuest(s PlayerState, id string, now time.Time) (PlayerState, FailResult) {
	idx := s.questIndex(id)
	if idx < 0 || s.Quests[idx].IsTerminal() {
		return s, FailResult{}
	}
	quest := s.Quests[idx]

	cost := FailureExp(quest.Difficulty)
	penalty := StreakBreakPenalty(s.CurrentStreak)
	lost := cost + penalty

	next := s
	next.TotalExp = max(0, s.TotalExp-lost)
	next.TierIndex = TierForExp(next.TotalExp)
	next.CurrentStreak = 0
	next.ExpHistory = recordExp(s.ExpHistory, DayKey(now), 0, lost)

	quest.Failed = true
	next.Quests = replaceQuest(s.Quests, idx, quest)

	return next, FailResult{
		QuestID:       id,
		ExpLost:       lost,
		Cost:          cost,
		StreakPenalty: penalty,
		StreakLost:    s.CurrentStreak,
	}
}

func replaceQuest(quests []Quest, idx int, q Quest) []Quest {
	out := make([]Quest, len(quests))
	copy(out, quests)
	out[idx] = q
	return out
}
