package engine

import "time"

// Weak zones reported by GenerateEvaluation.
const (
	WeakZoneCompletionRatio = "Task completion ratio is below threshold"
	WeakZoneAccumulation    = "Task accumulation without resolution"
	WeakZoneZeroActivity    = "Zero activity detected"
	WeakZoneStreakBroken    = "Streak broken, momentum lost"
	WeakZoneNone            = "None detected"
)

const (
	SuggestReduceDifficulty = "Reduce task difficulty. Complete 3 easy tasks before attempting hard ones."
	SuggestClearQueue       = "Clear pending queue. Unfinished tasks erode discipline over time."
	SuggestTrivialQuest     = "Inaction is regression. Add one trivial quest to restart momentum."
	SuggestRebuildStreak    = "Rebuild with 3 consecutive days of easy completions before scaling up."
	SuggestMaintain         = "Maintain current trajectory."
)

const (
	// pendingQuestLimit is how many unresolved quests created today are
	// tolerated before the queue is flagged.
	pendingQuestLimit = 3

	// brokenStreakFloor is the longest streak above which a zero current
	// streak is flagged.
	brokenStreakFloor = 3
)

// EvaluationReport summarizes the current day.
type EvaluationReport struct {
	Date       string
	ExpGained  int
	ExpLost    int
	WeakZone   string
	Suggestion string

	CreatedToday   int
	CompletedToday int
	FailedToday    int
	PendingToday   int
}

// GenerateEvaluation reports on the calendar day containing now. Quests are
// attributed to the day of their creation, read in now's location so quest
// days and ledger days agree.
func GenerateEvaluation(s PlayerState, now time.Time) EvaluationReport {
	today := DayKey(now)
	entry := s.LedgerFor(today)

	r := EvaluationReport{
		Date:      today,
		ExpGained: entry.Gained,
		ExpLost:   entry.Lost,
	}
	for _, q := range s.Quests {
		if DayKey(q.CreatedAt.In(now.Location())) != today {
			continue
		}
		r.CreatedToday++
		switch q.Status() {
		case QuestCompleted:
			r.CompletedToday++
		case QuestFailed:
			r.FailedToday++
		default:
			r.PendingToday++
		}
	}

	switch {
	case r.FailedToday > r.CompletedToday:
		r.WeakZone, r.Suggestion = WeakZoneCompletionRatio, SuggestReduceDifficulty
	case r.PendingToday > pendingQuestLimit:
		r.WeakZone, r.Suggestion = WeakZoneAccumulation, SuggestClearQueue
	case r.ExpGained == 0 && r.ExpLost == 0:
		r.WeakZone, r.Suggestion = WeakZoneZeroActivity, SuggestTrivialQuest
	case s.CurrentStreak == 0 && s.LongestStreak > brokenStreakFloor:
		r.WeakZone, r.Suggestion = WeakZoneStreakBroken, SuggestRebuildStreak
	default:
		r.WeakZone, r.Suggestion = WeakZoneNone, SuggestMaintain
	}
	return r
}
