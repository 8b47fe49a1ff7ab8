package engine

import "time"

type Difficulty string

const (
	DifficultyTrivial   Difficulty = "trivial"
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyLegendary Difficulty = "legendary"
)

// Difficulties lists every difficulty from cheapest to most rewarding.
var Difficulties = []Difficulty{
	DifficultyTrivial,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyLegendary,
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyTrivial, DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyLegendary:
		return true
	default:
		return false
	}
}

// DefaultDifficulty is used when user input is missing.
const DefaultDifficulty Difficulty = DifficultyEasy

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
)

// Quest is a trackable task. Completed and Failed are never both set; once
// either is set the quest is terminal.
type Quest struct {
	ID          string
	Title       string
	Difficulty  Difficulty
	Completed   bool
	Failed      bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (q Quest) Status() QuestStatus {
	switch {
	case q.Completed:
		return QuestCompleted
	case q.Failed:
		return QuestFailed
	default:
		return QuestActive
	}
}

func (q Quest) IsTerminal() bool {
	return q.Completed || q.Failed
}

// LedgerEntry aggregates the EXP gained and lost on one calendar day.
type LedgerEntry struct {
	Date   string
	Gained int
	Lost   int
}

// PlayerState is an immutable snapshot of a player's progression. Functions
// in this package never modify a snapshot in place; they return a new one.
type PlayerState struct {
	TotalExp       int
	CurrentStreak  int
	LongestStreak  int
	Quests         []Quest
	ExpHistory     []LedgerEntry
	LastActiveDate string
	TierIndex      int
}

// DefaultState returns the zeroed snapshot used when no prior state exists.
func DefaultState() PlayerState {
	return PlayerState{
		Quests:     []Quest{},
		ExpHistory: []LedgerEntry{},
	}
}

// Quest returns the quest with the given id.
func (s PlayerState) Quest(id string) (Quest, bool) {
	i := s.questIndex(id)
	if i < 0 {
		return Quest{}, false
	}
	return s.Quests[i], true
}

func (s PlayerState) questIndex(id string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i
		}
	}
	return -1
}

// Tier returns the table entry for the snapshot's current rank.
func (s PlayerState) Tier() TierInfo {
	return Tiers[clampTierIndex(s.TierIndex)]
}
