package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ErrEmptyTitle
	}
	return t, nil
}

// CreateQuest builds an active quest with a fresh id, created at now.
func CreateQuest(title string, d Difficulty, now time.Time) Quest {
	return Quest{
		ID:         uuid.NewString(),
		Title:      title,
		Difficulty: d,
		CreatedAt:  now,
	}
}

// AddQuest returns a copy of s with q placed at the head of the quest list,
// so the newest quest comes first.
func AddQuest(s PlayerState, q Quest) PlayerState {
	quests := make([]Quest, 0, len(s.Quests)+1)
	quests = append(quests, q)
	quests = append(quests, s.Quests...)
	s.Quests = quests
	return s
}

// DeleteQuest returns a copy of s without the quest id. EXP, streak and the
// ledger are left alone. Unknown ids return s unchanged and false.
func DeleteQuest(s PlayerState, id string) (PlayerState, bool) {
	idx := s.questIndex(id)
	if idx < 0 {
		return s, false
	}
	quests := make([]Quest, 0, len(s.Quests)-1)
	quests = append(quests, s.Quests[:idx]...)
	quests = append(quests, s.Quests[idx+1:]...)
	s.Quests = quests
	return s, true
}
