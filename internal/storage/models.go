package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shadowquest/internal/engine"
)

// stateDocument is the stored JSON shape of engine.PlayerState.
type stateDocument struct {
	TotalExp       int             `json:"totalExp"`
	CurrentStreak  int             `json:"currentStreak"`
	LongestStreak  int             `json:"longestStreak"`
	Quests         []questDocument `json:"quests"`
	ExpHistory     []ledgerEntry   `json:"expHistory"`
	LastActiveDate string          `json:"lastActiveDate"`
	TierIndex      int             `json:"tierIndex"`
}

type questDocument struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Difficulty  string     `json:"difficulty"`
	Completed   bool       `json:"completed"`
	Failed      bool       `json:"failed"`
	CreatedAt   timestamp  `json:"createdAt"`
	CompletedAt *timestamp `json:"completedAt,omitempty"`
}

type ledgerEntry struct {
	Date   string `json:"date"`
	Gained int    `json:"gained"`
	Lost   int    `json:"lost"`
}

// timestamp is written as RFC 3339 and also read from epoch milliseconds,
// the shape used by earlier documents.
type timestamp time.Time

func (t timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339Nano))
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = timestamp{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse timestamp: %w", err)
		}
		*t = timestamp(v)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	*t = timestamp(time.UnixMilli(ms))
	return nil
}

var errEmptyDocument = errors.New("empty state document")

// EncodeState serializes a snapshot to its stored document form.
func EncodeState(s engine.PlayerState) ([]byte, error) {
	doc := stateDocument{
		TotalExp:       s.TotalExp,
		CurrentStreak:  s.CurrentStreak,
		LongestStreak:  s.LongestStreak,
		Quests:         make([]questDocument, 0, len(s.Quests)),
		ExpHistory:     make([]ledgerEntry, 0, len(s.ExpHistory)),
		LastActiveDate: s.LastActiveDate,
		TierIndex:      s.TierIndex,
	}
	for _, q := range s.Quests {
		qd := questDocument{
			ID:         q.ID,
			Title:      q.Title,
			Difficulty: string(q.Difficulty),
			Completed:  q.Completed,
			Failed:     q.Failed,
			CreatedAt:  timestamp(q.CreatedAt),
		}
		if q.CompletedAt != nil {
			ts := timestamp(*q.CompletedAt)
			qd.CompletedAt = &ts
		}
		doc.Quests = append(doc.Quests, qd)
	}
	for _, e := range s.ExpHistory {
		doc.ExpHistory = append(doc.ExpHistory, ledgerEntry(e))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

// DecodeState parses a stored document and normalizes it.
func DecodeState(data []byte) (engine.PlayerState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return engine.PlayerState{}, errEmptyDocument
	}

	var doc stateDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return engine.PlayerState{}, fmt.Errorf("unmarshal state: %w", err)
	}

	s := engine.PlayerState{
		TotalExp:       doc.TotalExp,
		CurrentStreak:  doc.CurrentStreak,
		LongestStreak:  doc.LongestStreak,
		Quests:         make([]engine.Quest, 0, len(doc.Quests)),
		ExpHistory:     make([]engine.LedgerEntry, 0, len(doc.ExpHistory)),
		LastActiveDate: doc.LastActiveDate,
		TierIndex:      doc.TierIndex,
	}
	for _, qd := range doc.Quests {
		q := engine.Quest{
			ID:         qd.ID,
			Title:      qd.Title,
			Difficulty: engine.Difficulty(qd.Difficulty),
			Completed:  qd.Completed,
			Failed:     qd.Failed,
			CreatedAt:  time.Time(qd.CreatedAt),
		}
		if qd.CompletedAt != nil {
			v := time.Time(*qd.CompletedAt)
			q.CompletedAt = &v
		}
		s.Quests = append(s.Quests, q)
	}
	for _, e := range doc.ExpHistory {
		s.ExpHistory = append(s.ExpHistory, engine.LedgerEntry(e))
	}
	return engine.Normalize(s), nil
}
