package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Store persists a player's snapshot. Load returns DefaultState when nothing
// has been saved yet.
type Store interface {
	Load(ctx context.Context) (PlayerState, error)
	Save(ctx context.Context, s PlayerState) error
}

// Service runs the pure progression functions against a Store. Every
// load-compute-save cycle holds mu, so one mutation is in flight at a time.
type Service struct {
	mu     sync.Mutex
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

// WithClock sets the source of "now"; its location defines calendar days.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation reads the wall clock in loc.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.now = func() time.Time { return time.Now().In(loc) }
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) State(ctx context.Context) (PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// AddQuest creates a quest and saves it at the head of the quest list.
func (s *Service) AddQuest(ctx context.Context, title string, d Difficulty) (Quest, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return Quest{}, err
	}
	if !d.IsValid() {
		return Quest{}, fmt.Errorf("%w: %q", ErrInvalidDifficulty, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return Quest{}, err
	}
	q := CreateQuest(t, d, s.now())
	if err := s.store.Save(ctx, AddQuest(st, q)); err != nil {
		return Quest{}, err
	}
	s.logger.Info("quest added", "quest_id", q.ID, "difficulty", string(d))
	return q, nil
}

// CompleteQuest completes a quest and saves the result. Resolving an unknown
// or already resolved quest is a no-op with a zero result and no save.
func (s *Service) CompleteQuest(ctx context.Context, id string) (CompleteResult, PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return CompleteResult{}, PlayerState{}, err
	}
	next, res := CompleteQuest(st, id, s.now())
	if res.QuestID == "" {
		s.logger.Debug("complete ignored", "quest_id", id)
		return res, st, nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return CompleteResult{}, PlayerState{}, err
	}

	s.logger.Info("quest completed",
		"quest_id", id,
		"exp_gained", res.ExpGained,
		"total_exp", next.TotalExp,
		"streak", next.CurrentStreak,
	)
	if res.TierChanged {
		s.logger.Info("tier changed",
			"from", Tiers[res.TierBefore].Name,
			"to", Tiers[res.TierAfter].Name,
		)
	}
	return res, next, nil
}

// FailQuest fails a quest and saves the result, with the same no-op rules as
// CompleteQuest.
func (s *Service) FailQuest(ctx context.Context, id string) (FailResult, PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return FailResult{}, PlayerState{}, err
	}
	next, res := FailQuest(st, id, s.now())
	if res.QuestID == "" {
		s.logger.Debug("fail ignored", "quest_id", id)
		return res, st, nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return FailResult{}, PlayerState{}, err
	}

	s.logger.Info("quest failed",
		"quest_id", id,
		"exp_lost", res.ExpLost,
		"streak_lost", res.StreakLost,
		"total_exp", next.TotalExp,
	)
	return res, next, nil
}

// DeleteQuest removes a quest without changing EXP. It reports whether the
// quest existed.
func (s *Service) DeleteQuest(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.store.Load(ctx)
	if err != nil {
		return false, err
	}
	next, ok := DeleteQuest(st, id)
	if !ok {
		return false, nil
	}
	if err := s.store.Save(ctx, next); err != nil {
		return false, err
	}
	s.logger.Info("quest deleted", "quest_id", id)
	return true, nil
}

func (s *Service) Evaluate(ctx context.Context) (EvaluationReport, error) {
	st, err := s.State(ctx)
	if err != nil {
		return EvaluationReport{}, err
	}
	return GenerateEvaluation(st, s.now()), nil
}

// FindQuest resolves a full quest id or a unique id prefix.
func (s *Service) FindQuest(ctx context.Context, idOrPrefix string) (Quest, error) {
	st, err := s.State(ctx)
	if err != nil {
		return Quest{}, err
	}
	return FindQuest(st, idOrPrefix)
}

// FindQuest resolves a full quest id or a unique id prefix within s.
func FindQuest(s PlayerState, idOrPrefix string) (Quest, error) {
	p := strings.ToLower(strings.TrimSpace(idOrPrefix))
	if p == "" {
		return Quest{}, ErrQuestNotFound
	}
	if q, ok := s.Quest(p); ok {
		return q, nil
	}

	var matches []Quest
	for _, q := range s.Quests {
		if strings.HasPrefix(q.ID, p) {
			matches = append(matches, q)
		}
	}
	switch len(matches) {
	case 0:
		return Quest{}, fmt.Errorf("%w: %s", ErrQuestNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, q := range matches {
			ids = append(ids, ShortID(q.ID))
		}
		return Quest{}, AmbiguousIDError{Prefix: idOrPrefix, Matches: ids}
	}
}

// ShortID is the id prefix shown to users.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
