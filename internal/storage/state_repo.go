package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shadowquest/internal/engine"
)

const MainPlayerKey = "main_user"

// StateRepo stores one player's snapshot as a JSON document keyed by player.
// It implements engine.Store.
type StateRepo struct {
	db     *sql.DB
	key    string
	logger *slog.Logger
}

func NewStateRepo(db *sql.DB, key string, logger *slog.Logger) *StateRepo {
	if key == "" {
		key = MainPlayerKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StateRepo{db: db, key: key, logger: logger}
}

func (r *StateRepo) Key() string { return r.key }

// Load returns the stored snapshot. A missing row yields engine.DefaultState;
// so does a document that cannot be decoded, which is logged and left in
// place until the next Save overwrites it.
func (r *StateRepo) Load(ctx context.Context) (engine.PlayerState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT document FROM player_state WHERE key = ?`, r.key)

	var doc string
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return engine.DefaultState(), nil
		}
		return engine.PlayerState{}, fmt.Errorf("state get: %w", err)
	}

	st, err := DecodeState([]byte(doc))
	if err != nil {
		r.logger.Warn("discarding unreadable player state", "player", r.key, "error", err)
		return engine.DefaultState(), nil
	}
	return st, nil
}

// Save overwrites the stored snapshot.
func (r *StateRepo) Save(ctx context.Context, s engine.PlayerState) error {
	doc, err := EncodeState(s)
	if err != nil {
		return err
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO player_state (key, document, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at
		`, r.key, string(doc), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("state upsert: %w", err)
		}
		return nil
	})
}

// Reset deletes the stored snapshot so the next Load starts fresh.
func (r *StateRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM player_state WHERE key = ?`, r.key); err != nil {
		return fmt.Errorf("state reset: %w", err)
	}
	return nil
}
