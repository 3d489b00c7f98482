// Package sessionstore records launched Mini App sessions in postgres.
package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/fineai/miniapp-gateway/pkg/launch"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the launch session store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// CreateSession records session unless one with the same key exists.
// It reports whether session was inserted.
func (s *pgStore) CreateSession(ctx context.Context, session *launch.Session) (bool, error) {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	dao := toSessionDao(session)

	res, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (session_key) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create launch session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// GetSession returns the session recorded for key.
func (s *pgStore) GetSession(ctx context.Context, key string) (*launch.Session, error) {
	dao := new(LaunchSessionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("session_key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, launch.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get launch session: %w", err)
	}
	return toSession(dao), nil
}

// DeleteSession removes the session recorded for key. Deleting a missing
// session is not an error.
func (s *pgStore) DeleteSession(ctx context.Context, key string) error {
	_, err := s.db.NewDelete().
		Model((*LaunchSessionDao)(nil)).
		Where("session_key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete launch session: %w", err)
	}
	return nil
}
