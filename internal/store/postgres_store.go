package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/blagoySimandov/novafields/internal/query"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(db *bun.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InitializeDatabase(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*models.EventDB)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	_, err = s.db.NewCreateIndex().
		Model((*models.EventDB)(nil)).
		Index("idx_events_event_date").
		Column("event_date").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event_date index: %w", err)
	}

	return nil
}

// SelectEvents builds the listing query without running it.
func (s *PostgresStore) SelectEvents(events *[]*models.EventDB, scope Scope, offset, limit int) (*bun.SelectQuery, error) {
	q := s.db.NewSelect().
		Model(events).
		Order("event_date DESC", "created_at DESC")

	if scope != nil {
		scoped, err := scope(query.Bun(q))
		if err != nil {
			return nil, err
		}
		bq, ok := scoped.(*query.BunQuery)
		if !ok {
			return nil, fmt.Errorf("%w: bun store got %T", ErrUnsupportedQuery, scoped)
		}
		q = bq.Unwrap()
	}

	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q, nil
}

func (s *PostgresStore) ListEvents(ctx context.Context, scope Scope, offset, limit int) ([]*models.EventDB, error) {
	var events []*models.EventDB
	q, err := s.SelectEvents(&events, scope, offset, limit)
	if err != nil {
		return nil, err
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *PostgresStore) GetEvent(ctx context.Context, id uuid.UUID) (*models.EventDB, error) {
	var event models.EventDB
	err := s.db.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *PostgresStore) CreateEvent(ctx context.Context, event *models.EventDB) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	_, err := s.db.NewInsert().
		Model(event).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
