package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/blagoySimandov/novafields/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the Store used when the server runs with STORE_DRIVER=gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) InitializeDatabase(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.EventDB{}); err != nil {
		return fmt.Errorf("failed to migrate events table: %w", err)
	}
	return nil
}

// SelectEvents builds the listing query without running it.
func (s *GormStore) SelectEvents(ctx context.Context, scope Scope, offset, limit int) (*gorm.DB, error) {
	q := s.db.WithContext(ctx).
		Model(&models.EventDB{}).
		Order("event_date DESC").
		Order("created_at DESC")

	if scope != nil {
		scoped, err := scope(query.Gorm(q))
		if err != nil {
			return nil, err
		}
		gq, ok := scoped.(*query.GormQuery)
		if !ok {
			return nil, fmt.Errorf("%w: gorm store got %T", ErrUnsupportedQuery, scoped)
		}
		q = gq.Unwrap()
	}

	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q, nil
}

func (s *GormStore) ListEvents(ctx context.Context, scope Scope, offset, limit int) ([]*models.EventDB, error) {
	q, err := s.SelectEvents(ctx, scope, offset, limit)
	if err != nil {
		return nil, err
	}

	var events []*models.EventDB
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *GormStore) GetEvent(ctx context.Context, id uuid.UUID) (*models.EventDB, error) {
	var event models.EventDB
	err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *GormStore) CreateEvent(ctx context.Context, event *models.EventDB) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
