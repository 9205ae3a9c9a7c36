package store

import (
	"context"
	"errors"

	"github.com/blagoySimandov/novafields/internal/field"
	"github.com/blagoySimandov/novafields/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrUnsupportedQuery is returned when a scope swaps the store's query
	// for one the store cannot run.
	ErrUnsupportedQuery = errors.New("unsupported query type")
)

// Scope narrows a listing query, typically by applying resource filters.
type Scope func(q field.Query) (field.Query, error)

type Store interface {
	InitializeDatabase(ctx context.Context) error
	ListEvents(ctx context.Context, scope Scope, offset, limit int) ([]*models.EventDB, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.EventDB, error)
	CreateEvent(ctx context.Context, event *models.EventDB) error
	Close() error
}
