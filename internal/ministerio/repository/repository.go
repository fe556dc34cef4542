package repository

import (
	"context"
	"errors"

	"ministerios/internal/ministerio/model"
)

var (
	ErrNotFound   = errors.New("ministerio not found")
	ErrValidation = errors.New("ministerio rejected by storage constraints")
	ErrConnection = errors.New("storage backend unreachable")
)

type MinisterioRepository interface {
	// Insert a new document built from the allow-listed fields
	Create(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error)
	// Load one document by its hex identifier
	FindByID(ctx context.Context, id string) (*model.Ministerio, error)
	// Set only the supplied fields and return the stored result
	Update(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error)
	// Remove one document by its hex identifier
	Delete(ctx context.Context, id string) error
	// Start a fresh lazy scan of matching documents
	Query(ctx context.Context, filter model.MinisterioFilter) (Iterator, error)
	// Query and drain into a slice
	List(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error)
	// Check backend reachability
	Ping(ctx context.Context) error
}

// Iterator walks the results of one Query. It must be closed when done.
type Iterator interface {
	Next(ctx context.Context) bool
	Ministerio() *model.Ministerio
	Err() error
	Close(ctx context.Context) error
}

// Drain reads every remaining record from it and closes it.
func Drain(ctx context.Context, it Iterator) ([]*model.Ministerio, error) {
	defer it.Close(ctx)

	out := []*model.Ministerio{}
	for it.Next(ctx) {
		out = append(out, it.Ministerio())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
