package repository

import (
	"context"
	"sort"
	"sync"

	"ministerios/internal/ministerio/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository keeps documents in a map. It backs the "memory" connection
// and the service and handler tests. Context errors map onto the same sentinels
// as the Mongo backend.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]model.Ministerio
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[primitive.ObjectID]model.Ministerio)}
}

func (m *MemoryRepository) Create(ctx context.Context, fields model.MinisterioFields) (*model.Ministerio, error) {
	if err := ctx.Err(); err != nil {
		return nil, translateError(err)
	}
	doc := model.NewMinisterio(fields)
	doc.ID = primitive.NewObjectID()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[doc.ID] = *doc
	return doc, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Ministerio, error) {
	if err := ctx.Err(); err != nil {
		return nil, translateError(err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (m *MemoryRepository) Update(ctx context.Context, id string, patch model.MinisterioPatch) (*model.Ministerio, error) {
	if err := ctx.Err(); err != nil {
		return nil, translateError(err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.store[oid]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&d)
	m.store[oid] = d
	return &d, nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return translateError(err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[oid]; !ok {
		return ErrNotFound
	}
	delete(m.store, oid)
	return nil
}

// Query snapshots the current identifiers in _id order. Records are read and
// matched one at a time as the iterator advances.
func (m *MemoryRepository) Query(ctx context.Context, filter model.MinisterioFilter) (Iterator, error) {
	if err := ctx.Err(); err != nil {
		return nil, translateError(err)
	}

	m.mu.RLock()
	ids := make([]primitive.ObjectID, 0, len(m.store))
	for id := range m.store {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i].Hex() < ids[j].Hex() })
	return &memoryIterator{repo: m, ids: ids, filter: filter}, nil
}

func (m *MemoryRepository) List(ctx context.Context, filter model.MinisterioFilter) ([]*model.Ministerio, error) {
	it, err := m.Query(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Drain(ctx, it)
}

func (m *MemoryRepository) Ping(ctx context.Context) error {
	return translateError(ctx.Err())
}

func (m *MemoryRepository) lookup(id primitive.ObjectID) (model.Ministerio, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	return d, ok
}

type memoryIterator struct {
	repo     *MemoryRepository
	ids      []primitive.ObjectID
	filter   model.MinisterioFilter
	pos      int
	skipped  int64
	returned int64
	current  *model.Ministerio
	err      error
	closed   bool
}

func (it *memoryIterator) Next(ctx context.Context) bool {
	it.current = nil
	if it.closed || it.err != nil {
		return false
	}
	if it.filter.Limit > 0 && it.returned >= it.filter.Limit {
		return false
	}
	for it.pos < len(it.ids) {
		if err := ctx.Err(); err != nil {
			it.err = translateError(err)
			return false
		}
		id := it.ids[it.pos]
		it.pos++

		d, ok := it.repo.lookup(id)
		if !ok || !it.filter.Matches(&d) {
			continue
		}
		if it.skipped < it.filter.Skip {
			it.skipped++
			continue
		}
		it.returned++
		it.current = &d
		return true
	}
	return false
}

func (it *memoryIterator) Ministerio() *model.Ministerio { return it.current }

func (it *memoryIterator) Err() error { return it.err }

func (it *memoryIterator) Close(ctx context.Context) error {
	it.closed = true
	return nil
}
