package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/tuanvumaihuynh/parts-inventory/internal/model"
)

var (
	ErrPartNotFound      = errors.New("part not found")
	ErrPartAlreadyExists = errors.New("part already exists")
	ErrEmptyPartID       = errors.New("part id is empty")
)

type PartRepository interface {
	CreatePart(ctx context.Context, part model.Part) (model.Part, error)
	GetPartByID(ctx context.Context, id string) (model.Part, error)
	ListAllParts(ctx context.Context) ([]model.Part, error)
	ListLowStockParts(ctx context.Context) ([]model.Part, error)
	UpdatePartStock(ctx context.Context, id string, newStock int) (model.Part, error)
}

var _ PartRepository = (*partRepository)(nil)

// partRepository keeps parts in process memory. Records are stored in insertion
// order and indexed by id; every read hands out copies.
type partRepository struct {
	mu    sync.RWMutex
	parts []model.Part
	index map[string]int
}

// NewPartRepository creates an in-memory part repository pre-populated with seed.
// Seed records must carry unique, non-empty ids.
func NewPartRepository(seed ...model.Part) (PartRepository, error) {
	r := &partRepository{
		parts: make([]model.Part, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}

	for _, part := range seed {
		if err := r.insert(part); err != nil {
			return nil, fmt.Errorf("seed part %q: %w", part.ID, err)
		}
	}

	return r, nil
}

func (r *partRepository) CreatePart(_ context.Context, part model.Part) (model.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.insert(part); err != nil {
		return model.Part{}, err
	}

	return part, nil
}

func (r *partRepository) GetPartByID(_ context.Context, id string) (model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.Part{}, ErrPartNotFound
	}

	return r.parts[i], nil
}

func (r *partRepository) ListAllParts(_ context.Context) ([]model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.parts), nil
}

func (r *partRepository) ListLowStockParts(_ context.Context) ([]model.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parts := make([]model.Part, 0)
	for _, part := range r.parts {
		if part.NeedsRestock() {
			parts = append(parts, part)
		}
	}

	return parts, nil
}

func (r *partRepository) UpdatePartStock(_ context.Context, id string, newStock int) (model.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return model.Part{}, ErrPartNotFound
	}

	r.parts[i].Stock = newStock

	return r.parts[i], nil
}

// insert must be called with mu held for writing (or before r is shared).
func (r *partRepository) insert(part model.Part) error {
	if part.ID == "" {
		return ErrEmptyPartID
	}
	if _, exists := r.index[part.ID]; exists {
		return ErrPartAlreadyExists
	}

	r.index[part.ID] = len(r.parts)
	r.parts = append(r.parts, part)

	return nil
}
