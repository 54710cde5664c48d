// Package repository provides catalog and session persistence: an in-memory
// catalog used by default and PostgreSQL stores used when a DSN is configured.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/service"
)

var _ service.CatalogRepository = (*MemoryCatalogRepository)(nil)

// MemoryCatalogRepository keeps algorithms in insertion order in process memory.
// Every access holds mu, so concurrent admin requests cannot interleave writes.
type MemoryCatalogRepository struct {
	mu         sync.RWMutex
	algorithms []models.Algorithm
}

// NewMemoryCatalogRepository creates a store holding a copy of seed.
func NewMemoryCatalogRepository(seed []models.Algorithm) *MemoryCatalogRepository {
	algorithms := make([]models.Algorithm, len(seed))
	copy(algorithms, seed)
	return &MemoryCatalogRepository{algorithms: algorithms}
}

// List returns a snapshot of the catalog in insertion order.
func (r *MemoryCatalogRepository) List(_ context.Context) ([]models.Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Algorithm, len(r.algorithms))
	copy(out, r.algorithms)
	return out, nil
}

// Get returns the algorithm with the given ID or models.ErrNotFound.
func (r *MemoryCatalogRepository) Get(_ context.Context, id string) (*models.Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	algo := r.algorithms[i]
	return &algo, nil
}

// Create appends algo to the end of the catalog.
// It fails with models.ErrAlreadyExists when the ID is taken.
func (r *MemoryCatalogRepository) Create(_ context.Context, algo models.Algorithm) (*models.Algorithm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(algo.ID) >= 0 {
		return nil, fmt.Errorf("algorithm %q: %w", algo.ID, models.ErrAlreadyExists)
	}
	r.algorithms = append(r.algorithms, algo)
	return &algo, nil
}

// Update replaces the record stored under id without changing its position.
func (r *MemoryCatalogRepository) Update(_ context.Context, id string, algo models.Algorithm) (*models.Algorithm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	r.algorithms[i] = algo
	return &algo, nil
}

// Delete removes and returns the record stored under id.
func (r *MemoryCatalogRepository) Delete(_ context.Context, id string) (*models.Algorithm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("algorithm %q: %w", id, models.ErrNotFound)
	}
	deleted := r.algorithms[i]
	r.algorithms = append(r.algorithms[:i], r.algorithms[i+1:]...)
	return &deleted, nil
}

// indexOf must be called with mu held.
func (r *MemoryCatalogRepository) indexOf(id string) int {
	for i := range r.algorithms {
		if r.algorithms[i].ID == id {
			return i
		}
	}
	return -1
}
