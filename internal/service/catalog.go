// Package service provides business logic for the algorithm catalog,
// admin authentication and explanatory video search, delegating
// persistence and provider access to interfaces.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/atinyakov/criptopedia/internal/models"
)

// CatalogRepository defines the persistence operations needed by the CatalogService.
type CatalogRepository interface {
	// List returns every algorithm in insertion order.
	List(ctx context.Context) ([]models.Algorithm, error)
	// Get returns the algorithm with the given ID or models.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Algorithm, error)
	// Create appends a new algorithm; a taken ID yields models.ErrAlreadyExists.
	Create(ctx context.Context, algo models.Algorithm) (*models.Algorithm, error)
	// Update replaces the algorithm stored under id; a missing ID yields models.ErrNotFound.
	Update(ctx context.Context, id string, algo models.Algorithm) (*models.Algorithm, error)
	// Delete removes and returns the algorithm stored under id.
	Delete(ctx context.Context, id string) (*models.Algorithm, error)
}

// CatalogService implements catalog administration on top of a CatalogRepository.
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService constructs a CatalogService with the provided repository.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]models.Algorithm, error) {
	return s.repo.List(ctx)
}

// Get returns a single algorithm by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Algorithm, error) {
	return s.repo.Get(ctx, id)
}

// Create validates algo and inserts it at the end of the catalog.
func (s *CatalogService) Create(ctx context.Context, algo models.Algorithm) (*models.Algorithm, error) {
	if err := validate(algo); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, algo)
}

// Update replaces the algorithm stored under id.
// An empty body ID adopts id; a different body ID is rejected with
// models.ErrIDMismatch so an update can never rename a record.
func (s *CatalogService) Update(ctx context.Context, id string, algo models.Algorithm) (*models.Algorithm, error) {
	if algo.ID == "" {
		algo.ID = id
	}
	if algo.ID != id {
		return nil, fmt.Errorf("body id %q, path id %q: %w", algo.ID, id, models.ErrIDMismatch)
	}
	if err := validate(algo); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, algo)
}

// Delete removes the algorithm stored under id and returns it.
func (s *CatalogService) Delete(ctx context.Context, id string) (*models.Algorithm, error) {
	return s.repo.Delete(ctx, id)
}

// ResolveName returns the display name for id, or id itself when the
// catalog has no such entry.
func (s *CatalogService) ResolveName(ctx context.Context, id string) string {
	algo, err := s.repo.Get(ctx, id)
	if err != nil {
		return id
	}
	return algo.Name
}

func validate(algo models.Algorithm) error {
	if strings.TrimSpace(algo.ID) == "" {
		return fmt.Errorf("id is required: %w", models.ErrInvalidInput)
	}
	if strings.TrimSpace(algo.Name) == "" {
		return fmt.Errorf("name is required: %w", models.ErrInvalidInput)
	}
	return nil
}
