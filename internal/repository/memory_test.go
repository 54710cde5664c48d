package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/criptopedia/internal/models"
)

func ids(algorithms []models.Algorithm) []string {
	out := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		out = append(out, a.ID)
	}
	return out
}

func TestMemoryCatalog_SeedOrder(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cesar", "vigenere", "base64", "rsa"}, ids(list))
}

func TestMemoryCatalog_Get(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())
	ctx := context.Background()

	got, err := repo.Get(ctx, "cesar")
	require.NoError(t, err)
	assert.Equal(t, "Cifrado César", got.Name)

	_, err = repo.Get(ctx, "doesnotexist")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMemoryCatalog_CreateThenDelete(t *testing.T) {
	repo := NewMemoryCatalogRepository(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Algorithm{ID: "a", Name: "A"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Algorithm{ID: "b", Name: "B"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(list))

	deleted, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", deleted.Name)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(list))
}

func TestMemoryCatalog_CreateDuplicateLeavesStoreUnchanged(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Algorithm{ID: "cesar", Name: "Otro"})
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedAlgorithms(), list)
}

func TestMemoryCatalog_MissingIDLeavesStoreUnchanged(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())
	ctx := context.Background()

	_, err := repo.Update(ctx, "nope", models.Algorithm{ID: "nope"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repo.Delete(ctx, "nope")
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedAlgorithms(), list)
}

func TestMemoryCatalog_UpdateInPlace(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())
	ctx := context.Background()

	updated := models.Algorithm{ID: "vigenere", Name: "Vigenère", Difficulty: "Avanzado"}
	got, err := repo.Update(ctx, "vigenere", updated)
	require.NoError(t, err)
	assert.Equal(t, updated, *got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cesar", "vigenere", "base64", "rsa"}, ids(list))
	assert.Equal(t, "Vigenère", list[1].Name)
}

func TestMemoryCatalog_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryCatalogRepository(models.SeedAlgorithms())
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "mutated"

	got, err := repo.Get(ctx, "cesar")
	require.NoError(t, err)
	assert.Equal(t, "Cifrado César", got.Name)
}

func TestMemoryCatalog_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryCatalogRepository(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Create(ctx, models.Algorithm{ID: fmt.Sprintf("algo-%d", i)})
		}(i)
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
