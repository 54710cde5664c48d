package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atinyakov/criptopedia/internal/models"
	"github.com/atinyakov/criptopedia/internal/service"
)

// fakeSearcher returns results[i] for the i-th call and records the queries.
type fakeSearcher struct {
	results [][]models.VideoResult
	errs    []error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]models.VideoResult, error) {
	i := len(f.queries)
	f.queries = append(f.queries, query)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return nil, nil
}

func videos(prefix string, n int) []models.VideoResult {
	out := make([]models.VideoResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.VideoResult{VideoID: fmt.Sprintf("%s-%d", prefix, i), APIReal: true})
	}
	return out
}

func TestFindVideos_AllFailuresYieldFallback(t *testing.T) {
	searcher := &fakeSearcher{errs: []error{errors.New("timeout"), errors.New("403")}}
	svc := service.NewVideoService(searcher, zap.NewNop())

	got := svc.FindVideos(context.Background(), "cesar", "Cifrado César")

	require.Len(t, got, 1)
	assert.True(t, got[0].Fallback)
	assert.False(t, got[0].APIReal)
	assert.Equal(t, "Introducción a Cifrado César - Criptografía", got[0].Title)
	assert.Equal(t, "sMOZf4GN3oc", got[0].VideoID)
	assert.Equal(t, "Criptopedia Universal", got[0].Channel)
	assert.Equal(t, "https://i.ytimg.com/vi/sMOZf4GN3oc/mqdefault.jpg", got[0].Thumbnail)
	assert.Equal(t, "Cifrado César", got[0].SearchTerm)
	assert.Len(t, searcher.queries, service.MaxSearchAttempts)
}

func TestFindVideos_EmptyResultsYieldFallback(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := service.NewVideoService(searcher, nil)

	got := svc.FindVideos(context.Background(), "enigma", "Máquina Enigma")

	require.Len(t, got, 1)
	assert.True(t, got[0].Fallback)
	assert.Len(t, searcher.queries, 2)
}

func TestFindVideos_EarlyStopAfterThreeResults(t *testing.T) {
	searcher := &fakeSearcher{results: [][]models.VideoResult{videos("a", 3), videos("b", 2)}}
	svc := service.NewVideoService(searcher, zap.NewNop())

	got := svc.FindVideos(context.Background(), "rsa", "Algoritmo RSA")

	assert.Len(t, got, 3)
	assert.Equal(t, []string{"algoritmo rsa criptografía asimétrica explicación"}, searcher.queries)
}

func TestFindVideos_AtMostTwoCallsAndTruncated(t *testing.T) {
	searcher := &fakeSearcher{results: [][]models.VideoResult{videos("a", 2), videos("b", 2), videos("c", 2)}}
	svc := service.NewVideoService(searcher, zap.NewNop())

	got := svc.FindVideos(context.Background(), "base64", "Codificación Base64")

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a-0", "a-1", "b-0"}, []string{got[0].VideoID, got[1].VideoID, got[2].VideoID})
	assert.Len(t, searcher.queries, 2)
}

func TestFindVideos_PartialFailureKeepsOtherResults(t *testing.T) {
	searcher := &fakeSearcher{
		errs:    []error{errors.New("network down")},
		results: [][]models.VideoResult{nil, videos("b", 1)},
	}
	core, logs := observer.New(zap.WarnLevel)
	svc := service.NewVideoService(searcher, zap.New(core))

	got := svc.FindVideos(context.Background(), "vigenere", "Cifrado Vigenère")

	require.Len(t, got, 1)
	assert.True(t, got[0].APIReal)
	assert.Equal(t, "b-0", got[0].VideoID)
	assert.Equal(t, 1, logs.FilterMessage("video search failed").Len())
}

func TestFindVideos_NoDeduplication(t *testing.T) {
	dup := []models.VideoResult{{VideoID: "same", APIReal: true}}
	searcher := &fakeSearcher{results: [][]models.VideoResult{dup, dup}}
	svc := service.NewVideoService(searcher, zap.NewNop())

	got := svc.FindVideos(context.Background(), "cesar", "Cifrado César")

	require.Len(t, got, 2)
	assert.Equal(t, "same", got[0].VideoID)
	assert.Equal(t, "same", got[1].VideoID)
}

func TestQueryTerms(t *testing.T) {
	known := service.QueryTerms("cesar", "ignored")
	assert.Equal(t, []string{
		"cifrado cesar explicación completa español",
		"algoritmo cesar criptografía clásica tutorial",
		"cifrado por desplazamiento julio cesar",
	}, known)

	generic := service.QueryTerms("atbash", "Cifrado Atbash")
	assert.Equal(t, []string{
		"Cifrado Atbash cifrado explicación completa español",
		"algoritmo Cifrado Atbash criptografía tutorial",
		"como funciona Cifrado Atbash encryption",
	}, generic)

	for _, id := range []string{"cesar", "vigenere", "base64", "rsa", "other"} {
		assert.Len(t, service.QueryTerms(id, "X"), 3, id)
	}
}

func TestQueryTerms_ReturnsFreshSlice(t *testing.T) {
	first := service.QueryTerms("rsa", "Algoritmo RSA")
	first[0] = "mutated"

	second := service.QueryTerms("rsa", "Algoritmo RSA")
	assert.Equal(t, "algoritmo rsa criptografía asimétrica explicación", second[0])
}
