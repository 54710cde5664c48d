package service

import (
	"context"

	"github.com/atinyakov/criptopedia/internal/models"
	"go.uber.org/zap"
)

const (
	// MaxSearchAttempts caps how many query terms are sent to the provider per request.
	MaxSearchAttempts = 2
	// MaxVideoResults caps the number of videos returned per request.
	MaxVideoResults = 3

	fallbackVideoID   = "sMOZf4GN3oc"
	fallbackChannel   = "Criptopedia Universal"
	fallbackThumbnail = "https://i.ytimg.com/vi/sMOZf4GN3oc/mqdefault.jpg"
)

// VideoSearcher runs a single provider query.
type VideoSearcher interface {
	// Search returns the videos found for query. A non-nil error means the
	// provider call failed and no videos are available for that query.
	Search(ctx context.Context, query string) ([]models.VideoResult, error)
}

// VideoService picks explanatory videos for an algorithm, bounding the
// number of provider calls and falling back to a static video.
type VideoService struct {
	searcher VideoSearcher
	log      *zap.Logger
}

// NewVideoService constructs a VideoService. A nil logger disables logging.
func NewVideoService(searcher VideoSearcher, log *zap.Logger) *VideoService {
	if log == nil {
		log = zap.NewNop()
	}
	return &VideoService{searcher: searcher, log: log}
}

// FindVideos returns between one and MaxVideoResults videos for the algorithm.
// Terms are tried in order until MaxSearchAttempts calls were made or enough
// results were collected. Failed calls count as empty results.
func (s *VideoService) FindVideos(ctx context.Context, id, name string) []models.VideoResult {
	var found []models.VideoResult

	for attempt, term := range QueryTerms(id, name) {
		if attempt >= MaxSearchAttempts || len(found) >= MaxVideoResults {
			break
		}
		videos, err := s.searcher.Search(ctx, term)
		if err != nil {
			s.log.Warn("video search failed",
				zap.String("algorithm", id),
				zap.String("term", term),
				zap.Error(err),
			)
			continue
		}
		found = append(found, videos...)
	}

	if len(found) == 0 {
		s.log.Info("using fallback video", zap.String("algorithm", id))
		return []models.VideoResult{fallbackVideo(name)}
	}
	if len(found) > MaxVideoResults {
		found = found[:MaxVideoResults]
	}
	return found
}

func fallbackVideo(name string) models.VideoResult {
	return models.VideoResult{
		Title:      "Introducción a " + name + " - Criptografía",
		VideoID:    fallbackVideoID,
		Channel:    fallbackChannel,
		Thumbnail:  fallbackThumbnail,
		SearchTerm: name,
		Fallback:   true,
	}
}
