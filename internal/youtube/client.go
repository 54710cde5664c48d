// Package youtube searches explanatory videos through the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/atinyakov/criptopedia/internal/models"
)

const (
	// DefaultEndpoint is the public YouTube Data API base URL.
	DefaultEndpoint = "https://youtube.googleapis.com/"
	// DefaultTimeout bounds a single search call.
	DefaultTimeout = 10 * time.Second
	// MaxResultsPerQuery is the result cap sent with every search.
	MaxResultsPerQuery = 2

	relevanceLanguage = "es"
	safeSearch        = "strict"
	videoDuration     = "medium"
)

// Config configures a Client.
type Config struct {
	// APIKey is the YouTube Data API key. Empty disables searching.
	APIKey string
	// Endpoint overrides DefaultEndpoint.
	Endpoint string
	// Timeout overrides DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client
	// RateLimit configures the local quota guard.
	RateLimit RateLimitConfig
}

// Client runs video searches against the YouTube Data API.
type Client struct {
	search  *ytapi.SearchService
	apiKey  string
	timeout time.Duration
	limiter *RateLimiter
}

// NewClient builds a Client from cfg.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	svc, err := ytapi.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		search:  svc.Search,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		timeout: cfg.Timeout,
		limiter: NewRateLimiter(cfg.RateLimit),
	}, nil
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Search issues one provider query and maps its items to videos.
// Every failure is returned as an error wrapping one of the package
// sentinels, a network error, or a context error.
func (c *Client) Search(ctx context.Context, query string) ([]models.VideoResult, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(MaxResultsPerQuery).
		RelevanceLanguage(relevanceLanguage).
		SafeSearch(safeSearch).
		VideoDuration(videoDuration).
		Context(ctx).
		Do(googleapi.QueryParameter("key", c.apiKey))
	if err != nil {
		err = classify(err)
		if IsRateLimited(err) {
			c.limiter.RecordRateLimitError()
		}
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return toVideoResults(query, resp.Items)
}

func classify(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return WrapError(err)
}

// toVideoResults fails the whole query if any item lacks a required field.
func toVideoResults(query string, items []*ytapi.SearchResult) ([]models.VideoResult, error) {
	videos := make([]models.VideoResult, 0, len(items))
	for i, item := range items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" ||
			item.Snippet == nil || item.Snippet.Thumbnails == nil || item.Snippet.Thumbnails.Medium == nil {
			return nil, fmt.Errorf("search %q: item %d: %w", query, i, ErrMalformedResponse)
		}
		videos = append(videos, models.VideoResult{
			Title:      item.Snippet.Title,
			VideoID:    item.Id.VideoId,
			Channel:    item.Snippet.ChannelTitle,
			Thumbnail:  item.Snippet.Thumbnails.Medium.Url,
			SearchTerm: query,
			APIReal:    true,
		})
	}
	return videos, nil
}
