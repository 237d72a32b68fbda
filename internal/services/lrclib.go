// LRCLIB implementation of [LyricsService]
//
// API reference: https://lrclib.net/docs
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

const (
	lrclibBaseURL      = "https://lrclib.net/api"
	DefaultLyricsLimit = 5
)

// LRCLibOpts configures a [LRCLibService].
type LRCLibOpts struct {
	BaseURL    string
	UserAgent  string
	Limit      int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// LRCLibService implements [LyricsService] against the public LRCLIB search endpoint.
// No authentication is required.
type LRCLibService struct {
	baseURL    string
	userAgent  string
	limit      int
	timeout    time.Duration
	httpClient *http.Client
}

// NewLRCLibService creates a new LRCLIB client.
func NewLRCLibService(opts LRCLibOpts) *LRCLibService {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = lrclibBaseURL
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLyricsLimit
	}

	return &LRCLibService{
		baseURL:    baseURL,
		userAgent:  opts.UserAgent,
		limit:      limit,
		timeout:    opts.Timeout,
		httpClient: defaultClient(opts.HTTPClient),
	}
}

// Name returns the service name.
func (l *LRCLibService) Name() string {
	return "LRCLIB"
}

// SearchURL builds the search URL for q. Parameters are percent-encoded and kept in
// track_name, artist_name, album_name, limit order.
func (l *LRCLibService) SearchURL(q models.LyricsQuery) string {
	return l.baseURL + "/search?" + encodeQuery(
		queryParam{"track_name", q.TrackName},
		queryParam{"artist_name", q.ArtistName},
		queryParam{"album_name", q.AlbumName},
		queryParam{"limit", strconv.Itoa(l.limit)},
	)
}

// Search calls GET /search and returns at most the configured limit of records.
func (l *LRCLibService) Search(ctx context.Context, q models.LyricsQuery) ([]models.LyricsRecord, error) {
	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.SearchURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, transportError("lrclib", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return nil, shared.NewAPIError("lrclib", resp.StatusCode, errResp.Message)
		}
		return nil, shared.NewAPIError("lrclib", resp.StatusCode, "")
	}

	var records []models.LyricsRecord
	if err := decodeBody(ctx, "lrclib", resp.Body, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.LyricsRecord{}
	}
	if len(records) > l.limit {
		records = records[:l.limit]
	}

	return records, nil
}
