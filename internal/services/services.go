// package services defines the provider interfaces used by the relay and implements them over HTTP
//
// Spotify (catalog), LRCLIB (lyrics)
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
)

// CatalogService resolves an opaque track identifier to catalog metadata.
type CatalogService interface {
	// Track retrieves a single track by ID.
	// Returns an error wrapping [shared.ErrNoArtists] when the catalog lists no artists.
	Track(ctx context.Context, trackID string) (*models.CatalogTrack, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}

// LyricsService searches lyrics by track, artist and album name.
type LyricsService interface {
	// Search returns up to the configured limit of candidates. An empty result is not an error.
	Search(ctx context.Context, query models.LyricsQuery) ([]models.LyricsRecord, error)

	// Name returns the name of the service (e.g., "LRCLIB")
	Name() string
}

// queryParam is one key/value pair of an ordered query string.
type queryParam struct {
	key   string
	value string
}

// encodeQuery percent-encodes params in the given order.
//
// [url.Values.Encode] sorts keys, which would reorder the lyrics search parameters.
func encodeQuery(params ...queryParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// withTimeout bounds ctx by d when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// transportError classifies a failed round trip as a timeout or an unreachable upstream.
func transportError(service string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s request: %v", shared.ErrTimeout, service, err)
	}
	return fmt.Errorf("%w: %s request failed: %v", shared.ErrServiceUnavailable, service, err)
}

// decodeBody decodes exactly one JSON value from r into v. Trailing non-whitespace data is a decode error.
func decodeBody(ctx context.Context, service string, r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	err := dec.Decode(v)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errors.New("unexpected data after JSON value")
		}
	}
	if err == nil {
		return nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return transportError(service, ctx.Err())
	}
	return fmt.Errorf("%w: %s: %v", shared.ErrDecode, service, err)
}

func defaultClient(c *http.Client) *http.Client {
	if c == nil {
		return http.DefaultClient
	}
	return c
}
