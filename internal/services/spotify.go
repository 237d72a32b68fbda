// Spotify Web API implementation of [CatalogService]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	"golang.org/x/oauth2"
)

const spotifyBaseURL = "https://api.spotify.com/v1"

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID         string          `json:"id"`
	Name       *string         `json:"name"`
	Artists    []SpotifyArtist `json:"artists"`
	Album      SpotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
	URI        string          `json:"uri"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type spotifyError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// SpotifyOpts configures a [SpotifyService].
type SpotifyOpts struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	HTTPClient  *http.Client // Base client; the bearer transport wraps its Transport
}

// SpotifyService implements [CatalogService] against the Spotify Web API.
//
// Requests carry a pre-issued bearer token through an [oauth2.StaticTokenSource]; the token is never refreshed.
type SpotifyService struct {
	baseURL    string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewSpotifyService creates a new Spotify catalog client.
func NewSpotifyService(opts SpotifyOpts) *SpotifyService {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	client := defaultClient(opts.HTTPClient)
	if opts.AccessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken, TokenType: "Bearer"})
		client = oauth2.NewClient(ctx, src)
	}

	return &SpotifyService{
		baseURL:    baseURL,
		token:      opts.AccessToken,
		timeout:    opts.Timeout,
		httpClient: client,
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs an authenticated GET against the Spotify API and decodes the JSON body into result.
func (s *SpotifyService) doRequest(ctx context.Context, endpoint string, result any) error {
	if s.token == "" {
		return fmt.Errorf("%w: spotify access token is not configured", shared.ErrMissingCredentials)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return transportError("spotify", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp spotifyError
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return shared.NewAPIError("spotify", resp.StatusCode, errResp.Error.Message)
		}
		return shared.NewAPIError("spotify", resp.StatusCode, "")
	}

	return decodeBody(ctx, "spotify", resp.Body, result)
}

// Track retrieves a single track by ID. The ID is path-escaped, so any string is safe to pass.
func (s *SpotifyService) Track(ctx context.Context, trackID string) (*models.CatalogTrack, error) {
	if strings.TrimSpace(trackID) == "" {
		return nil, fmt.Errorf("%w: empty track ID", shared.ErrInvalidInput)
	}

	var track SpotifyTrack
	if err := s.doRequest(ctx, "/tracks/"+url.PathEscape(trackID), &track); err != nil {
		if apiErr, ok := shared.IsAPIError(err); ok && apiErr.NotFound() {
			return nil, fmt.Errorf("%w: %w", shared.ErrTrackNotFound, apiErr)
		}
		return nil, err
	}

	if track.Name == nil || track.Album.Name == nil {
		return nil, fmt.Errorf("%w: spotify: track %s is missing name or album.name", shared.ErrDecode, trackID)
	}

	if len(track.Artists) == 0 {
		return nil, fmt.Errorf("%w: track %s", shared.ErrNoArtists, trackID)
	}

	artists := make([]string, len(track.Artists))
	for i, a := range track.Artists {
		artists[i] = a.Name
	}

	id := track.ID
	if id == "" {
		id = trackID
	}

	return &models.CatalogTrack{
		ID:      id,
		Name:    *track.Name,
		Artists: artists,
		Album:   *track.Album.Name,
	}, nil
}
