// package tasks implements the catalog → lyrics lookup shared by the HTTP handler and the CLI.
package tasks

import (
	"context"
	"fmt"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
)

// LookupResult contains everything produced by one lookup.
type LookupResult struct {
	Track   *models.CatalogTrack  // Catalog metadata for the requested ID
	Query   models.LyricsQuery    // Parameters sent to the lyrics provider
	Records []models.LyricsRecord // Lyrics candidates, never nil
}

// Engine resolves a track identifier to lyrics candidates.
type Engine interface {
	Lookup(ctx context.Context, trackID string, progress chan<- ProgressUpdate) (*LookupResult, error)
}

// RelayEngine implements [Engine] with a catalog and a lyrics service.
type RelayEngine struct {
	catalog services.CatalogService
	lyrics  services.LyricsService
}

// NewRelayEngine creates a new RelayEngine with the provided services.
func NewRelayEngine(catalog services.CatalogService, lyrics services.LyricsService) *RelayEngine {
	return &RelayEngine{catalog: catalog, lyrics: lyrics}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *RelayEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// QueryFor derives the lyrics search parameters from catalog metadata.
func QueryFor(track *models.CatalogTrack) (models.LyricsQuery, error) {
	if track == nil {
		return models.LyricsQuery{}, fmt.Errorf("%w: empty catalog response", shared.ErrDecode)
	}
	artist, ok := track.PrimaryArtist()
	if !ok {
		return models.LyricsQuery{}, fmt.Errorf("%w: track %s", shared.ErrNoArtists, track.ID)
	}
	return models.LyricsQuery{
		TrackName:  track.Name,
		ArtistName: artist,
		AlbumName:  track.Album,
	}, nil
}

// Lookup fetches the track from the catalog, then searches lyrics with its first artist.
func (e *RelayEngine) Lookup(ctx context.Context, trackID string, progress chan<- ProgressUpdate) (*LookupResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}
	if e.lyrics == nil {
		return nil, fmt.Errorf("%w: lyrics service not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, fetchTrackUpdate(trackID))

	track, err := e.catalog.Track(ctx, trackID)
	if err != nil {
		return nil, fmt.Errorf("%s lookup failed: %w", e.catalog.Name(), err)
	}

	query, err := QueryFor(track)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, searchLyricsUpdate(query))

	records, err := e.lyrics.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s search failed: %w", e.lyrics.Name(), err)
	}
	if records == nil {
		records = []models.LyricsRecord{}
	}

	e.sendProgress(progress, completeUpdate(len(records)))

	return &LookupResult{Track: track, Query: query, Records: records}, nil
}
