// package models defines the data model for the lyrics relay
package models

import (
	"fmt"
)

// CatalogTrack is the subset of catalog metadata needed to search for lyrics.
type CatalogTrack struct {
	ID      string
	Name    string
	Artists []string // Ordered as returned by the catalog; the first is the primary artist
	Album   string
}

// PrimaryArtist returns the first artist name, or false if the track has none.
func (t CatalogTrack) PrimaryArtist() (string, bool) {
	if len(t.Artists) == 0 {
		return "", false
	}
	return t.Artists[0], true
}

// LyricsQuery holds the search parameters sent to the lyrics provider.
type LyricsQuery struct {
	TrackName  string
	ArtistName string
	AlbumName  string
}

// String renders the query for log output.
func (q LyricsQuery) String() string {
	return fmt.Sprintf("%s - %s (%s)", q.ArtistName, q.TrackName, q.AlbumName)
}

// LyricsRecord is a single lyrics candidate. JSON field names follow the lyrics provider's response.
type LyricsRecord struct {
	ID          int     `json:"id"`
	TrackName   string  `json:"trackName"`
	ArtistName  string  `json:"artistName"`
	AlbumName   string  `json:"albumName"`
	Duration    float64 `json:"duration"` // Duration in seconds
	PlainLyrics string  `json:"plainLyrics"`
}
