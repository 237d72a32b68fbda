package tasks

import (
	"fmt"

	"github.com/desertthunder/lyrx/internal/models"
)

// ProgressUpdate represents a progress event during a lookup.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number
	Total   int    // Total steps in the lookup
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchTrack Phase = iota
	SearchLyrics
	Complete
)

const lookupSteps = 2

func (p Phase) String() string {
	switch p {
	case FetchTrack:
		return "fetch_track"
	case SearchLyrics:
		return "search_lyrics"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func fetchTrackUpdate(trackID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTrack,
		Step:    1,
		Total:   lookupSteps,
		Message: fmt.Sprintf("Fetching track %s from catalog...", trackID),
	}
}

func searchLyricsUpdate(q models.LyricsQuery) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchLyrics,
		Step:    2,
		Total:   lookupSteps,
		Message: fmt.Sprintf("Searching lyrics for %s...", q),
	}
}

func completeUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    lookupSteps,
		Total:   lookupSteps,
		Message: fmt.Sprintf("Found %d lyrics candidates", count),
	}
}
