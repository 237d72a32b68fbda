// package formatter renders lookup results as plain text or Markdown
package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/models"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Normalize resolves a format name or alias to [FormatText] or [FormatMarkdown].
func Normalize(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText, "txt":
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q (use text or markdown)", shared.ErrInvalidInput, format)
	}
}

// Render converts a lookup result to the named format.
func Render(format string, result *tasks.LookupResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: empty lookup result", shared.ErrInvalidInput)
	}

	f, err := Normalize(format)
	if err != nil {
		return nil, err
	}
	if f == FormatMarkdown {
		return ToMarkdown(result), nil
	}
	return ToText(result), nil
}

// ToText lists each candidate with its lyrics indented beneath it.
func ToText(result *tasks.LookupResult) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Query: %s\n", result.Query.String()))
	buf.WriteString(fmt.Sprintf("Results: %d\n", len(result.Records)))

	for i, rec := range result.Records {
		buf.WriteString(fmt.Sprintf("\n%d. %s [%s] (id %d)\n", i+1, recordTitle(rec), FormatDuration(rec.Duration), rec.ID))

		if rec.PlainLyrics == "" {
			buf.WriteString("   (no plain lyrics)\n")
			continue
		}
		for line := range strings.SplitSeq(strings.TrimRight(rec.PlainLyrics, "\n"), "\n") {
			buf.WriteString("   " + line + "\n")
		}
	}

	return buf.Bytes()
}

// ToMarkdown renders one section per candidate with the lyrics in a quote block.
func ToMarkdown(result *tasks.LookupResult) []byte {
	var buf bytes.Buffer

	title := result.Query.TrackName
	if result.Track != nil && result.Track.Name != "" {
		title = result.Track.Name
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Artist**: %s\n", result.Query.ArtistName))
	if result.Query.AlbumName != "" {
		buf.WriteString(fmt.Sprintf("**Album**: %s\n", result.Query.AlbumName))
	}
	buf.WriteString(fmt.Sprintf("**Results**: %d\n", len(result.Records)))

	for i, rec := range result.Records {
		buf.WriteString(fmt.Sprintf("\n## %d. %s\n\n", i+1, recordTitle(rec)))
		buf.WriteString(fmt.Sprintf("- LRCLIB ID: %d\n", rec.ID))
		buf.WriteString(fmt.Sprintf("- Duration: %s\n\n", FormatDuration(rec.Duration)))

		if rec.PlainLyrics == "" {
			buf.WriteString("_No plain lyrics._\n")
			continue
		}
		for line := range strings.SplitSeq(strings.TrimRight(rec.PlainLyrics, "\n"), "\n") {
			if line == "" {
				buf.WriteString(">\n")
				continue
			}
			buf.WriteString("> " + line + "\n")
		}
	}

	return buf.Bytes()
}

// FormatDuration formats seconds as m:ss, rounding to the nearest second.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "0:00"
	}
	total := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func recordTitle(rec models.LyricsRecord) string {
	title := fmt.Sprintf("%s - %s", rec.ArtistName, rec.TrackName)
	if rec.AlbumName != "" {
		title += fmt.Sprintf(" (%s)", rec.AlbumName)
	}
	return title
}
