// Package tasks composes the catalog and lyrics services into a single lookup.
//
// # Lookup
//
// [RelayEngine.Lookup] runs the two provider calls strictly in order:
//
//  1. [services.CatalogService.Track] resolves the track identifier
//  2. the first artist, track name and album name form a [models.LyricsQuery]
//  3. [services.LyricsService.Search] returns the candidates
//
// The lyrics provider is never called when the catalog call fails or the track has no artists.
// No partial results are returned.
//
// # Progress Reporting
//
// Lookups accept an optional channel for [ProgressUpdate] values.
// Updates use select with default so a slow reader never blocks a lookup.
package tasks
