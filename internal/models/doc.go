// Package models defines the request-scoped value types passed between the lyrx relay components.
//
//   - [CatalogTrack] : track, artist and album names decoded from the catalog provider
//   - [LyricsQuery] : the three names used to search the lyrics provider
//   - [LyricsRecord] : one lyrics candidate returned by the lyrics provider
//
// None of these types are persisted or mutated after creation; each request builds a fresh set.
package models
