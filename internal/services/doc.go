// Package services defines the [CatalogService] and [LyricsService] interfaces and implements them for Spotify and LRCLIB.
//
// # Catalog (Spotify)
//
// [SpotifyService] performs one authenticated GET to /tracks/{id} per lookup.
//
// The bearer token is attached by an [oauth2.Transport] built from a static token source.
// Tokens are pre-issued and never refreshed; an expired token surfaces as a 401 [shared.APIError].
//
// # Lyrics (LRCLIB)
//
// [LRCLibService] performs one unauthenticated GET to /search with track_name, artist_name,
// album_name and limit query parameters. Results beyond the limit are dropped.
//
// # Error Handling
//
// Both clients return errors from the shared package:
//   - [shared.ErrMissingCredentials] : no access token configured (no request is made)
//   - [shared.ErrServiceUnavailable] : connection failure
//   - [shared.ErrTimeout] : the per-call timeout elapsed
//   - [shared.APIError] : non-2xx response, matches [shared.ErrAPIRequest]
//   - [shared.ErrDecode] : body did not match the expected JSON shape
//   - [shared.ErrNoArtists] : the catalog returned a track without artists
package services
