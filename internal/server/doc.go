// Package server exposes the lyrics relay over HTTP.
//
// # Router
//
// The [Router] interface defines HTTP routing with middleware support.
// [BasicRouter] uses [http.ServeMux] internally, so routes may carry wildcards such as /track/{id}.
//
// [Middleware] wraps handlers in reverse order (last added executes first). Method filtering runs inside the
// middleware chain, which lets [CORS] answer preflight requests before a 405 is produced.
//
// # Middleware
//
// [Server] installs, outermost first: [Recover], [RequestID], [Logging], [CORS] and [RateLimit].
// [RequestID] stores a child logger in the request context; handlers read it with [LoggerFrom].
//
// # Track Handler
//
// [TrackHandler] serves GET /track/{id}. It runs one lookup through a [tasks.Engine] and writes the lyrics
// candidates as a JSON array. Errors are written as [ErrorResponse] with the status chosen by [StatusFor].
//
// # Lifecycle
//
// [Server.Serve] runs until its context is cancelled and then drains in-flight requests.
package server
