// Package server provides HTTP routing, middleware, and the handlers of the track sharing service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] with method-qualified patterns, so a request with the
// wrong method gets a 405 without any handler code.
//
// # Handlers
//
//	GET  /api/tracks               filtered listing  {success, tracks, total}
//	POST /api/upload               multipart upload  {success, message, file}
//	GET  /uploads/{name}           stored audio files
//	GET  /api/health               {status: "ok"}
//	GET  /api/paint/ws             websocket paint session
//	GET  /api/paint/{id}/canvas.png
//
// Failures always answer with {error}. Validation sentinels from the services package map to 400 with
// the message clients expect; anything else is logged and reported as "Internal server error".
//
// # Paint Sessions
//
// [PaintSessions] keeps one paint controller per websocket connection. Clients send [PaintMessage] JSON
// frames and receive a [PaintReply] snapshot after each one. Messages for a session are applied under
// that session's lock, which keeps each controller single-threaded.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
