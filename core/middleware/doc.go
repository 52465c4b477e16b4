// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every endpoint.
//   - rayid: a unique request id (RayID) per request, stored in the fiber
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// rayid must be registered first so every log line of a request carries the id.
package middleware
