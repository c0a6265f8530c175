// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the sync endpoints.
//   - requestid: tags every request with an id, injected into the context and
//     response headers for log correlation.
package middleware
