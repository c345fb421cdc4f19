// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, CORS, timeouts, rate limiting, tracing
// and panic recovery, and the global error handler that writes every
// failed response.
package middleware
