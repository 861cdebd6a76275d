// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - NewCORS / WithCORS: Adds CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - PprofRouter: Returns a router exposing net/http/pprof handlers.
//   - RequestID: Reads the request ID set by WithLogger.
package controller
