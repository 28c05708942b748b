// Package api provides the HTTP API layer of the school holiday service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// wiring the record store and the query service into it.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/ferien-api/schulferien/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Opening the record store over the embedded or an external data set
//   - Registering the query handlers with the server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (request ids, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application endpoints:
//   - GET /api/v1/holidays/{year}           holidays of a year (from, to, type, states, fields)
//   - GET /api/v1/holidays/{year}/{state}   holidays of one state (from, to, type, fields)
//   - GET /api/v1/holidays/current          holidays active now (states, fields)
//   - GET /api/v1/holidays/next/{days}      holidays starting within days (states, fields)
//   - GET /api/v1/holidays/date/{date}      holidays active on a date (states, fields)
//   - GET /api/v1/holidays/search?q=        free text search (year, states, fields)
//   - GET /api/v1/stats/{year}              statistics of a year
//   - GET /api/v1/compare/{yearA}/{yearB}   year over year comparison
//   - GET /api/v1/years                     years with data
//   - GET /api/v1/public-holidays/{year}    public holidays per state (states)
//
// System endpoints:
//   - GET /         - Service index
//   - GET /health   - Health check (liveness probe)
//   - GET /ready    - Readiness check
//   - GET /metrics  - Prometheus metrics
//
// Example:
//
//	curl "http://localhost:8080/api/v1/holidays/2025?states=BY,BE&type=sommerferien&fields=start,end,stateCode"
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - FERIEN_DATA_DIR: directory of {year}.json files (default: embedded data)
//   - FERIEN_CACHE_MAX_AGE_SECONDS: Cache-Control max-age (default: 3600)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ferien-api/schulferien/pkg/api.version=1.0.0'"
package api
