// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP server shared by the holiday API.
//
// The server owns everything that is not domain specific: listening,
// graceful shutdown, liveness and readiness probes, Prometheus metrics
// and a fixed middleware chain. Domain packages contribute handlers keyed
// by ServeMux pattern.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("ferienapi"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /api/v1/years": svc.HandleYears,
//	    }),
//	    server.WithReadinessCheck(st.IsHealthy),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # System Endpoints
//
//	GET /         service name, version and the list of routes
//	GET /health   liveness, always 200 {"status": "healthy"}
//	GET /ready    readiness, 200 when serving and the readiness check passes, else 503
//	GET /metrics  Prometheus exposition
//
// # Middleware
//
// Every registered handler runs behind, outermost first:
//
//	metrics -> API version -> request id -> panic recovery -> logging
//
// Request IDs are taken from a valid UUID in X-Request-Id or generated,
// echoed in the response header and included in every error body. The API
// version is negotiated from an Accept header such as
// application/vnd.ferien.v1+json and returned in X-API-Version.
//
// # Error Handling
//
// All errors share one JSON shape:
//
//	{
//	  "code": "INVALID_STATE",
//	  "message": "invalid state code",
//	  "details": {"invalid": ["XX"], "allowed": ["BW", "BY", ...]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-06-01T12:00:00Z",
//	  "retryable": false
//	}
//
// Validation codes map to 400, NOT_FOUND to 404, DATA_UNAVAILABLE to 503
// (404 when the underlying data does not exist) and everything else to 500.
//
// # Configuration
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
package server
