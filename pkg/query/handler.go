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

package query

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ferien-api/schulferien/pkg/defaults"
	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/serializer"
	"github.com/ferien-api/schulferien/pkg/server"
)

// API route patterns.
const (
	RouteByYear         = "GET /api/v1/holidays/{year}"
	RouteByYearState    = "GET /api/v1/holidays/{year}/{state}"
	RouteCurrent        = "GET /api/v1/holidays/current"
	RouteNext           = "GET /api/v1/holidays/next/{days}"
	RouteOnDate         = "GET /api/v1/holidays/date/{date}"
	RouteSearch         = "GET /api/v1/holidays/search"
	RouteStats          = "GET /api/v1/stats/{year}"
	RouteCompare        = "GET /api/v1/compare/{yearA}/{yearB}"
	RouteYears          = "GET /api/v1/years"
	RoutePublicHolidays = "GET /api/v1/public-holidays/{year}"
)

// Routes returns the API handlers keyed by ServeMux pattern.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteByYear:         s.HandleByYear,
		RouteByYearState:    s.HandleByYearState,
		RouteCurrent:        s.HandleCurrent,
		RouteNext:           s.HandleNext,
		RouteOnDate:         s.HandleOnDate,
		RouteSearch:         s.HandleSearch,
		RouteStats:          s.HandleStats,
		RouteCompare:        s.HandleCompare,
		RouteYears:          s.HandleYears,
		RoutePublicHolidays: s.HandlePublicHolidays,
	}
}

// HandleByYear handles GET /api/v1/holidays/{year}.
func (s *Service) HandleByYear(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, ByYearPipeline.Name, s.ByYear)
}

// HandleByYearState handles GET /api/v1/holidays/{year}/{state}.
func (s *Service) HandleByYearState(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, ByYearStatePipeline.Name, s.ByYearState)
}

// HandleCurrent handles GET /api/v1/holidays/current.
func (s *Service) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, CurrentPipeline.Name, s.Current)
}

// HandleNext handles GET /api/v1/holidays/next/{days}.
func (s *Service) HandleNext(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, NextPipeline.Name, s.Next)
}

// HandleOnDate handles GET /api/v1/holidays/date/{date}.
func (s *Service) HandleOnDate(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, OnDatePipeline.Name, s.OnDate)
}

// HandleSearch handles GET /api/v1/holidays/search.
func (s *Service) HandleSearch(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, SearchPipeline.Name, s.Search)
}

// HandleStats handles GET /api/v1/stats/{year}.
func (s *Service) HandleStats(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, "stats", s.Stats)
}

// HandleCompare handles GET /api/v1/compare/{yearA}/{yearB}.
func (s *Service) HandleCompare(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, "compare", s.Compare)
}

// HandleYears handles GET /api/v1/years.
func (s *Service) HandleYears(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, "years", func(ctx context.Context, _ Params) (YearsResult, error) {
		return s.Years(ctx), nil
	})
}

// HandlePublicHolidays handles GET /api/v1/public-holidays/{year}.
func (s *Service) HandlePublicHolidays(w http.ResponseWriter, r *http.Request) {
	serve(s, w, r, "publicHolidays", s.PublicHolidays)
}

// serve runs op with the request parameters and writes its result, or the
// structured error it failed with.
func serve[T any](s *Service, w http.ResponseWriter, r *http.Request, name string,
	op func(context.Context, Params) (T, error)) {

	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), defaults.QueryHandlerTimeout)
	defer cancel()

	result, err := op(ctx, ParamsFromRequest(r))
	if err != nil {
		queryErrors.WithLabelValues(name, string(codeOrInternal(err))).Inc()
		server.WriteErrorFromErr(w, r, err, "Failed to query holidays", nil)
		return
	}

	// Set caching headers
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cacheMaxAge.Seconds())))

	serializer.RespondJSON(w, http.StatusOK, result)
}

func codeOrInternal(err error) cnserrors.ErrorCode {
	if code := cnserrors.CodeOf(err); code != "" {
		return code
	}
	return cnserrors.ErrCodeInternal
}
