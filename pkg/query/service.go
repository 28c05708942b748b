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
	"log/slog"
	"time"

	"github.com/ferien-api/schulferien/pkg/defaults"
	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/holiday"
	"github.com/ferien-api/schulferien/pkg/publicholiday"
	"github.com/ferien-api/schulferien/pkg/stats"
)

// Records is the record store a Service queries.
type Records interface {
	AvailableYears() []int
	LoadYear(ctx context.Context, year int) ([]holiday.Holiday, error)
	AllRecords(ctx context.Context) ([]holiday.Holiday, error)
}

// Service runs the holiday queries against a record store.
type Service struct {
	records     Records
	calendar    *publicholiday.Calendar
	now         func() time.Time
	cacheMaxAge time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source of the current and next queries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCacheMaxAge sets the Cache-Control max-age of successful responses.
func WithCacheMaxAge(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.cacheMaxAge = d
		}
	}
}

// NewService creates a Service over records.
func NewService(records Records, opts ...Option) *Service {
	s := &Service{
		records:     records,
		calendar:    publicholiday.NewCalendar(),
		now:         time.Now,
		cacheMaxAge: defaults.CacheMaxAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run loads the base set of pl and applies it.
func (s *Service) run(ctx context.Context, pl Pipeline, c *Criteria) (Result, error) {
	var (
		base []holiday.Holiday
		err  error
	)
	switch pl.Source {
	case SourceYear:
		base, err = s.records.LoadYear(ctx, c.Year)
	default:
		base, err = s.records.AllRecords(ctx)
	}
	if err != nil {
		return Result{}, err
	}

	out := pl.Run(base, c, s.now().UTC())
	queryResultSize.WithLabelValues(pl.Name).Observe(float64(len(out)))

	slog.Debug("query executed",
		"query", pl.Name,
		"steps", pl.StepNames(),
		"base", len(base),
		"results", len(out),
	)

	return NewResult(out, c.Fields), nil
}

// ByYear returns the holidays of a year, filtered by from, to, type and
// states. An empty result is NOT_FOUND.
func (s *Service) ByYear(ctx context.Context, p Params) (Result, error) {
	c, err := p.criteria(paramYear, paramDateRange, paramType, paramStates, paramFields)
	if err != nil {
		return Result{}, err
	}
	res, err := s.run(ctx, ByYearPipeline, c)
	if err != nil {
		return Result{}, err
	}
	if res.Len() == 0 {
		return Result{}, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
			fmt.Sprintf("no holidays found for year %d", c.Year),
			map[string]any{"year": c.Year})
	}
	return res, nil
}

// ByYearState returns the holidays of one state in a year, filtered by from,
// to and type. The state is matched exactly; an unknown code is NOT_FOUND.
func (s *Service) ByYearState(ctx context.Context, p Params) (Result, error) {
	c, err := p.criteria(paramYear, paramState, paramDateRange, paramType, paramFields)
	if err != nil {
		return Result{}, err
	}
	res, err := s.run(ctx, ByYearStatePipeline, c)
	if err != nil {
		return Result{}, err
	}
	if res.Len() == 0 {
		return Result{}, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
			fmt.Sprintf("no holidays found for state %s in year %d", c.State, c.Year),
			map[string]any{"year": c.Year, "stateCode": c.State})
	}
	return res, nil
}

// Current returns the holidays active now.
func (s *Service) Current(ctx context.Context, p Params) (Result, error) {
	c, err := p.criteria(paramStates, paramFields)
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, CurrentPipeline, c)
}

// Next returns the holidays starting within the next days days, by start.
func (s *Service) Next(ctx context.Context, p Params) (Result, error) {
	c, err := p.criteria(paramDays, paramStates, paramFields)
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, NextPipeline, c)
}

// OnDate reports the holidays active on a date.
func (s *Service) OnDate(ctx context.Context, p Params) (DateResult, error) {
	c, err := p.criteria(paramDate, paramStates, paramFields)
	if err != nil {
		return DateResult{}, err
	}
	res, err := s.run(ctx, OnDatePipeline, c)
	if err != nil {
		return DateResult{}, err
	}
	return DateResult{
		Date:      c.DateText,
		IsHoliday: res.Len() > 0,
		Holidays:  res,
	}, nil
}

// Search returns the holidays whose name, slug or state code contain q,
// optionally restricted to a year, sorted by year and start.
func (s *Service) Search(ctx context.Context, p Params) (SearchResult, error) {
	c, err := p.criteria(paramOptionalYear, paramQuery, paramStates, paramFields)
	if err != nil {
		return SearchResult{}, err
	}
	res, err := s.run(ctx, SearchPipeline, c)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		Query:    c.Query,
		Results:  res.Len(),
		Holidays: res,
	}, nil
}

// Stats computes the statistics of a year.
func (s *Service) Stats(ctx context.Context, p Params) (stats.Statistics, error) {
	c, err := p.criteria(paramYear)
	if err != nil {
		return stats.Statistics{}, err
	}
	records, err := s.records.LoadYear(ctx, c.Year)
	if err != nil {
		return stats.Statistics{}, err
	}
	return stats.Compute(c.Year, records), nil
}

// Compare compares the holidays of two years.
func (s *Service) Compare(ctx context.Context, p Params) (stats.Comparison, error) {
	c, err := p.criteria(paramYearPair)
	if err != nil {
		return stats.Comparison{}, err
	}
	a, err := s.records.LoadYear(ctx, c.YearA)
	if err != nil {
		return stats.Comparison{}, err
	}
	b, err := s.records.LoadYear(ctx, c.YearB)
	if err != nil {
		return stats.Comparison{}, err
	}
	return stats.Compare(c.YearA, a, c.YearB, b), nil
}

// Years lists the years with holiday data.
func (s *Service) Years(_ context.Context) YearsResult {
	years := s.records.AvailableYears()
	if years == nil {
		years = []int{}
	}
	return YearsResult{Years: years}
}

// PublicHolidays lists the public holidays of a year, optionally for some
// states only.
func (s *Service) PublicHolidays(_ context.Context, p Params) (PublicHolidaysResult, error) {
	c, err := p.criteria(paramYear, paramStates)
	if err != nil {
		return PublicHolidaysResult{}, err
	}
	holidays := s.calendar.ForYear(c.Year, c.States)
	if holidays == nil {
		holidays = []publicholiday.PublicHoliday{}
	}
	return PublicHolidaysResult{Year: c.Year, Holidays: holidays}, nil
}
