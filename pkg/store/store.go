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

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"slices"
	"strconv"
	"sync"
	"time"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/holiday"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownYear is matched (errors.Is) by LoadYear errors for years
// without a backing data file. It wraps fs.ErrNotExist.
var ErrUnknownYear = fmt.Errorf("year not available: %w", fs.ErrNotExist)

var yearFilePattern = regexp.MustCompile(`^(\d{4})\.json$`)

// Store owns the year cache. It is safe for concurrent use.
type Store struct {
	provider DataProvider
	years    []int

	mu    sync.RWMutex
	cache map[int][]holiday.Holiday
	group singleflight.Group
}

// New creates a Store over provider and enumerates its years.
func New(provider DataProvider) (*Store, error) {
	if provider == nil {
		return nil, cnserrors.New(cnserrors.ErrCodeInternal, "data provider is required")
	}

	years, err := listYears(provider)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("failed to enumerate holiday data (%s)", provider.Source()), err)
	}

	slog.Debug("holiday store created", "source", provider.Source(), "years", years)

	return &Store{
		provider: provider,
		years:    years,
		cache:    make(map[int][]holiday.Holiday),
	}, nil
}

func listYears(provider DataProvider) ([]int, error) {
	var years []int
	err := provider.WalkDir(".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." {
				return fs.SkipDir
			}
			return nil
		}
		m := yearFilePattern.FindStringSubmatch(path.Base(p))
		if m == nil {
			slog.Debug("ignoring non-year data file", "path", p)
			return nil
		}
		year, convErr := strconv.Atoi(m[1])
		if convErr != nil || year < holiday.MinYear || year > holiday.MaxYear {
			slog.Debug("ignoring data file outside year range", "path", p)
			return nil
		}
		years = append(years, year)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(years)
	return slices.Compact(years), nil
}

// Source describes the data provider.
func (s *Store) Source() string {
	return s.provider.Source()
}

// AvailableYears returns the known years in ascending order.
func (s *Store) AvailableYears() []int {
	return slices.Clone(s.years)
}

// HasYear reports whether year has a backing data file.
func (s *Store) HasYear(year int) bool {
	_, ok := slices.BinarySearch(s.years, year)
	return ok
}

// LoadYear returns the records of year in file order. The first call reads
// and parses the data file; later calls are served from the cache.
// The returned slice is a copy.
func (s *Store) LoadYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if records, ok := s.cached(year); ok {
		yearCacheHits.Inc()
		return slices.Clone(records), nil
	}

	if !s.HasYear(year) {
		yearLoadErrors.WithLabelValues("unknown").Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("no holiday data for year %d", year), ErrUnknownYear,
			map[string]any{"year": year, "availableYears": s.AvailableYears()})
	}

	v, err, _ := s.group.Do(strconv.Itoa(year), func() (any, error) {
		// a concurrent caller may have finished the load
		if records, ok := s.cached(year); ok {
			return records, nil
		}
		yearCacheMisses.Inc()
		records, loadErr := s.read(year)
		if loadErr != nil {
			return nil, loadErr
		}
		s.mu.Lock()
		s.cache[year] = records
		s.mu.Unlock()
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]holiday.Holiday)), nil
}

func (s *Store) cached(year int) ([]holiday.Holiday, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.cache[year]
	return records, ok
}

func (s *Store) read(year int) ([]holiday.Holiday, error) {
	start := time.Now()
	name := strconv.Itoa(year) + ".json"

	b, err := s.provider.ReadFile(name)
	if err != nil {
		yearLoadErrors.WithLabelValues("read").Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("failed to read holiday data for year %d", year), err,
			map[string]any{"year": year, "source": s.provider.Source()})
	}

	var records []holiday.Holiday
	if err := json.Unmarshal(b, &records); err != nil {
		yearLoadErrors.WithLabelValues("parse").Inc()
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeDataUnavailable,
			fmt.Sprintf("failed to parse holiday data for year %d", year), err,
			map[string]any{"year": year, "source": s.provider.Source()})
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			yearLoadErrors.WithLabelValues("parse").Inc()
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeDataUnavailable,
				fmt.Sprintf("invalid holiday record %d for year %d", i, year), err,
				map[string]any{"year": year, "source": s.provider.Source()})
		}
	}

	yearLoadDuration.Observe(time.Since(start).Seconds())
	slog.Debug("holiday year loaded", "year", year, "records", len(records), "source", s.provider.Source())
	return records, nil
}

// AllRecords returns the records of every available year in ascending year
// order. Years that fail to load are skipped and logged.
func (s *Store) AllRecords(ctx context.Context) ([]holiday.Holiday, error) {
	var all []holiday.Holiday
	for _, year := range s.years {
		records, err := s.LoadYear(ctx, year)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			slog.Warn("skipping holiday year", "year", year, "error", err)
			continue
		}
		all = append(all, records...)
	}
	return all, nil
}

// IsHealthy reports whether at least one year exists and the first one loads.
func (s *Store) IsHealthy(ctx context.Context) bool {
	if len(s.years) == 0 {
		return false
	}
	_, err := s.LoadYear(ctx, s.years[0])
	return err == nil
}

// Reset clears the year cache. The set of available years is kept.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[int][]holiday.Holiday)
	slog.Info("holiday store cache cleared")
}
