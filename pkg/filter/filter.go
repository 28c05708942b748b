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

package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/holiday"
	"golang.org/x/text/cases"
)

const (
	// MinDays and MaxDays bound the look-ahead window of Upcoming.
	MinDays = 1
	MaxDays = 365
)

// Where returns the records for which keep returns true.
func Where(records []holiday.Holiday, keep func(*holiday.Holiday) bool) []holiday.Holiday {
	out := make([]holiday.Holiday, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Range is a closed interval of days. An unset bound is open.
type Range struct {
	From    time.Time
	To      time.Time
	HasFrom bool
	HasTo   bool
}

// ParseRange parses optional from and to dates. Both denote midnight UTC.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if strings.TrimSpace(from) != "" {
		if r.From, err = holiday.ParseDate(from); err != nil {
			return Range{}, err
		}
		r.HasFrom = true
	}
	if strings.TrimSpace(to) != "" {
		if r.To, err = holiday.ParseDate(to); err != nil {
			return Range{}, err
		}
		r.HasTo = true
	}
	if r.HasFrom && r.HasTo && r.From.After(r.To) {
		return Range{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRange,
			fmt.Sprintf("invalid range: from %s is after to %s", strings.TrimSpace(from), strings.TrimSpace(to)),
			map[string]any{"from": strings.TrimSpace(from), "to": strings.TrimSpace(to)})
	}
	return r, nil
}

// IsOpen reports whether neither bound is set.
func (r Range) IsOpen() bool {
	return !r.HasFrom && !r.HasTo
}

// DateRange keeps records whose [start, end] overlaps r.
func DateRange(records []holiday.Holiday, r Range) []holiday.Holiday {
	if r.IsOpen() {
		return append(make([]holiday.Holiday, 0, len(records)), records...)
	}
	return Where(records, func(h *holiday.Holiday) bool {
		if r.HasTo && h.Start.Time().After(r.To) {
			return false
		}
		if r.HasFrom && h.End.Time().Before(r.From) {
			return false
		}
		return true
	})
}

// FilterByDateRange keeps records overlapping the optional from/to dates.
func FilterByDateRange(records []holiday.Holiday, from, to string) ([]holiday.Holiday, error) {
	r, err := ParseRange(from, to)
	if err != nil {
		return nil, err
	}
	return DateRange(records, r), nil
}

// Types keeps records whose name is in types. An empty set keeps everything.
func Types(records []holiday.Holiday, types []holiday.Type) []holiday.Holiday {
	if len(types) == 0 {
		return append(make([]holiday.Holiday, 0, len(records)), records...)
	}
	return Where(records, func(h *holiday.Holiday) bool {
		return slices.Contains(types, holiday.NormalizeType(string(h.Name)))
	})
}

// FilterByTypes keeps records whose name is in the comma-separated list.
func FilterByTypes(records []holiday.Holiday, csv string) ([]holiday.Holiday, error) {
	types, err := holiday.ParseTypes(csv)
	if err != nil {
		return nil, err
	}
	return Types(records, types), nil
}

// States keeps records whose state is in states. An empty set keeps everything.
func States(records []holiday.Holiday, states []holiday.StateCode) []holiday.Holiday {
	if len(states) == 0 {
		return append(make([]holiday.Holiday, 0, len(records)), records...)
	}
	return Where(records, func(h *holiday.Holiday) bool {
		return slices.Contains(states, holiday.NormalizeStateCode(string(h.StateCode)))
	})
}

// FilterByStates keeps records whose state is in the comma-separated list.
func FilterByStates(records []holiday.Holiday, csv string) ([]holiday.Holiday, error) {
	states, err := holiday.ParseStateCodes(csv)
	if err != nil {
		return nil, err
	}
	return States(records, states), nil
}

// ExactState keeps records of exactly state. Unlike States the value is not
// checked against the vocabulary.
func ExactState(records []holiday.Holiday, state holiday.StateCode) []holiday.Holiday {
	return Where(records, func(h *holiday.Holiday) bool {
		return h.StateCode == state
	})
}

// Year keeps records whose nominal year equals year.
func Year(records []holiday.Holiday, year int) []holiday.Holiday {
	return Where(records, func(h *holiday.Holiday) bool {
		return h.Year == year
	})
}

// Search keeps records whose name, slug or state code contains query,
// ignoring case. An empty query returns a copy of the input.
func Search(records []holiday.Holiday, query string) []holiday.Holiday {
	query = strings.TrimSpace(query)
	if query == "" {
		return append(make([]holiday.Holiday, 0, len(records)), records...)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	return Where(records, func(h *holiday.Holiday) bool {
		for _, s := range []string{string(h.Name), h.Slug, string(h.StateCode)} {
			if strings.Contains(fold.String(s), needle) {
				return true
			}
		}
		return false
	})
}

// Fields projects every record onto fields, in the order given.
func Fields(records []holiday.Holiday, fields []holiday.Field) []holiday.Projection {
	out := make([]holiday.Projection, len(records))
	for i := range records {
		out[i] = holiday.Project(records[i], fields)
	}
	return out
}

// SelectFields projects every record onto the comma-separated field list.
func SelectFields(records []holiday.Holiday, csv string) ([]holiday.Projection, error) {
	fields, err := holiday.ParseFields(csv)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		fields = holiday.Fields()
	}
	return Fields(records, fields), nil
}

// At keeps records with start <= t <= end.
func At(records []holiday.Holiday, t time.Time) []holiday.Holiday {
	return Where(records, func(h *holiday.Holiday) bool {
		return h.Contains(t)
	})
}

// OnDate keeps records active on the given YYYY-MM-DD date.
func OnDate(records []holiday.Holiday, date string) ([]holiday.Holiday, error) {
	t, err := holiday.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return At(records, t), nil
}

// ParseDays parses a look-ahead day count in [MinDays, MaxDays].
func ParseDays(s string) (int, error) {
	s = strings.TrimSpace(s)
	days, err := strconv.Atoi(s)
	if err != nil || days < MinDays || days > MaxDays {
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRange,
			fmt.Sprintf("invalid days %q: must be an integer between %d and %d", s, MinDays, MaxDays),
			map[string]any{"days": s})
	}
	return days, nil
}

// Within keeps records starting in [now, now+days].
func Within(records []holiday.Holiday, days int, now time.Time) []holiday.Holiday {
	limit := now.AddDate(0, 0, days)
	return Where(records, func(h *holiday.Holiday) bool {
		start := h.Start.Time()
		return !start.Before(now) && !start.After(limit)
	})
}

// Upcoming keeps records starting within the next days days after now.
func Upcoming(records []holiday.Holiday, days string, now time.Time) ([]holiday.Holiday, error) {
	n, err := ParseDays(days)
	if err != nil {
		return nil, err
	}
	return Within(records, n, now), nil
}

// Current keeps records active at now.
func Current(records []holiday.Holiday, now time.Time) []holiday.Holiday {
	return At(records, now)
}
