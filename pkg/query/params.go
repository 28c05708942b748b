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
	"net/http"
	"slices"
	"strings"
	"time"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/filter"
	"github.com/ferien-api/schulferien/pkg/holiday"
)

// Params holds the raw, unvalidated inputs of one query. Empty means absent.
type Params struct {
	// Path parameters.
	Year  string
	YearA string
	YearB string
	State string
	Days  string
	Date  string

	// Query string parameters.
	Query  string
	From   string
	To     string
	Type   string
	States string
	Fields string
}

// ParamsFromRequest reads path values and query string parameters. The year
// comes from the path, or from the query string for search.
func ParamsFromRequest(r *http.Request) Params {
	q := r.URL.Query()
	p := Params{
		Year:   r.PathValue("year"),
		YearA:  r.PathValue("yearA"),
		YearB:  r.PathValue("yearB"),
		State:  r.PathValue("state"),
		Days:   r.PathValue("days"),
		Date:   r.PathValue("date"),
		Query:  q.Get("q"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		Type:   q.Get("type"),
		States: q.Get("states"),
		Fields: q.Get("fields"),
	}
	if p.Year == "" {
		p.Year = q.Get("year")
	}
	return p
}

// Criteria is the validated form of Params.
type Criteria struct {
	Year      int
	HasYear   bool
	YearA     int
	YearB     int
	State     holiday.StateCode
	Days      int
	Date      time.Time
	DateText  string
	Query     string
	DateRange filter.Range
	Types     []holiday.Type
	States    []holiday.StateCode
	Fields    []holiday.Field
}

type param int

const (
	paramYear param = iota
	paramOptionalYear
	paramYearPair
	paramState
	paramDays
	paramDate
	paramQuery
	paramDateRange
	paramType
	paramStates
	paramFields
)

// validationOrder is the order in which parameters are checked. The first
// failure is returned.
var validationOrder = []param{
	paramYear,
	paramOptionalYear,
	paramYearPair,
	paramState,
	paramDays,
	paramDate,
	paramQuery,
	paramDateRange,
	paramType,
	paramStates,
	paramFields,
}

// criteria validates the accepted parameters of p in validationOrder.
func (p Params) criteria(accepted ...param) (*Criteria, error) {
	c := &Criteria{}
	for _, k := range validationOrder {
		if !slices.Contains(accepted, k) {
			continue
		}
		if err := c.set(k, p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Criteria) set(k param, p Params) error {
	var err error
	switch k {
	case paramYear:
		c.Year, err = holiday.ParseYear(p.Year)
		c.HasYear = err == nil
	case paramOptionalYear:
		if strings.TrimSpace(p.Year) != "" {
			c.Year, err = holiday.ParseYear(p.Year)
			c.HasYear = err == nil
		}
	case paramYearPair:
		if c.YearA, err = holiday.ParseYear(p.YearA); err != nil {
			return err
		}
		c.YearB, err = holiday.ParseYear(p.YearB)
	case paramState:
		// exact match, the vocabulary is not consulted
		c.State = holiday.NormalizeStateCode(p.State)
	case paramDays:
		c.Days, err = filter.ParseDays(p.Days)
	case paramDate:
		c.Date, err = holiday.ParseDate(p.Date)
		c.DateText = strings.TrimSpace(p.Date)
	case paramQuery:
		c.Query = strings.TrimSpace(p.Query)
		if c.Query == "" {
			err = cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
				"search query parameter q is required", map[string]any{"parameter": "q"})
		}
	case paramDateRange:
		c.DateRange, err = filter.ParseRange(p.From, p.To)
	case paramType:
		c.Types, err = holiday.ParseTypes(p.Type)
	case paramStates:
		c.States, err = holiday.ParseStateCodes(p.States)
	case paramFields:
		c.Fields, err = holiday.ParseFields(p.Fields)
	}
	return err
}
