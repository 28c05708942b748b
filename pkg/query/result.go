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
	"encoding/json"

	"github.com/ferien-api/schulferien/pkg/filter"
	"github.com/ferien-api/schulferien/pkg/holiday"
	"github.com/ferien-api/schulferien/pkg/publicholiday"
)

// Result is a list of holidays, projected onto fields when any were
// requested. It marshals as a JSON or YAML array.
type Result struct {
	records []holiday.Holiday
	fields  []holiday.Field
}

// NewResult creates a Result. A nil fields keeps whole records.
func NewResult(records []holiday.Holiday, fields []holiday.Field) Result {
	return Result{records: records, fields: fields}
}

// Records returns the unprojected records.
func (r Result) Records() []holiday.Holiday {
	return r.records
}

// Fields returns the projected fields, or nil for whole records.
func (r Result) Fields() []holiday.Field {
	return r.fields
}

// Len returns the number of records.
func (r Result) Len() int {
	return len(r.records)
}

func (r Result) value() any {
	if len(r.fields) > 0 {
		return filter.Fields(r.records, r.fields)
	}
	if r.records == nil {
		return []holiday.Holiday{}
	}
	return r.records
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	return r.value(), nil
}

// DateResult answers whether a date falls into any holiday.
type DateResult struct {
	Date      string `json:"date" yaml:"date"`
	IsHoliday bool   `json:"isHoliday" yaml:"isHoliday"`
	Holidays  Result `json:"holidays" yaml:"holidays"`
}

// SearchResult is the answer to a free-text search.
type SearchResult struct {
	Query    string `json:"query" yaml:"query"`
	Results  int    `json:"results" yaml:"results"`
	Holidays Result `json:"holidays" yaml:"holidays"`
}

// YearsResult lists the years with holiday data.
type YearsResult struct {
	Years []int `json:"years" yaml:"years"`
}

// PublicHolidaysResult lists the public holidays of one year.
type PublicHolidaysResult struct {
	Year     int                           `json:"year" yaml:"year"`
	Holidays []publicholiday.PublicHoliday `json:"holidays" yaml:"holidays"`
}
