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

package stats

import (
	"encoding/json"
	"testing"

	"github.com/ferien-api/schulferien/pkg/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, start, end string, year int, state holiday.StateCode, name holiday.Type) holiday.Holiday {
	t.Helper()
	s, err := holiday.ParseTimestamp(start)
	require.NoError(t, err)
	e, err := holiday.ParseTimestamp(end)
	require.NoError(t, err)
	return holiday.Holiday{Start: s, End: e, Year: year, StateCode: state, Name: name, Slug: holiday.MakeSlug(name, year, state)}
}

func year2024(t *testing.T) []holiday.Holiday {
	return []holiday.Holiday{
		record(t, "2024-03-25T00:00Z", "2024-04-06T00:00Z", 2024, holiday.StateBY, holiday.TypeOster),       // 13
		record(t, "2024-07-29T00:00Z", "2024-09-09T00:00Z", 2024, holiday.StateBY, holiday.TypeSommer),      // 43
		record(t, "2024-07-08T00:00Z", "2024-08-20T00:00Z", 2024, holiday.StateNW, holiday.TypeSommer),      // 44
		record(t, "2024-05-21T00:00Z", "2024-05-21T00:00Z", 2024, holiday.StateNW, holiday.TypePfingst),     // 1
		record(t, "2024-05-10T00:00Z", "2024-05-10T00:00Z", 2024, holiday.StateBE, holiday.TypePfingst),     // 1
		record(t, "2024-12-23T00:00Z", "2025-01-03T00:00Z", 2024, holiday.StateBY, holiday.TypeWeihnachten), // 12
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single day", "2024-05-10T00:00Z", "2024-05-10T00:00Z", 1},
		{"one night", "2024-05-10T00:00Z", "2024-05-11T00:00Z", 2},
		{"partial day rounds up", "2024-05-10T00:00Z", "2024-05-11T06:00Z", 3},
		{"across leap day", "2024-02-26T00:00Z", "2024-03-01T00:00Z", 5},
		{"seconds precision", "2024-07-29T00:00:00Z", "2024-09-09T00:00:00Z", 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := record(t, tt.start, tt.end, 2024, holiday.StateBY, holiday.TypeSommer)
			assert.Equal(t, tt.want, Duration(h))
		})
	}
}

func TestCompute(t *testing.T) {
	records := year2024(t)
	s := Compute(2024, records)

	assert.Equal(t, 2024, s.Year)
	assert.Equal(t, 6, s.TotalHolidays)
	assert.Equal(t, map[holiday.StateCode]int{holiday.StateBY: 3, holiday.StateNW: 2, holiday.StateBE: 1}, s.ByState)
	assert.Equal(t, 2, s.ByType[holiday.TypeSommer])
	assert.Equal(t, 2, s.ByType[holiday.TypePfingst])

	// (13+43+44+1+1+12)/6 = 19
	assert.InDelta(t, 19.0, s.AverageDuration, 0.0001)

	require.NotNil(t, s.LongestHoliday)
	assert.Equal(t, "sommerferien-2024-NW", s.LongestHoliday.Slug)
	assert.Equal(t, 44, s.LongestHoliday.Duration)

	require.NotNil(t, s.ShortestHoliday)
	assert.Equal(t, "pfingstferien-2024-NW", s.ShortestHoliday.Slug, "first of equal durations wins")
	assert.Equal(t, 1, s.ShortestHoliday.Duration)
}

func TestComputeLongestTie(t *testing.T) {
	records := []holiday.Holiday{
		record(t, "2024-05-10T00:00Z", "2024-05-10T00:00Z", 2024, holiday.StateBE, holiday.TypePfingst), // 1
		record(t, "2024-07-18T00:00Z", "2024-08-30T00:00Z", 2024, holiday.StateBE, holiday.TypeSommer),  // 44
		record(t, "2024-07-08T00:00Z", "2024-08-20T00:00Z", 2024, holiday.StateNW, holiday.TypeSommer),  // 44
		record(t, "2024-03-25T00:00Z", "2024-04-06T00:00Z", 2024, holiday.StateBY, holiday.TypeOster),   // 13
	}

	s := Compute(2024, records)
	require.NotNil(t, s.LongestHoliday)
	assert.Equal(t, "sommerferien-2024-BE", s.LongestHoliday.Slug, "first of equal durations wins")
	assert.Equal(t, 44, s.LongestHoliday.Duration)

	// reversed order picks the other record
	records[1], records[2] = records[2], records[1]
	s = Compute(2024, records)
	assert.Equal(t, "sommerferien-2024-NW", s.LongestHoliday.Slug)
}

func TestComputeConsistency(t *testing.T) {
	s := Compute(2024, year2024(t))

	sumState, sumType := 0, 0
	for _, n := range s.ByState {
		sumState += n
	}
	for _, n := range s.ByType {
		sumType += n
	}
	assert.Equal(t, s.TotalHolidays, sumState)
	assert.Equal(t, s.TotalHolidays, sumType)
}

func TestComputeRoundsAverage(t *testing.T) {
	records := []holiday.Holiday{
		record(t, "2024-05-10T00:00Z", "2024-05-10T00:00Z", 2024, holiday.StateBY, holiday.TypePfingst), // 1
		record(t, "2024-05-10T00:00Z", "2024-05-10T00:00Z", 2024, holiday.StateBE, holiday.TypePfingst), // 1
		record(t, "2024-05-10T00:00Z", "2024-05-11T00:00Z", 2024, holiday.StateNW, holiday.TypePfingst), // 2
	}
	assert.Equal(t, 1.33, Compute(2024, records).AverageDuration)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(2030, nil)
	assert.Equal(t, 0, s.TotalHolidays)
	assert.Zero(t, s.AverageDuration)
	assert.Nil(t, s.LongestHoliday)
	assert.Nil(t, s.ShortestHoliday)
	assert.NotNil(t, s.ByState)
}

func TestDurationRecordJSON(t *testing.T) {
	s := Compute(2024, year2024(t)[:1])
	b, err := json.Marshal(s.LongestHoliday)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "osterferien-2024-BY", m["slug"])
	assert.Equal(t, "2024-03-25T00:00Z", m["start"])
	assert.InDelta(t, 13, m["duration"], 0)
}

func TestCompare(t *testing.T) {
	a := year2024(t)
	b := []holiday.Holiday{
		record(t, "2025-08-04T00:00Z", "2025-09-15T00:00Z", 2025, holiday.StateBY, holiday.TypeSommer),
		record(t, "2025-03-03T00:00Z", "2025-03-14T00:00Z", 2025, holiday.StateHH, holiday.TypeFruehjahr),
	}

	c := Compare(2024, a, 2025, b)
	assert.Equal(t, 2024, c.YearA)
	assert.Equal(t, 2025, c.YearB)
	assert.Equal(t, 6, c.TotalHolidaysA)
	assert.Equal(t, 2, c.TotalHolidaysB)
	assert.Equal(t, c.TotalHolidaysB-c.TotalHolidaysA, c.Difference)

	assert.Equal(t, Delta{CountA: 3, CountB: 1, Difference: -2}, c.ByState[holiday.StateBY])
	assert.Equal(t, Delta{CountA: 0, CountB: 1, Difference: 1}, c.ByState[holiday.StateHH])
	assert.Equal(t, Delta{CountA: 1, CountB: 0, Difference: -1}, c.ByState[holiday.StateBE])
	assert.Len(t, c.ByState, 4)

	assert.Equal(t, Delta{CountA: 0, CountB: 1, Difference: 1}, c.ByType[holiday.TypeFruehjahr])
	assert.Len(t, c.ByType, 5)

	for s, d := range c.ByState {
		assert.Equal(t, d.CountB-d.CountA, d.Difference, s)
	}
}

func TestCompareSameYear(t *testing.T) {
	c := Compare(2024, year2024(t), 2024, year2024(t))
	assert.Zero(t, c.Difference)
	for _, d := range c.ByType {
		assert.Zero(t, d.Difference)
	}
}
