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

// Package stats computes derived views over holiday records: per-year
// statistics and year-over-year comparison.
package stats

import (
	"math"
	"time"

	"github.com/ferien-api/schulferien/pkg/holiday"
)

const day = 24 * time.Hour

// DurationRecord is a holiday annotated with its length in days.
type DurationRecord struct {
	holiday.Holiday `yaml:",inline"`
	Duration        int `json:"duration" yaml:"duration"`
}

// Statistics summarizes one year of holidays.
type Statistics struct {
	Year            int                       `json:"year" yaml:"year"`
	TotalHolidays   int                       `json:"totalHolidays" yaml:"totalHolidays"`
	ByState         map[holiday.StateCode]int `json:"byState" yaml:"byState"`
	ByType          map[holiday.Type]int      `json:"byType" yaml:"byType"`
	AverageDuration float64                   `json:"averageDuration" yaml:"averageDuration"`
	LongestHoliday  *DurationRecord           `json:"longestHoliday" yaml:"longestHoliday"`
	ShortestHoliday *DurationRecord           `json:"shortestHoliday" yaml:"shortestHoliday"`
}

// Duration returns the inclusive number of days of h:
// ceil((end - start) / 1 day) + 1.
func Duration(h holiday.Holiday) int {
	d := h.End.Time().Sub(h.Start.Time())
	return int(math.Ceil(float64(d)/float64(day))) + 1
}

// Compute aggregates records of year. On equal durations the first record in
// collection order is kept as longest and as shortest.
func Compute(year int, records []holiday.Holiday) Statistics {
	s := Statistics{
		Year:          year,
		TotalHolidays: len(records),
		ByState:       make(map[holiday.StateCode]int),
		ByType:        make(map[holiday.Type]int),
	}

	total := 0
	for _, h := range records {
		s.ByState[h.StateCode]++
		s.ByType[h.Name]++

		d := Duration(h)
		total += d
		if s.LongestHoliday == nil || d > s.LongestHoliday.Duration {
			s.LongestHoliday = &DurationRecord{Holiday: h, Duration: d}
		}
		if s.ShortestHoliday == nil || d < s.ShortestHoliday.Duration {
			s.ShortestHoliday = &DurationRecord{Holiday: h, Duration: d}
		}
	}

	if len(records) > 0 {
		s.AverageDuration = round2(float64(total) / float64(len(records)))
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
