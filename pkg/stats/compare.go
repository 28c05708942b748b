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
	"github.com/ferien-api/schulferien/pkg/holiday"
)

// Delta is a count in two years and its signed difference (B - A).
type Delta struct {
	CountA     int `json:"countA" yaml:"countA"`
	CountB     int `json:"countB" yaml:"countB"`
	Difference int `json:"difference" yaml:"difference"`
}

// Comparison contrasts the holidays of two years.
type Comparison struct {
	YearA          int                         `json:"yearA" yaml:"yearA"`
	YearB          int                         `json:"yearB" yaml:"yearB"`
	TotalHolidaysA int                         `json:"totalHolidaysA" yaml:"totalHolidaysA"`
	TotalHolidaysB int                         `json:"totalHolidaysB" yaml:"totalHolidaysB"`
	Difference     int                         `json:"difference" yaml:"difference"`
	ByState        map[holiday.StateCode]Delta `json:"byState" yaml:"byState"`
	ByType         map[holiday.Type]Delta      `json:"byType" yaml:"byType"`
}

// Compare builds per-state and per-type deltas over the union of keys
// present in either year.
func Compare(yearA int, a []holiday.Holiday, yearB int, b []holiday.Holiday) Comparison {
	sa, sb := Compute(yearA, a), Compute(yearB, b)
	return Comparison{
		YearA:          yearA,
		YearB:          yearB,
		TotalHolidaysA: sa.TotalHolidays,
		TotalHolidaysB: sb.TotalHolidays,
		Difference:     sb.TotalHolidays - sa.TotalHolidays,
		ByState:        deltas(sa.ByState, sb.ByState),
		ByType:         deltas(sa.ByType, sb.ByType),
	}
}

func deltas[K comparable](a, b map[K]int) map[K]Delta {
	out := make(map[K]Delta, len(a)+len(b))
	for k := range a {
		out[k] = Delta{}
	}
	for k := range b {
		out[k] = Delta{}
	}
	for k := range out {
		out[k] = Delta{CountA: a[k], CountB: b[k], Difference: b[k] - a[k]}
	}
	return out
}
