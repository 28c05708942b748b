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

// Package publicholiday lists the statutory public holidays (Feiertage) of
// the German states, complementing the school holiday records.
package publicholiday

import (
	"cmp"
	"slices"

	"github.com/ferien-api/schulferien/pkg/holiday"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// PublicHoliday is one public holiday observed in one state.
type PublicHoliday struct {
	Date      string            `json:"date" yaml:"date"`
	Name      string            `json:"name" yaml:"name"`
	StateCode holiday.StateCode `json:"stateCode" yaml:"stateCode"`
}

var stateHolidays = map[holiday.StateCode][]*cal.Holiday{
	holiday.StateBW: de.HolidaysBW,
	holiday.StateBY: de.HolidaysBY,
	holiday.StateBE: de.HolidaysBE,
	holiday.StateBB: de.HolidaysBB,
	holiday.StateHB: de.HolidaysHB,
	holiday.StateHH: de.HolidaysHH,
	holiday.StateHE: de.HolidaysHE,
	holiday.StateMV: de.HolidaysMV,
	holiday.StateNI: de.HolidaysNI,
	holiday.StateNW: de.HolidaysNW,
	holiday.StateRP: de.HolidaysRP,
	holiday.StateSL: de.HolidaysSL,
	holiday.StateSN: de.HolidaysSN,
	holiday.StateST: de.HolidaysST,
	holiday.StateSH: de.HolidaysSH,
	holiday.StateTH: de.HolidaysTH,
}

// Calendar holds the public holiday definitions of every state.
type Calendar struct {
	holidays map[holiday.StateCode][]*cal.Holiday
}

// NewCalendar creates a Calendar covering all 16 states.
func NewCalendar() *Calendar {
	return &Calendar{holidays: stateHolidays}
}

// ForYear returns the public holidays of year for states (all states when
// empty), sorted by date and state code.
func (c *Calendar) ForYear(year int, states []holiday.StateCode) []PublicHoliday {
	if len(states) == 0 {
		states = holiday.StateCodes()
	}

	var out []PublicHoliday
	for _, state := range states {
		for _, h := range c.holidays[state] {
			actual, _ := h.Calc(year)
			if actual.IsZero() || actual.Year() != year {
				continue
			}
			out = append(out, PublicHoliday{
				Date:      actual.Format(holiday.DateLayout),
				Name:      h.Name,
				StateCode: state,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b PublicHoliday) int {
		if n := cmp.Compare(a.Date, b.Date); n != 0 {
			return n
		}
		return cmp.Compare(a.StateCode, b.StateCode)
	})
	return out
}
