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

package holiday

import (
	"fmt"
	"strconv"
	"time"
)

// Holiday is one school holiday period of one state.
type Holiday struct {
	Start     Timestamp `json:"start" yaml:"start"`
	End       Timestamp `json:"end" yaml:"end"`
	Year      int       `json:"year" yaml:"year"`
	StateCode StateCode `json:"stateCode" yaml:"stateCode"`
	Name      Type      `json:"name" yaml:"name"`
	Slug      string    `json:"slug" yaml:"slug"`
}

// MakeSlug builds the canonical "{name}-{year}-{stateCode}" identifier.
func MakeSlug(name Type, year int, state StateCode) string {
	return string(name) + "-" + strconv.Itoa(year) + "-" + string(state)
}

// Validate checks the record invariants enforced when data is loaded:
// start <= end and both vocabularies. The slug is not checked.
func (h *Holiday) Validate() error {
	if h.Start.IsZero() || h.End.IsZero() {
		return fmt.Errorf("holiday %q: start and end are required", h.Slug)
	}
	if h.Start.Time().After(h.End.Time()) {
		return fmt.Errorf("holiday %q: start %s is after end %s", h.Slug, h.Start, h.End)
	}
	if !h.StateCode.IsValid() {
		return fmt.Errorf("holiday %q: unknown state code %q", h.Slug, h.StateCode)
	}
	if !h.Name.IsValid() {
		return fmt.Errorf("holiday %q: unknown type %q", h.Slug, h.Name)
	}
	return nil
}

// Overlaps reports whether [Start, End] intersects [from, to].
func (h *Holiday) Overlaps(from, to time.Time) bool {
	return !h.Start.Time().After(to) && !h.End.Time().Before(from)
}

// Contains reports whether Start <= t <= End.
func (h *Holiday) Contains(t time.Time) bool {
	return h.Overlaps(t, t)
}

// Value returns the value of a single field.
func (h *Holiday) Value(f Field) (any, bool) {
	switch f {
	case FieldStart:
		return h.Start, true
	case FieldEnd:
		return h.End, true
	case FieldYear:
		return h.Year, true
	case FieldStateCode:
		return h.StateCode, true
	case FieldName:
		return h.Name, true
	case FieldSlug:
		return h.Slug, true
	default:
		return nil, false
	}
}
