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
	"regexp"
	"strconv"
	"strings"
	"time"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
)

const (
	// DateLayout is the only accepted query date format.
	DateLayout = "2006-01-02"

	// MinYear and MaxYear bound every year parameter.
	MinYear = 1900
	MaxYear = 2100
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD calendar date as midnight UTC.
// Out-of-range months and days, including Feb 29 in common years, are rejected.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return time.Time{}, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidDate,
			fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", s),
			map[string]any{"date": s})
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidDate,
			fmt.Sprintf("invalid date %q: not a calendar date", s), err,
			map[string]any{"date": s})
	}
	return t, nil
}

// ParseYear parses an integer year in [MinYear, MaxYear].
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	year, err := strconv.Atoi(s)
	if err != nil || year < MinYear || year > MaxYear {
		return 0, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidYear,
			fmt.Sprintf("invalid year %q: must be an integer between %d and %d", s, MinYear, MaxYear),
			map[string]any{"year": s})
	}
	return year, nil
}
