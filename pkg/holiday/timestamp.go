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
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Accepted wire layouts for record timestamps. Minute precision is the
// original format; later data sets carry seconds.
const (
	MinuteLayout = "2006-01-02T15:04Z07:00"
	SecondLayout = time.RFC3339
)

// Timestamp is a record boundary. It compares as an instant but serializes
// back to the exact text it was parsed from, so the API never reformats
// source data.
type Timestamp struct {
	raw string
	t   time.Time
}

// ParseTimestamp parses s in minute or second precision.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range []string{MinuteLayout, SecondLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{raw: s, t: t.UTC()}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: expected %s or %s", s, MinuteLayout, SecondLayout)
}

// NewTimestamp creates a minute-precision Timestamp for t.
func NewTimestamp(t time.Time) Timestamp {
	t = t.UTC()
	return Timestamp{raw: t.Format(MinuteLayout), t: t}
}

// Time returns the instant in UTC.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// String returns the source text.
func (ts Timestamp) String() string {
	return ts.raw
}

// IsZero reports whether ts was never set.
func (ts Timestamp) IsZero() bool {
	return ts.raw == "" && ts.t.IsZero()
}

// MarshalJSON writes the source text.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.raw)
}

// UnmarshalJSON parses a JSON string timestamp.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalYAML writes the source text.
func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.raw, nil
}

// UnmarshalYAML parses a YAML scalar timestamp.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseTimestamp(value.Value)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
