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
	"slices"
	"strings"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
)

// StateCode identifies one of the 16 German federal states.
type StateCode string

// StateCode constants for all federal states.
const (
	StateBW StateCode = "BW" // Baden-Württemberg
	StateBY StateCode = "BY" // Bayern
	StateBE StateCode = "BE" // Berlin
	StateBB StateCode = "BB" // Brandenburg
	StateHB StateCode = "HB" // Bremen
	StateHH StateCode = "HH" // Hamburg
	StateHE StateCode = "HE" // Hessen
	StateMV StateCode = "MV" // Mecklenburg-Vorpommern
	StateNI StateCode = "NI" // Niedersachsen
	StateNW StateCode = "NW" // Nordrhein-Westfalen
	StateRP StateCode = "RP" // Rheinland-Pfalz
	StateSL StateCode = "SL" // Saarland
	StateSN StateCode = "SN" // Sachsen
	StateST StateCode = "ST" // Sachsen-Anhalt
	StateSH StateCode = "SH" // Schleswig-Holstein
	StateTH StateCode = "TH" // Thüringen
)

var stateCodes = []StateCode{
	StateBW, StateBY, StateBE, StateBB, StateHB, StateHH, StateHE, StateMV,
	StateNI, StateNW, StateRP, StateSL, StateSN, StateST, StateSH, StateTH,
}

// StateCodes returns all state codes in their canonical order.
func StateCodes() []StateCode {
	return slices.Clone(stateCodes)
}

// IsValid reports whether s is one of the 16 state codes.
func (s StateCode) IsValid() bool {
	return slices.Contains(stateCodes, s)
}

// NormalizeStateCode trims and upper-cases a raw state code.
func NormalizeStateCode(s string) StateCode {
	return StateCode(strings.ToUpper(strings.TrimSpace(s)))
}

// ParseStateCode parses a single state code, case-insensitively.
func ParseStateCode(s string) (StateCode, error) {
	sc := NormalizeStateCode(s)
	if !sc.IsValid() {
		return "", invalidValues(cnserrors.ErrCodeInvalidState, "state code", []string{s}, stateStrings())
	}
	return sc, nil
}

// ParseStateCodes parses a comma-separated list of state codes.
// An empty list yields nil. Every entry outside the vocabulary is reported.
func ParseStateCodes(csv string) ([]StateCode, error) {
	entries := splitList(csv)
	if len(entries) == 0 {
		return nil, nil
	}
	var (
		result  []StateCode
		invalid []string
	)
	for _, e := range entries {
		sc := NormalizeStateCode(e)
		if !sc.IsValid() {
			invalid = append(invalid, e)
			continue
		}
		result = append(result, sc)
	}
	if len(invalid) > 0 {
		return nil, invalidValues(cnserrors.ErrCodeInvalidState, "state code", invalid, stateStrings())
	}
	return result, nil
}

// Type is the lower-case identifier of a holiday period.
type Type string

// Type constants. Hamburg publishes its spring break as Frühjahrsferien,
// which is kept as its own type rather than folded into Osterferien.
const (
	TypeWinter      Type = "winterferien"
	TypeOster       Type = "osterferien"
	TypeFruehjahr   Type = "fruehjahrsferien"
	TypePfingst     Type = "pfingstferien"
	TypeSommer      Type = "sommerferien"
	TypeHerbst      Type = "herbstferien"
	TypeWeihnachten Type = "weihnachtsferien"
)

var types = []Type{
	TypeWinter, TypeOster, TypeFruehjahr, TypePfingst, TypeSommer, TypeHerbst, TypeWeihnachten,
}

// Types returns all holiday types in calendar order.
func Types() []Type {
	return slices.Clone(types)
}

// IsValid reports whether t is one of the 7 holiday types.
func (t Type) IsValid() bool {
	return slices.Contains(types, t)
}

// NormalizeType trims and lower-cases a raw type name.
func NormalizeType(s string) Type {
	return Type(strings.ToLower(strings.TrimSpace(s)))
}

// ParseTypes parses a comma-separated list of holiday types.
// An empty list yields nil. Every entry outside the vocabulary is reported.
func ParseTypes(csv string) ([]Type, error) {
	entries := splitList(csv)
	if len(entries) == 0 {
		return nil, nil
	}
	var (
		result  []Type
		invalid []string
	)
	for _, e := range entries {
		t := NormalizeType(e)
		if !t.IsValid() {
			invalid = append(invalid, e)
			continue
		}
		result = append(result, t)
	}
	if len(invalid) > 0 {
		return nil, invalidValues(cnserrors.ErrCodeInvalidType, "type", invalid, typeStrings())
	}
	return result, nil
}

// Field names a selectable attribute of a Holiday.
type Field string

// Field constants, in record order.
const (
	FieldStart     Field = "start"
	FieldEnd       Field = "end"
	FieldYear      Field = "year"
	FieldStateCode Field = "stateCode"
	FieldName      Field = "name"
	FieldSlug      Field = "slug"
)

var fields = []Field{FieldStart, FieldEnd, FieldYear, FieldStateCode, FieldName, FieldSlug}

// Fields returns all selectable fields in record order.
func Fields() []Field {
	return slices.Clone(fields)
}

// IsValid reports whether f is one of the 6 selectable fields.
func (f Field) IsValid() bool {
	return slices.Contains(fields, f)
}

// ParseFields parses a comma-separated list of field names, keeping the
// order given. Field names are matched exactly after trimming, since they
// are JSON keys. A repeated field is kept once, at its first position. An
// empty list yields nil.
func ParseFields(csv string) ([]Field, error) {
	entries := splitList(csv)
	if len(entries) == 0 {
		return nil, nil
	}
	var (
		result  []Field
		invalid []string
	)
	for _, e := range entries {
		f := Field(e)
		if !f.IsValid() {
			invalid = append(invalid, e)
			continue
		}
		if !slices.Contains(result, f) {
			result = append(result, f)
		}
	}
	if len(invalid) > 0 {
		return nil, invalidValues(cnserrors.ErrCodeInvalidField, "field", invalid, fieldStrings())
	}
	return result, nil
}

// splitList splits a comma-separated list, trimming entries and dropping empty ones.
func splitList(csv string) []string {
	var result []string
	for _, v := range strings.Split(csv, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}

func invalidValues(code cnserrors.ErrorCode, what string, invalid, allowed []string) error {
	return cnserrors.NewWithContext(code,
		fmt.Sprintf("invalid %s(s): %s (allowed: %s)", what, strings.Join(invalid, ", "), strings.Join(allowed, ", ")),
		map[string]any{
			"invalid": invalid,
			"allowed": allowed,
		})
}

func stateStrings() []string {
	result := make([]string, len(stateCodes))
	for i, s := range stateCodes {
		result[i] = string(s)
	}
	return result
}

func typeStrings() []string {
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = string(t)
	}
	return result
}

func fieldStrings() []string {
	result := make([]string, len(fields))
	for i, f := range fields {
		result[i] = string(f)
	}
	return result
}
