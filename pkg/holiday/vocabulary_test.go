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
	"errors"
	"strings"
	"testing"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
)

func TestVocabularySizes(t *testing.T) {
	if got := len(StateCodes()); got != 16 {
		t.Errorf("StateCodes() len = %d, want 16", got)
	}
	if got := len(Types()); got != 7 {
		t.Errorf("Types() len = %d, want 7", got)
	}
	if got := len(Fields()); got != 6 {
		t.Errorf("Fields() len = %d, want 6", got)
	}
}

func TestVocabularyCopies(t *testing.T) {
	s := StateCodes()
	s[0] = "XX"
	if StateCodes()[0] != StateBW {
		t.Error("StateCodes() must return a copy")
	}
}

func TestParseStateCodes(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []StateCode
		wantInvalid []string
	}{
		{"empty", "", nil, nil},
		{"only commas", " , ,", nil, nil},
		{"single", "by", []StateCode{StateBY}, nil},
		{"list with spaces", " BY , nw,BE ", []StateCode{StateBY, StateNW, StateBE}, nil},
		{"all invalid reported", "XX,BY,YY", nil, []string{"XX", "YY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStateCodes(tt.input)
			checkInvalid(t, err, cnserrors.ErrCodeInvalidState, tt.wantInvalid)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStateCodes() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStateCodes()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseStateCode(t *testing.T) {
	if sc, err := ParseStateCode(" sh "); err != nil || sc != StateSH {
		t.Errorf("ParseStateCode() = %s, %v", sc, err)
	}
	_, err := ParseStateCode("AT")
	checkInvalid(t, err, cnserrors.ErrCodeInvalidState, []string{"AT"})
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []Type
		wantInvalid []string
	}{
		{"empty", "", nil, nil},
		{"upper case", "SOMMERFERIEN", []Type{TypeSommer}, nil},
		{"hamburg alias", "fruehjahrsferien", []Type{TypeFruehjahr}, nil},
		{"list", "sommerferien, herbstferien", []Type{TypeSommer, TypeHerbst}, nil},
		{"invalid", "invalidferien", nil, []string{"invalidferien"}},
		{"mixed invalid", "skiferien,sommerferien,badeferien", nil, []string{"skiferien", "badeferien"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypes(tt.input)
			checkInvalid(t, err, cnserrors.ErrCodeInvalidType, tt.wantInvalid)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTypes() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTypes()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []Field
		wantInvalid []string
	}{
		{"empty", "", nil, nil},
		{"order kept", "name,stateCode", []Field{FieldName, FieldStateCode}, nil},
		{"reverse order", "stateCode , name", []Field{FieldStateCode, FieldName}, nil},
		{"repeated kept once", "name,stateCode,name", []Field{FieldName, FieldStateCode}, nil},
		{"case sensitive", "StateCode", nil, []string{"StateCode"}},
		{"all invalid reported", "foo,name,bar", nil, []string{"foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFields(tt.input)
			checkInvalid(t, err, cnserrors.ErrCodeInvalidField, tt.wantInvalid)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFields()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func checkInvalid(t *testing.T, err error, code cnserrors.ErrorCode, invalid []string) {
	t.Helper()
	if len(invalid) == 0 {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected %s error", code)
	}
	var se *cnserrors.StructuredError
	if !errors.As(err, &se) {
		t.Fatalf("expected StructuredError, got %T", err)
	}
	if se.Code != code {
		t.Errorf("code = %s, want %s", se.Code, code)
	}
	for _, v := range invalid {
		if !strings.Contains(se.Message, v) {
			t.Errorf("message %q does not list %q", se.Message, v)
		}
	}
	got, _ := se.Context["invalid"].([]string)
	if len(got) != len(invalid) {
		t.Errorf("context invalid = %v, want %v", got, invalid)
	}
}
