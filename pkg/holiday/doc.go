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

// Package holiday defines the school holiday record served by the API and
// the closed vocabularies used to query it.
//
// # Records
//
// A Holiday is one state/type/period entry:
//
//	{
//	  "start": "2024-07-25T00:00Z",
//	  "end": "2024-09-08T00:00Z",
//	  "year": 2024,
//	  "stateCode": "BY",
//	  "name": "sommerferien",
//	  "slug": "sommerferien-2024-BY"
//	}
//
// Start and End are inclusive and are kept as Timestamp values, which compare
// as instants but always serialize back to the exact text they were read
// from. Year is the nominal year of the record and is stored, never derived
// from Start: Christmas holidays starting in December 2024 belong to 2024
// even though they end in January 2025. Slug is denormalized and always
// equals "{name}-{year}-{stateCode}".
//
// # Vocabularies
//
// State codes (16, upper case), holiday types (7, lower case) and selectable
// fields (6) are closed sets. Parse functions trim and case-normalize their
// input and reject values outside the set; comma-separated lists report every
// offending entry in a single error.
//
// # Dates
//
// Query dates use the strict YYYY-MM-DD form and are interpreted as midnight
// UTC. Years are integers in [1900, 2100].
package holiday
