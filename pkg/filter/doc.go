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

// Package filter implements the predicates and transforms applied to
// sequences of holiday records.
//
// Every function returns a new slice and never modifies its input. The
// string-accepting functions (FilterByDateRange, FilterByTypes,
// FilterByStates, Search, SelectFields, OnDate, Upcoming, Current) parse and
// validate their parameters and fail with a pkg/errors.StructuredError:
//
//	ErrCodeInvalidDate   malformed or impossible YYYY-MM-DD date
//	ErrCodeInvalidRange  from after to, or a day count outside 1..365
//	ErrCodeInvalidType   unknown holiday types (all offenders listed)
//	ErrCodeInvalidState  unknown state codes (all offenders listed)
//	ErrCodeInvalidField  unknown field names (all offenders listed)
//
// The typed variants (DateRange, Types, States, Fields, ...) take already
// validated values and cannot fail. pkg/query validates every parameter
// first and then runs the typed variants, so no filter runs on a request
// that has an invalid parameter.
package filter
