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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failure of the holiday query core carries one of the codes below as
// its kind, so the HTTP layer and the CLI can react without string matching:
//
//   - INVALID_YEAR, INVALID_DATE, INVALID_RANGE: malformed parameters
//   - INVALID_TYPE, INVALID_STATE, INVALID_FIELD: values outside a fixed vocabulary
//   - DATA_UNAVAILABLE: the requested year has no data or its data failed to load
//   - NOT_FOUND: a well-formed query matched no records
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeDataUnavailable,
//	    "failed to parse holiday data",
//	    parseErr,
//	    map[string]any{
//	        "year":   2024,
//	        "source": "embedded",
//	    },
//	)
package errors
