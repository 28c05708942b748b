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

// Package query composes the holiday filters into the queries served by the
// API and the CLI.
//
// Every query runs the same way: parse the raw parameters, validate the ones
// the query accepts, load the base record set, run a fixed Pipeline of
// filters, sort if the query defines an order, then project onto the
// requested fields. Field projection is always the final step.
//
// # Validation
//
// Parameters are validated in one fixed order for every query:
//
//	year, path parameter, from, to, type, states, fields
//
// and only the first failure is reported. Search checks its required q as
// its path parameter.
//
// # Pipelines
//
//	byYear       loadYear   dateRange -> type -> state -> fields
//	byYearState  loadYear   exactState -> year -> dateRange -> type -> fields
//	current      all        current -> state -> fields
//	next         all        upcoming -> state -> fields           sorted by start
//	onDate       all        onDate -> state -> fields
//	search       all        search -> year -> state -> fields      sorted by (year, start)
//
// An empty byYear or byYearState result is NOT_FOUND. The other queries
// return an empty list.
package query
