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

package query

import (
	"cmp"
	"slices"
	"time"

	"github.com/ferien-api/schulferien/pkg/filter"
	"github.com/ferien-api/schulferien/pkg/holiday"
)

// Source selects the base record set of a pipeline.
type Source string

const (
	// SourceYear is the collection of the requested year.
	SourceYear Source = "loadYear"
	// SourceAll is every record of every available year.
	SourceAll Source = "all"
)

// Step names.
const (
	StepDateRange  = "dateRange"
	StepType       = "type"
	StepState      = "state"
	StepExactState = "exactState"
	StepYear       = "year"
	StepCurrent    = "current"
	StepUpcoming   = "upcoming"
	StepOnDate     = "onDate"
	StepSearch     = "search"
	StepFields     = "fields"
)

// Step is one named filter of a pipeline.
type Step struct {
	Name  string
	apply func(records []holiday.Holiday, c *Criteria, now time.Time) []holiday.Holiday
}

var (
	dateRangeStep = Step{StepDateRange, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.DateRange(r, c.DateRange)
	}}
	typeStep = Step{StepType, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.Types(r, c.Types)
	}}
	stateStep = Step{StepState, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.States(r, c.States)
	}}
	exactStateStep = Step{StepExactState, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.ExactState(r, c.State)
	}}
	yearStep = Step{StepYear, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		if !c.HasYear {
			return r
		}
		return filter.Year(r, c.Year)
	}}
	currentStep = Step{StepCurrent, func(r []holiday.Holiday, _ *Criteria, now time.Time) []holiday.Holiday {
		return filter.Current(r, now)
	}}
	upcomingStep = Step{StepUpcoming, func(r []holiday.Holiday, c *Criteria, now time.Time) []holiday.Holiday {
		return filter.Within(r, c.Days, now)
	}}
	onDateStep = Step{StepOnDate, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.At(r, c.Date)
	}}
	searchStep = Step{StepSearch, func(r []holiday.Holiday, c *Criteria, _ time.Time) []holiday.Holiday {
		return filter.Search(r, c.Query)
	}}
)

// Pipeline is the fixed filter sequence of one query. Field projection is
// implicit and always runs last.
type Pipeline struct {
	Name   string
	Source Source
	Steps  []Step
	Sort   func(a, b holiday.Holiday) int
}

// The pipelines of the API queries.
var (
	ByYearPipeline = Pipeline{
		Name:   "byYear",
		Source: SourceYear,
		Steps:  []Step{dateRangeStep, typeStep, stateStep},
	}
	ByYearStatePipeline = Pipeline{
		Name:   "byYearState",
		Source: SourceYear,
		Steps:  []Step{exactStateStep, yearStep, dateRangeStep, typeStep},
	}
	CurrentPipeline = Pipeline{
		Name:   "current",
		Source: SourceAll,
		Steps:  []Step{currentStep, stateStep},
	}
	NextPipeline = Pipeline{
		Name:   "next",
		Source: SourceAll,
		Steps:  []Step{upcomingStep, stateStep},
		Sort:   byStart,
	}
	OnDatePipeline = Pipeline{
		Name:   "onDate",
		Source: SourceAll,
		Steps:  []Step{onDateStep, stateStep},
	}
	SearchPipeline = Pipeline{
		Name:   "search",
		Source: SourceAll,
		Steps:  []Step{searchStep, yearStep, stateStep},
		Sort:   byYearStart,
	}
)

// Pipelines returns every query pipeline.
func Pipelines() []Pipeline {
	return []Pipeline{
		ByYearPipeline,
		ByYearStatePipeline,
		CurrentPipeline,
		NextPipeline,
		OnDatePipeline,
		SearchPipeline,
	}
}

// StepNames lists the steps in execution order, ending with the projection.
func (p Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.Steps)+1)
	for _, s := range p.Steps {
		names = append(names, s.Name)
	}
	return append(names, StepFields)
}

// Run applies the steps to records and sorts the result. records is not
// modified.
func (p Pipeline) Run(records []holiday.Holiday, c *Criteria, now time.Time) []holiday.Holiday {
	out := records
	for _, s := range p.Steps {
		out = s.apply(out, c, now)
	}
	if len(p.Steps) == 0 {
		out = slices.Clone(records)
	}
	if p.Sort != nil {
		slices.SortStableFunc(out, p.Sort)
	}
	return out
}

func byStart(a, b holiday.Holiday) int {
	return a.Start.Time().Compare(b.Start.Time())
}

func byYearStart(a, b holiday.Holiday) int {
	if n := cmp.Compare(a.Year, b.Year); n != 0 {
		return n
	}
	return byStart(a, b)
}
