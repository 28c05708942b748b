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

package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	yearLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ferien_store_load_duration_seconds",
			Help:    "Duration of reading and parsing one year of holiday data",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
	)

	yearCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ferien_store_cache_hits_total",
			Help: "Total number of year cache hits",
		},
	)
	yearCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ferien_store_cache_misses_total",
			Help: "Total number of year cache misses (cold loads)",
		},
	)
	yearLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ferien_store_load_errors_total",
			Help: "Total number of failed year loads",
		},
		[]string{"reason"},
	)
)
