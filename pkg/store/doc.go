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

// Package store provides read-only access to school holiday records by year.
//
// Each year is backed by one JSON file named {year}.json holding an array of
// holiday records. The set of available years is enumerated once when the
// Store is created. A year is read and parsed on first access and cached for
// the lifetime of the Store; concurrent cold loads of the same year share a
// single read.
//
// Data sources:
//
//	s, err := store.New(store.NewEmbeddedDataProvider())
//
//	p, err := store.NewDirDataProvider(store.DirProviderConfig{Dir: "/srv/ferien"})
//	s, err := store.New(p)
//
// Errors:
//
// LoadYear fails with pkg/errors.ErrCodeDataUnavailable. When the year has no
// backing file the error also matches ErrUnknownYear with errors.Is, which
// lets the HTTP layer answer 404 instead of 503.
package store
