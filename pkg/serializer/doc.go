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

// Package serializer renders holiday query results for the CLI and writes
// JSON responses for the HTTP API.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Same document the HTTP API returns
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - FIELD/VALUE rows, one per scalar, keys joined with dots
//   - Struct fields and list elements keep their order, map keys are sorted
//   - Values implementing json.Marshaler (timestamps, field projections) are
//     flattened by their JSON form
//
// # Usage
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, holidays); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON encodes into a buffer before writing headers, so an encoding
// failure yields a clean 500 instead of a truncated body.
package serializer
