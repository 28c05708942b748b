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

package serializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
)

// ContentTypeJSON is the Content-Type of every API response body.
const ContentTypeJSON = "application/json"

// encodeFailureBody is sent when a response value cannot be encoded. It has
// the same code/message shape as the server's error responses.
var encodeFailureBody = []byte(`{"code":"` + string(cnserrors.ErrCodeInternal) + `","message":"failed to encode response"}` + "\n")

// RespondJSON writes data as a JSON body with statusCode. The value is
// encoded before any header is written, so a failure yields a complete 500
// error body instead of a truncated record list.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", ContentTypeJSON)

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err, "status", statusCode)
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write(encodeFailureBody); werr != nil {
			slog.Warn("response write failed", "error", werr)
		}
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// client went away
		slog.Warn("response write failed", "error", err, "bytes", buf.Len())
	}
}
