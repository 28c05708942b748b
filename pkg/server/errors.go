package server

import (
	"errors"
	"io/fs"
	"maps"
	"net/http"
	"time"

	cnserrors "github.com/ferien-api/schulferien/pkg/errors"
	"github.com/ferien-api/schulferien/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes an error response for err. Structured errors keep
// their code, message and context; anything else becomes INTERNAL with
// fallbackMessage. The cause, if any, is reported under details["error"].
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if details == nil {
				details = make(map[string]any)
			}
			details["error"] = se.Cause.Error()
		}
		WriteError(w, r, statusFromError(se.Code, err), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(nil, extraDetails)
	if err != nil {
		if details == nil {
			details = make(map[string]any)
		}
		details["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal, fallbackMessage,
		retryableFromCode(cnserrors.ErrCodeInternal), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	switch code {
	case cnserrors.ErrCodeInvalidYear, cnserrors.ErrCodeInvalidDate, cnserrors.ErrCodeInvalidRange,
		cnserrors.ErrCodeInvalidType, cnserrors.ErrCodeInvalidState, cnserrors.ErrCodeInvalidField,
		cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnserrors.ErrCodeDataUnavailable, cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnserrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// statusFromError refines HTTPStatusFromCode: data that does not exist
// (fs.ErrNotExist in the chain) is a 404 rather than a 503.
func statusFromError(code cnserrors.ErrorCode, err error) int {
	if code == cnserrors.ErrCodeDataUnavailable && errors.Is(err, fs.ErrNotExist) {
		return http.StatusNotFound
	}
	return HTTPStatusFromCode(code)
}

func retryableFromCode(code cnserrors.ErrorCode) bool {
	switch code {
	case cnserrors.ErrCodeUnavailable, cnserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails merges b over a. Returns nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
