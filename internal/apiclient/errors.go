package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
)

// Error is returned for every failed call. Status is 0 when no HTTP response
// was received (DNS, connection refused, timeout, undecodable body).
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string // server-supplied, may be empty
	Code    string // server-supplied error code, may be empty
	Err     error  // transport or decode cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api %s %s", e.Method, e.Path)
	if e.Status > 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the failure as an AppError so callers can classify it with
// the internal/errors helpers and render UserMessage.
func (e *Error) Unwrap() error {
	return &apperrors.AppError{Code: e.Kind(), Message: e.Message, Cause: e.Err}
}

// Kind classifies the failure.
func (e *Error) Kind() apperrors.ErrorCode {
	switch {
	case e.Status == 0, e.Status >= http.StatusInternalServerError:
		return apperrors.ErrCodeUnavailable
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrCodeUnauthorized
	case e.Status == http.StatusForbidden:
		return apperrors.ErrCodeForbidden
	case e.Status == http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case e.Status == http.StatusConflict:
		return apperrors.ErrCodeConflict
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return apperrors.ErrCodeValidation
	default:
		return apperrors.ErrCodeInternal
	}
}

// errorResponse covers the error bodies the API is known to send:
// {"message": "..."}, {"error": "..."}, {"error": {"message": "...", "code": "..."}}
// and {"success": false, "message": "...", "errors": [{"msg": "..."}]}.
type errorResponse struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
	Errors  []struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	} `json:"errors"`
}

// parseErrorBody extracts the server message and code from an error body.
// Non-JSON bodies are used verbatim when short enough to be a message.
func parseErrorBody(body []byte) (message, code string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", ""
	}
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if len(trimmed) <= 200 && !strings.HasPrefix(trimmed, "<") {
			return trimmed, ""
		}
		return "", ""
	}

	message = strings.TrimSpace(parsed.Message)
	code = strings.TrimSpace(parsed.Code)

	if len(parsed.Error) > 0 {
		var s string
		if json.Unmarshal(parsed.Error, &s) == nil {
			if message == "" {
				message = strings.TrimSpace(s)
			} else if code == "" {
				code = strings.TrimSpace(s)
			}
		} else {
			var nested struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			}
			if json.Unmarshal(parsed.Error, &nested) == nil {
				if message == "" {
					message = strings.TrimSpace(nested.Message)
				}
				if code == "" {
					code = strings.TrimSpace(nested.Code)
				}
			}
		}
	}

	if message == "" {
		for _, e := range parsed.Errors {
			if m := strings.TrimSpace(e.Msg + e.Message); m != "" {
				message = m
				break
			}
		}
	}
	return message, code
}
