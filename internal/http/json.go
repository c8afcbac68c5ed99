package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/apiclient"
)

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// Client disconnects can't be recovered from here.
	_, _ = buf.WriteTo(w)
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a failed apiclient.Result: {"success":false,"error":...,"code":...}.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	msg := http.StatusText(p.Code)
	if p.Err != nil {
		msg = p.Err.Error()
	}
	WriteJSON(w, p.Code, apiclient.Result[any]{Success: false, Error: msg, Code: p.ErrCode})
}

// WriteResult writes r with 200 on success, otherwise with status.
func WriteResult[T any](w http.ResponseWriter, status int, r apiclient.Result[T]) {
	if r.Success {
		status = http.StatusOK
	}
	WriteJSON(w, status, r)
}
