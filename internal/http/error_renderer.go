package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/errors"
)

// ErrorRenderer renders a page with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is optional when only field errors are reported.
	Err error
	// FieldErrors maps form field names to messages.
	FieldErrors map[string]string
	// Renderer is typically h.renderDashboardPage.
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data is merged into the template data (form values, option lists).
	Data map[string]any
	// StatusCode is written when non-zero; 0 keeps 200 so htmx swaps the body.
	StatusCode int
	// ShowToast also raises a showToast event with the general message.
	ShowToast bool
}

// DetermineErrorStatus maps an error to a status for full-page renders.
// 0 means "use the default" so htmx still swaps form re-renders.
func DetermineErrorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeUnavailable:
		return http.StatusBadGateway
	default:
		return 0
	}
}

// RenderError renders a page carrying a general error message and, when the
// error names a form field, a field-level message as well.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	generalError := processError(opts.Err, &opts.FieldErrors)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	switch {
	case generalError != "":
		builder.WithError(generalError)
	case len(opts.FieldErrors) > 0:
		builder.WithError(errMsgFixBelow)
	}

	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}
	if opts.StatusCode != 0 {
		opts.W.Header().Set("Content-Type", "text/html; charset=utf-8")
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError turns err into a user-facing message. Validation errors that
// carry a field become field errors and the general message asks the user
// to fix the form.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	msg := apperrors.UserMessage(err)
	if field := apperrors.GetField(err); field != "" && apperrors.IsValidation(err) && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		if _, exists := (*fieldErrors)[field]; !exists {
			(*fieldErrors)[field] = msg
		}
		return errMsgFixBelow
	}
	return msg
}
