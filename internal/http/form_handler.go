package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/model"
)

// FormParser parses form data from an HTTP request and returns the parsed
// request, the submitted values for re-rendering, and any field errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string, map[string]string)

// FormSubmit sends a parsed request to a service. id is empty in create mode.
type FormSubmit[T any] func(ctx context.Context, id model.ID, req T) error

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W      http.ResponseWriter
	R      *http.Request
	Mode   FormMode
	Parser FormParser[T]
	Submit FormSubmit[T]
	// Success redirect URL
	SuccessURL string
	// Page metadata for rendering the form again on error
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
}

// HandleForm processes a create or edit submission: parse and validate, call
// the service, then redirect on success or re-render the form with errors.
//
//	HandleForm(h, FormHandlerOpts[model.VacancyRequest]{
//	    W: w, R: r, Mode: FormModeCreate,
//	    Parser: parseVacancyForm,
//	    Submit: createVacancy,
//	    SuccessURL: "/hr/vacancies?notice=vacancy-created",
//	    PageMeta: vacancyFormMeta(FormModeCreate),
//	})
func HandleForm[T any](h *UIHandlers, opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Submit == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	var id model.ID
	switch opts.Mode {
	case FormModeCreate:
	case FormModeEdit:
		if id = pathID(opts.R); id.IsZero() {
			h.NotFound(opts.W, opts.R)
			return
		}
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return
	}

	req, form, fieldErrors := opts.Parser(opts.R)
	data := make(map[string]any, len(opts.ExtraData)+2)
	for k, v := range opts.ExtraData {
		data[k] = v
	}
	data["Form"] = form
	data["Mode"] = opts.Mode

	if len(fieldErrors) > 0 {
		h.renderForm(opts.W, opts.R, ErrorOpts{
			FieldErrors: fieldErrors,
			PageMeta:    opts.PageMeta,
			Data:        data,
			StatusCode:  formErrorStatus(opts.R),
		})
		return
	}

	if err := opts.Submit(opts.R.Context(), id, req); err != nil {
		h.logger().WarnContext(opts.R.Context(), "form submission failed",
			"page", opts.PageMeta.CurrentPage,
			"mode", opts.Mode,
			"error", err,
		)
		h.renderForm(opts.W, opts.R, ErrorOpts{Err: err, PageMeta: opts.PageMeta, Data: data})
		return
	}

	redirect(opts.W, opts.R, opts.SuccessURL)
}

// formErrorStatus keeps htmx swaps at 200 so the fragment is applied.
func formErrorStatus(r *http.Request) int {
	if IsHTMX(r) {
		return 0
	}
	return http.StatusUnprocessableEntity
}

// formValues returns the trimmed first value of each named form field.
func formValues(r *http.Request, fields ...string) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f] = strings.TrimSpace(r.PostFormValue(f))
	}
	return out
}
