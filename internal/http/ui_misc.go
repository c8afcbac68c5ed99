package httpx

import (
	"errors"
	"net/http"
)

// NotFound renders the 404 page for browsers and a JSON error otherwise.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if !IsBrowserRequest(r) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})
		return
	}

	data := basePageData(r, PageMeta{Title: "Page not found", PageTitle: "Page not found", CurrentPage: PageMissing})
	data["Code"] = "404"
	data["Message"] = "The page you're looking for doesn't exist."
	if session := GetSessionFromContext(r.Context()); session != nil {
		data["HomePath"] = session.HomePath()
	} else {
		data["HomePath"] = signInURL(r.URL.RequestURI())
	}

	if h.T == nil {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}
	if IsHTMX(r) {
		h.renderDashboardPage(w, r, data)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.T.RenderError(w, r, data); err != nil {
		h.logger().Error("failed to render not found page", "error", err)
	}
}
