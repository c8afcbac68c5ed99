package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/ports"
	"github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/service"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	SignIn(ctx context.Context, in service.SignInInput) (*service.SignInResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	SignUp(ctx context.Context, in ports.SignUpInput) error
}

// AuthHandlers provides the non-page authentication endpoints.
type AuthHandlers struct {
	Svc     AuthServiceInterface
	Cookies CookieOptions
	Logger  *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// SignOut deletes the server-side session and clears the cookie.
// POST /auth/signout.
func (h *AuthHandlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if id := cookieValue(r, SessionCookieName); id != "" {
		if err := h.Svc.SignOut(r.Context(), id); err != nil {
			h.logger().WarnContext(r.Context(), "sign out failed", "error", err)
		}
	}
	clearCookie(w, r, h.Cookies, SessionCookieName)

	// Where to land after signing back in, if the caller passed one.
	target := domainauth.PublicEntryPath
	if ret := safeRedirectPath(r.FormValue("redirect_uri")); ret != "/" {
		q := url.Values{}
		q.Set("redirect_uri", ret)
		target += "?" + q.Encode()
	}

	if IsBrowserRequest(r) {
		redirect(w, r, target)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"redirect_to": target,
	})
}

// Status returns the current authentication status.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	id := cookieValue(r, SessionCookieName)
	if id == "" {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), id)
	if err != nil {
		clearCookie(w, r, h.Cookies, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":    session.UserID,
			"name":  session.DisplayName(),
			"email": session.Email,
			"role":  session.Role,
		},
		"home":       session.HomePath(),
		"expires_at": session.ExpiresAt,
	})
}
