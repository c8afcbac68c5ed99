package httpx

import (
	"net/http"
	"strings"
	"time"

	domainauth "github.com/hiteshkumarrdrajpurohit/Web-Recruitment-System-sub000/internal/domain/auth"
)

// SessionCookieName holds the opaque session ID.
const SessionCookieName = "session_id"

// CookieOptions are the attributes shared by every cookie the portal sets.
type CookieOptions struct {
	// Domain is empty for host-only cookies.
	Domain string
	// Secure forces the Secure flag. Requests over TLS, or forwarded as
	// https, get it regardless.
	Secure bool
}

func (o CookieOptions) secure(r *http.Request) bool {
	return o.Secure || r.TLS != nil || isForwardedHTTPS(r)
}

// isForwardedHTTPS handles comma-separated X-Forwarded-Proto values ("https,http").
func isForwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// setSessionCookie writes the session cookie so it expires with the session.
func setSessionCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions, s domainauth.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   opts.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// clearCookie expires a cookie, mirroring the attributes used to set it.
func clearCookie(w http.ResponseWriter, r *http.Request, opts CookieOptions, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   opts.secure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
