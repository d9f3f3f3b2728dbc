package api

import (
	"net/http"
	"os"

	"github.com/theestifanos/wedding-api/internal/pkg/httputil"
)

// siteCookieName is the front-door access cookie set by SiteLogin and
// checked by SiteGate.
const siteCookieName = "site-access-token"

// SiteLogin validates the shared site password and sets the access
// cookie. The cookie holds the password itself, so rotating the password
// invalidates every outstanding cookie at once.
func (h *Handlers) SiteLogin(w http.ResponseWriter, r *http.Request) {
	if h.site.Password == "" {
		httputil.ErrorCode(w, http.StatusInternalServerError, CodeServerMisconfig, "site password not configured")
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if !httputil.Decode(w, r, &req) {
		return
	}

	if req.Password != h.site.Password {
		httputil.ErrorCode(w, http.StatusUnauthorized, CodeInvalidCredentials, "incorrect password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     siteCookieName,
		Value:    h.site.Password,
		Path:     "/",
		MaxAge:   h.site.CookieMaxAge,
		Secure:   os.Getenv("ENVIRONMENT") == "production",
		SameSite: http.SameSiteLaxMode,
	})

	httputil.OK(w, map[string]bool{"success": true})
}

// SiteGate admits requests that carry a valid site access cookie. When no
// site password is configured the gate is open, matching local
// development where the front door is disabled.
func (h *Handlers) SiteGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.site.Password == "" {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(siteCookieName)
		if err != nil || cookie.Value != h.site.Password {
			httputil.ErrorCode(w, http.StatusUnauthorized, CodeInvalidCredentials, "site access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminGate admits requests bearing the operator token. With no token
// configured every request is rejected; the operator surface never fails
// open.
func (h *Handlers) AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.site.AdminToken == "" {
			httputil.ErrorCode(w, http.StatusInternalServerError, CodeServerMisconfig, "admin token not configured")
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+h.site.AdminToken {
			httputil.ErrorCode(w, http.StatusUnauthorized, CodeInvalidCredentials, "invalid admin token")
			return
		}
		next.ServeHTTP(w, r)
	})
}
