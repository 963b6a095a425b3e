package middleware

import (
	"net/http"

	"socialnet-client/internal/httputil"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

// SessionGuard intercepts every page while the session-expiry alert is up
// and renders the forced-logout dialog instead. The only way forward is the
// logout action, which clears the alert with the rest of the state.
func SessionGuard(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if st.AlertOpen() && r.URL.Path != "/logout" {
				httputil.Render(w, http.StatusUnauthorized, "session_expired", view.Page{
					Title: "Session ended",
					User:  st.CurrentUser(),
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin redirects logged-out visitors to the login page.
func RequireLogin(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !st.LoggedIn() {
				httputil.Redirect(w, r, "/login")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RedirectIfLoggedIn keeps authenticated users off the login/register pages.
func RedirectIfLoggedIn(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if st.LoggedIn() {
				httputil.Redirect(w, r, "/")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
