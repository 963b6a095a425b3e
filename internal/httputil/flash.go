package httputil

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"socialnet-client/internal/view"
)

// Transient notices survive exactly one redirect via a short-lived cookie,
// then disappear: shown once, dismissed by the next navigation.
const flashCookie = "notices"

// AddNotice queues a notice for the next rendered page.
func AddNotice(w http.ResponseWriter, r *http.Request, level, message string) {
	notices := PeekNotices(r)
	notices = append(notices, view.NewNotice(level, message))

	data, err := json.Marshal(notices)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopNotices reads queued notices and clears the cookie.
func PopNotices(w http.ResponseWriter, r *http.Request) []view.Notice {
	notices := PeekNotices(r)
	if len(notices) > 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
	return notices
}

// PeekNotices reads queued notices without clearing them.
func PeekNotices(r *http.Request) []view.Notice {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	data, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var notices []view.Notice
	if err := json.Unmarshal(data, &notices); err != nil {
		return nil
	}
	return notices
}

// Redirect sends the browser to the given path after a form action.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}
