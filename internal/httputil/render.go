package httputil

import (
	"encoding/json"
	"log"
	"net/http"

	"socialnet-client/internal/view"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent, nothing left to do
			return
		}
	}
}

// Render executes a page template. Template failures become a plain 500;
// they indicate a programming error, not user input.
func Render(w http.ResponseWriter, status int, name string, page view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.Templates.ExecuteTemplate(w, name, page); err != nil {
		log.Printf("[Render] Template %q failed: %v", name, err)
	}
}
