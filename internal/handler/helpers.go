package handler

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

// newPage assembles the common page envelope: current user plus any queued
// transient notices, which are consumed by this render.
func newPage(w http.ResponseWriter, r *http.Request, st *store.Store, title string) view.Page {
	return view.Page{
		Title:   title,
		User:    st.CurrentUser(),
		Notices: httputil.PopNotices(w, r),
	}
}

// surfaceError converts a failed gateway call into user-visible behavior:
// session expiry is silenced here (the session guard takes over on the next
// request), everything else becomes a transient error notice. The caller
// redirects afterwards.
func surfaceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gateway.ErrSessionExpired) {
		return
	}
	log.Printf("[Handler] %s %s: %v", r.Method, r.URL.Path, err)
	httputil.AddNotice(w, r, view.NoticeError, gateway.UserMessage(err))
}

// confirmData feeds the generic confirmation page.
type confirmData struct {
	Message   string
	Action    string
	CancelURL string
}

func renderConfirm(w http.ResponseWriter, r *http.Request, st *store.Store, data confirmData) {
	page := newPage(w, r, st, "Confirm")
	page.Data = data
	httputil.Render(w, http.StatusOK, "confirm", page)
}

// ForestCache holds the hydrated comment forest per post so mutations can be
// applied locally instead of re-fetching the whole tree. Structural updates
// always install a freshly built forest, so readers racing a mutation see
// either the old tree or the new one, never a mix.
type ForestCache struct {
	mu sync.RWMutex
	m  map[string][]model.Comment
}

func NewForestCache() *ForestCache {
	return &ForestCache{m: make(map[string][]model.Comment)}
}

func (fc *ForestCache) Get(postID string) ([]model.Comment, bool) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	forest, ok := fc.m[postID]
	return forest, ok
}

func (fc *ForestCache) Set(postID string, forest []model.Comment) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.m[postID] = forest
}

// Mutate applies a pure transform to the cached forest, if present.
func (fc *ForestCache) Mutate(postID string, fn func([]model.Comment) []model.Comment) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	forest, ok := fc.m[postID]
	if !ok {
		return
	}
	fc.m[postID] = fn(forest)
}

func (fc *ForestCache) Drop(postID string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	delete(fc.m, postID)
}
