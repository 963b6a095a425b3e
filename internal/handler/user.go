package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type UserHandler struct {
	gw    *gateway.Client
	store *store.Store
}

type usersData struct {
	Users []view.UserView
}

type profileData struct {
	Profile              model.User
	Own                  bool
	Followed             bool
	FriendRequestPending bool
	Posts                []view.PostView
}

func NewUserHandler(gw *gateway.Client, st *store.Store) *UserHandler {
	return &UserHandler{gw: gw, store: st}
}

// List handles GET /users with an optional ?q= filter over usernames and
// real names.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()
	query := r.URL.Query().Get("q")

	users, err := h.gw.Users(r.Context())
	if err != nil {
		surfaceError(w, r, err)
		users = nil
	}
	users = dropUser(users, viewer.ID)
	if query != "" {
		users = view.FilterUsers(users, query)
	}

	page := newPage(w, r, h.store, "People")
	page.Query = query
	page.Data = usersData{Users: view.NewUserViews(users, viewer)}
	httputil.Render(w, http.StatusOK, "users", page)
}

// Show handles GET /users/{id}
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	viewer := h.store.CurrentUser()
	if viewer != nil && userID == viewer.ID {
		httputil.Redirect(w, r, "/profile")
		return
	}

	user, err := h.gw.UserByID(r.Context(), userID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/users")
		return
	}
	posts, err := h.gw.PostsByUser(r.Context(), userID)
	if err != nil {
		surfaceError(w, r, err)
		posts = nil
	}
	request, err := h.gw.FriendRequestStatus(r.Context(), userID)
	if err != nil {
		surfaceError(w, r, err)
		request = nil
	}

	pending := request != nil && request.Status == model.FriendRequestPending

	page := newPage(w, r, h.store, user.FullName())
	page.Data = profileData{
		Profile:              *user,
		Followed:             viewer.IsFollowing(userID),
		FriendRequestPending: pending,
		Posts:                view.NewPostViews(posts, viewer),
	}
	httputil.Render(w, http.StatusOK, "profile", page)
}

// Follow handles POST /users/{id}/follow
// The backend echoes the viewer with the updated follow list; the session
// copy is refreshed from that echo.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	me, err := h.gw.Follow(r.Context(), userID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, backTo(r, "/users"))
		return
	}
	h.store.UpdateUser(*me)
	httputil.Redirect(w, r, backTo(r, "/users"))
}

// ConfirmUnfollow handles GET /users/{id}/unfollow
func (h *UserHandler) ConfirmUnfollow(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	name := userID
	if user, err := h.gw.UserByID(r.Context(), userID); err == nil {
		name = user.Username
	}
	renderConfirm(w, r, h.store, confirmData{
		Message:   "You will stop seeing posts from " + name + " in your feed.",
		Action:    "/users/" + userID + "/unfollow",
		CancelURL: backTo(r, "/users"),
	})
}

// Unfollow handles POST /users/{id}/unfollow
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	me, err := h.gw.Unfollow(r.Context(), userID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/users")
		return
	}
	h.store.UpdateUser(*me)
	httputil.Redirect(w, r, "/users")
}

// Following handles GET /following, the list of users the viewer follows.
func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	users, err := h.gw.Users(r.Context())
	if err != nil {
		surfaceError(w, r, err)
		users = nil
	}

	followed := make([]model.User, 0, len(viewer.Follows))
	for _, u := range users {
		if viewer.IsFollowing(u.ID) {
			followed = append(followed, u)
		}
	}

	page := newPage(w, r, h.store, "Following")
	page.Data = usersData{Users: view.NewUserViews(followed, viewer)}
	httputil.Render(w, http.StatusOK, "following", page)
}

func dropUser(users []model.User, id string) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
