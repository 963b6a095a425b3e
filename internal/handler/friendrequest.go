package handler

import (
	"net/http"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type FriendRequestHandler struct {
	gw    *gateway.Client
	store *store.Store
}

func NewFriendRequestHandler(gw *gateway.Client, st *store.Store) *FriendRequestHandler {
	return &FriendRequestHandler{gw: gw, store: st}
}

// Send handles POST /friend-requests
func (h *FriendRequestHandler) Send(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()
	receiverID := r.PostFormValue("receiver")
	if receiverID == "" {
		http.Error(w, "missing receiver", http.StatusBadRequest)
		return
	}

	if _, err := h.gw.SendFriendRequest(r.Context(), viewer.ID, receiverID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, backTo(r, "/users"))
		return
	}
	httputil.AddNotice(w, r, view.NoticeInfo, "Friend request sent.")
	httputil.Redirect(w, r, backTo(r, "/users"))
}

// Accept handles POST /friend-requests/accept
// Accepting adds a mutual follow on the backend, so the session user is
// refreshed to pick up the new follow list.
func (h *FriendRequestHandler) Accept(w http.ResponseWriter, r *http.Request) {
	initiatorID := r.PostFormValue("initiator")
	if initiatorID == "" {
		http.Error(w, "missing initiator", http.StatusBadRequest)
		return
	}

	if _, err := h.gw.AcceptFriendRequest(r.Context(), initiatorID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, backTo(r, "/notifications"))
		return
	}

	if me, err := h.gw.CurrentUser(r.Context()); err == nil {
		h.store.UpdateUser(*me)
	}
	httputil.AddNotice(w, r, view.NoticeInfo, "Friend request accepted.")
	httputil.Redirect(w, r, backTo(r, "/notifications"))
}

// Decline handles POST /friend-requests/decline
func (h *FriendRequestHandler) Decline(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	if _, err := h.gw.DeclineFriendRequest(r.Context(), viewer.ID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, backTo(r, "/notifications"))
		return
	}
	httputil.AddNotice(w, r, view.NoticeInfo, "Friend request declined.")
	httputil.Redirect(w, r, backTo(r, "/notifications"))
}

// Cancel handles POST /friend-requests/cancel
func (h *FriendRequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()
	receiverID := r.PostFormValue("receiver")
	if receiverID == "" {
		http.Error(w, "missing receiver", http.StatusBadRequest)
		return
	}

	if err := h.gw.CancelFriendRequest(r.Context(), viewer.ID, receiverID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, backTo(r, "/users"))
		return
	}
	httputil.AddNotice(w, r, view.NoticeInfo, "Friend request cancelled.")
	httputil.Redirect(w, r, backTo(r, "/users"))
}
