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

type NotificationHandler struct {
	gw    *gateway.Client
	store *store.Store
}

type notificationsData struct {
	Notifications []model.Notification
}

func NewNotificationHandler(gw *gateway.Client, st *store.Store) *NotificationHandler {
	return &NotificationHandler{gw: gw, store: st}
}

// List handles GET /notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.gw.Notifications(r.Context())
	if err != nil {
		surfaceError(w, r, err)
		notifications = nil
	}

	page := newPage(w, r, h.store, "Notifications")
	page.Data = notificationsData{Notifications: notifications}
	httputil.Render(w, http.StatusOK, "notifications", page)
}

// MarkRead handles POST /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.gw.MarkNotificationRead(r.Context(), id); err != nil {
		surfaceError(w, r, err)
	}
	httputil.Redirect(w, r, "/notifications")
}

// ReadAll handles POST /notifications/read-all
func (h *NotificationHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	if err := h.gw.MarkAllNotificationsRead(r.Context()); err != nil {
		surfaceError(w, r, err)
	}
	httputil.Redirect(w, r, "/notifications")
}

// ConfirmDeleteAll handles GET /notifications/delete-all
func (h *NotificationHandler) ConfirmDeleteAll(w http.ResponseWriter, r *http.Request) {
	renderConfirm(w, r, h.store, confirmData{
		Message:   "This will permanently delete all of your notifications.",
		Action:    "/notifications/delete-all",
		CancelURL: "/notifications",
	})
}

// DeleteAll handles POST /notifications/delete-all
func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.gw.DeleteAllNotifications(r.Context()); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/notifications")
		return
	}
	httputil.AddNotice(w, r, view.NoticeInfo, "All notifications deleted.")
	httputil.Redirect(w, r, "/notifications")
}
