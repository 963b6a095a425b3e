package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialnet-client/internal/handler"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/store"
	sessionmw "socialnet-client/internal/transport/http/middleware"
	"socialnet-client/internal/view"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	Store                *store.Store
	AuthHandler          *handler.AuthHandler
	FeedHandler          *handler.FeedHandler
	PostHandler          *handler.PostHandler
	CommentHandler       *handler.CommentHandler
	UserHandler          *handler.UserHandler
	ProfileHandler       *handler.ProfileHandler
	FriendRequestHandler *handler.FriendRequestHandler
	NotificationHandler  *handler.NotificationHandler
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/static/app.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(view.Stylesheet))
	})

	st := cfg.Store

	// Public routes - no session required
	r.Group(func(r chi.Router) {
		r.Use(sessionmw.RedirectIfLoggedIn(st))

		r.Get("/login", cfg.AuthHandler.ShowLogin)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Get("/register", cfg.AuthHandler.ShowRegister)
		r.Post("/register", cfg.AuthHandler.Register)
	})

	// Logout stays reachable while the session-expiry dialog is up
	r.Post("/logout", cfg.AuthHandler.Logout)

	// Protected routes - require a logged-in session
	r.Group(func(r chi.Router) {
		r.Use(sessionmw.RequireLogin(st))
		r.Use(sessionmw.SessionGuard(st))

		r.Get("/", cfg.FeedHandler.Home)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", cfg.PostHandler.List)
			r.Post("/", cfg.FeedHandler.CreatePost)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.PostHandler.Show)
				r.Get("/edit", cfg.PostHandler.ShowEdit)
				r.Post("/edit", cfg.PostHandler.Edit)
				r.Get("/delete", cfg.PostHandler.ConfirmDelete)
				r.Post("/delete", cfg.PostHandler.Delete)
				r.Post("/like", cfg.PostHandler.Like)
				r.Post("/dislike", cfg.PostHandler.Dislike)

				r.Post("/comments", cfg.CommentHandler.Create)
				r.Route("/comments/{commentID}", func(r chi.Router) {
					r.Post("/reply", cfg.CommentHandler.Reply)
					r.Post("/edit", cfg.CommentHandler.Edit)
					r.Get("/delete", cfg.CommentHandler.ConfirmDelete)
					r.Post("/delete", cfg.CommentHandler.Delete)
					r.Post("/like", cfg.CommentHandler.Like)
					r.Post("/dislike", cfg.CommentHandler.Dislike)
				})
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", cfg.UserHandler.List)
			r.Get("/{id}", cfg.UserHandler.Show)
			r.Post("/{id}/follow", cfg.UserHandler.Follow)
			r.Get("/{id}/unfollow", cfg.UserHandler.ConfirmUnfollow)
			r.Post("/{id}/unfollow", cfg.UserHandler.Unfollow)
		})
		r.Get("/following", cfg.UserHandler.Following)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", cfg.ProfileHandler.Show)
			r.Get("/edit", cfg.ProfileHandler.ShowEdit)
			r.Post("/edit", cfg.ProfileHandler.Edit)
			r.Post("/avatar", cfg.ProfileHandler.Avatar)
			r.Get("/delete", cfg.ProfileHandler.ConfirmDelete)
			r.Post("/delete", cfg.ProfileHandler.Delete)
		})

		r.Route("/friend-requests", func(r chi.Router) {
			r.Post("/", cfg.FriendRequestHandler.Send)
			r.Post("/accept", cfg.FriendRequestHandler.Accept)
			r.Post("/decline", cfg.FriendRequestHandler.Decline)
			r.Post("/cancel", cfg.FriendRequestHandler.Cancel)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.NotificationHandler.List)
			r.Post("/{id}/read", cfg.NotificationHandler.MarkRead)
			r.Post("/read-all", cfg.NotificationHandler.ReadAll)
			r.Get("/delete-all", cfg.NotificationHandler.ConfirmDeleteAll)
			r.Post("/delete-all", cfg.NotificationHandler.DeleteAll)
		})
	})

	return r
}
