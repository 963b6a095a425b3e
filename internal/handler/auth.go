package handler

import (
	"net/http"
	"strings"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type AuthHandler struct {
	gw    *gateway.Client
	store *store.Store
}

func NewAuthHandler(gw *gateway.Client, st *store.Store) *AuthHandler {
	return &AuthHandler{gw: gw, store: st}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	httputil.Render(w, http.StatusOK, "login", newPage(w, r, h.store, "Log in"))
}

// Login handles POST /login
// Validation failures render inline and never reach the network.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	fieldErrors := map[string]string{}
	if email == "" {
		fieldErrors["email"] = "Email is required."
	}
	if password == "" {
		fieldErrors["password"] = "Password is required."
	}
	if len(fieldErrors) > 0 {
		page := newPage(w, r, h.store, "Log in")
		page.Errors = fieldErrors
		page.Form = map[string]string{"email": email}
		httputil.Render(w, http.StatusUnprocessableEntity, "login", page)
		return
	}

	user, err := h.gw.Login(r.Context(), model.LoginRequest{Email: email, Password: password})
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/login")
		return
	}

	h.store.Login(user)
	httputil.Redirect(w, r, "/")
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	httputil.Render(w, http.StatusOK, "register", newPage(w, r, h.store, "Register"))
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := model.RegisterRequest{
		Firstname:       strings.TrimSpace(r.PostFormValue("firstname")),
		Lastname:        strings.TrimSpace(r.PostFormValue("lastname")),
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	fieldErrors := map[string]string{}
	if req.Firstname == "" {
		fieldErrors["firstname"] = "First name is required."
	}
	if req.Lastname == "" {
		fieldErrors["lastname"] = "Last name is required."
	}
	if req.Username == "" {
		fieldErrors["username"] = "Username is required."
	}
	if req.Email == "" {
		fieldErrors["email"] = "Email is required."
	}
	if req.Password == "" {
		fieldErrors["password"] = "Password is required."
	}
	if req.ConfirmPassword != req.Password {
		fieldErrors["confirmPassword"] = "Passwords do not match."
	}
	if len(fieldErrors) > 0 {
		page := newPage(w, r, h.store, "Register")
		page.Errors = fieldErrors
		page.Form = map[string]string{
			"firstname": req.Firstname,
			"lastname":  req.Lastname,
			"username":  req.Username,
			"email":     req.Email,
		}
		httputil.Render(w, http.StatusUnprocessableEntity, "register", page)
		return
	}

	if _, err := h.gw.Register(r.Context(), req); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/register")
		return
	}

	httputil.AddNotice(w, r, view.NoticeInfo, "Account created, you can log in now.")
	httputil.Redirect(w, r, "/login")
}

// Logout handles POST /logout
// Clears local state immediately; the backend is notified fire-and-forget.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	httputil.Redirect(w, r, "/login")
}
