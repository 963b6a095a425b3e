package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/media"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type ProfileHandler struct {
	gw       *gateway.Client
	store    *store.Store
	uploader media.Uploader
}

func NewProfileHandler(gw *gateway.Client, st *store.Store, uploader media.Uploader) *ProfileHandler {
	return &ProfileHandler{gw: gw, store: st, uploader: uploader}
}

// Show handles GET /profile, the viewer's own page.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	posts, err := h.gw.PostsByUser(r.Context(), viewer.ID)
	if err != nil {
		surfaceError(w, r, err)
		posts = nil
	}

	page := newPage(w, r, h.store, "My profile")
	page.Data = profileData{
		Profile: *viewer,
		Own:     true,
		Posts:   view.NewPostViews(posts, viewer),
	}
	httputil.Render(w, http.StatusOK, "profile", page)
}

// ShowEdit handles GET /profile/edit
func (h *ProfileHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()
	page := newPage(w, r, h.store, "Edit profile")
	page.Form = map[string]string{
		"firstname":   viewer.Firstname,
		"lastname":    viewer.Lastname,
		"email":       viewer.Email,
		"description": deref(viewer.Description),
	}
	httputil.Render(w, http.StatusOK, "profile_edit", page)
}

// Edit handles POST /profile/edit
// Field errors render inline on the edit form; the request only goes out
// once every required field is present.
func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	firstname := strings.TrimSpace(r.PostFormValue("firstname"))
	lastname := strings.TrimSpace(r.PostFormValue("lastname"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	description := strings.TrimSpace(r.PostFormValue("description"))

	fieldErrors := map[string]string{}
	if firstname == "" {
		fieldErrors["firstname"] = "First name is required."
	}
	if lastname == "" {
		fieldErrors["lastname"] = "Last name is required."
	}
	if email == "" {
		fieldErrors["email"] = "Email is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		fieldErrors["email"] = "Enter a valid email address."
	}
	if len(fieldErrors) > 0 {
		page := newPage(w, r, h.store, "Edit profile")
		page.Errors = fieldErrors
		page.Form = map[string]string{
			"firstname":   firstname,
			"lastname":    lastname,
			"email":       email,
			"description": description,
		}
		httputil.Render(w, http.StatusUnprocessableEntity, "profile_edit", page)
		return
	}

	req := model.UpdateUserRequest{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     email,
		Admin:     viewer.Admin,
	}
	if description != "" {
		req.Description = &description
	}

	updated, err := h.gw.UpdateUser(r.Context(), viewer.ID, req)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/profile/edit")
		return
	}

	h.store.UpdateUser(*updated)
	httputil.AddNotice(w, r, view.NoticeInfo, "Profile updated successfully.")
	httputil.Redirect(w, r, "/profile")
}

// Avatar handles POST /profile/avatar
// The image is normalized to a square JPEG before upload, then the profile
// picture URL is saved on the backend.
func (h *ProfileHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	if err := r.ParseMultipartForm(model.MaxAvatarSizeBytes); err != nil {
		h.avatarError(w, r, "Could not read the uploaded file.")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.avatarError(w, r, "Choose an image to upload.")
		return
	}
	defer file.Close()

	data, _, err := media.ReadImage(file, header.Header.Get("Content-Type"), model.MaxAvatarSizeBytes)
	if err != nil {
		h.avatarError(w, r, uploadErrorMessage(err))
		return
	}
	normalized, err := media.NormalizeAvatar(data)
	if err != nil {
		h.avatarError(w, r, "Could not process the image.")
		return
	}

	result, err := h.uploader.UploadImage(r.Context(), model.AvatarFolder, header.Filename, normalized, model.ContentTypeJPEG)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/profile/edit")
		return
	}

	updated, err := h.gw.UpdateUser(r.Context(), viewer.ID, model.UpdateUserRequest{
		Firstname:      viewer.Firstname,
		Lastname:       viewer.Lastname,
		Email:          viewer.Email,
		Description:    viewer.Description,
		ProfilePicture: &result.URL,
		Admin:          viewer.Admin,
	})
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/profile/edit")
		return
	}

	h.store.UpdateUser(*updated)
	httputil.AddNotice(w, r, view.NoticeInfo, "Profile picture updated.")
	httputil.Redirect(w, r, "/profile")
}

// ConfirmDelete handles GET /profile/delete
func (h *ProfileHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	renderConfirm(w, r, h.store, confirmData{
		Message:   "This action cannot be undone. This will permanently delete your account, posts and comments.",
		Action:    "/profile/delete",
		CancelURL: "/profile",
	})
}

// Delete handles POST /profile/delete
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	viewer := h.store.CurrentUser()

	if err := h.gw.DeleteUser(r.Context(), viewer.ID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/profile")
		return
	}

	h.store.Logout()
	httputil.AddNotice(w, r, view.NoticeInfo, "Your account has been deleted.")
	httputil.Redirect(w, r, "/login")
}

func (h *ProfileHandler) avatarError(w http.ResponseWriter, r *http.Request, msg string) {
	viewer := h.store.CurrentUser()
	page := newPage(w, r, h.store, "Edit profile")
	page.Errors = map[string]string{"avatar": msg}
	page.Form = map[string]string{
		"firstname":   viewer.Firstname,
		"lastname":    viewer.Lastname,
		"email":       viewer.Email,
		"description": deref(viewer.Description),
	}
	httputil.Render(w, http.StatusUnprocessableEntity, "profile_edit", page)
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrFileTooLarge):
		return "The image is too large."
	case errors.Is(err, model.ErrInvalidImageType):
		return "Only JPEG, PNG, GIF and WebP images are supported."
	default:
		return "Could not read the uploaded file."
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
