package handler

import (
	"net/http"
	"strings"

	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/media"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type FeedHandler struct {
	gw       *gateway.Client
	store    *store.Store
	uploader media.Uploader
}

func NewFeedHandler(gw *gateway.Client, st *store.Store, uploader media.Uploader) *FeedHandler {
	return &FeedHandler{gw: gw, store: st, uploader: uploader}
}

type homeData struct {
	Posts       []view.PostView
	Suggestions []model.User
}

// Home handles GET /
// The feed and the follow suggestions are independent fetches; each failure
// degrades its own section only.
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, nil, nil)
}

func (h *FeedHandler) renderHome(w http.ResponseWriter, r *http.Request, status int, fieldErrors, form map[string]string) {
	user := h.store.CurrentUser()

	var data homeData

	posts, err := h.gw.FollowedFeed(r.Context())
	if err != nil {
		surfaceError(w, r, err)
	} else {
		data.Posts = view.NewPostViews(posts, user)
	}

	suggestions, err := h.gw.UsersNotFollowedBy(r.Context(), user)
	if err != nil {
		surfaceError(w, r, err)
	} else {
		if len(suggestions) > 5 {
			suggestions = suggestions[:5]
		}
		data.Suggestions = suggestions
	}

	page := newPage(w, r, h.store, "Home")
	page.Data = data
	page.Errors = fieldErrors
	page.Form = form
	httputil.Render(w, status, "home", page)
}

// CreatePost handles POST /posts
// The optional image goes to the media host first; its URL is what travels
// to the backend.
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(model.MaxImageSizeBytes); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	body := strings.TrimSpace(r.PostFormValue("body"))

	fieldErrors := map[string]string{}
	if body == "" {
		fieldErrors["body"] = "Your post needs to have content."
	}
	if len(body) > model.MaxPostBodyLength {
		fieldErrors["body"] = "Your post is too long."
	}

	imageURL := ""
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, contentType, readErr := media.ReadImage(file, header.Header.Get("Content-Type"), model.MaxImageSizeBytes)
		if readErr != nil {
			fieldErrors["image"] = "The image must be a valid picture under the size limit."
		} else if len(fieldErrors) == 0 {
			result, upErr := h.uploader.UploadImage(r.Context(), model.PostImageFolder, header.Filename, data, contentType)
			if upErr != nil {
				surfaceError(w, r, upErr)
				httputil.Redirect(w, r, "/")
				return
			}
			imageURL = result.URL
		}
	}

	if len(fieldErrors) > 0 {
		h.renderHome(w, r, http.StatusUnprocessableEntity, fieldErrors, map[string]string{"body": body})
		return
	}

	if _, err := h.gw.AddPost(r.Context(), model.CreatePostRequest{Body: body, Image: imageURL}); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/")
		return
	}

	httputil.AddNotice(w, r, view.NoticeInfo, "Post created.")
	httputil.Redirect(w, r, "/")
}
