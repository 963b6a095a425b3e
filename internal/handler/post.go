package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"socialnet-client/internal/commenttree"
	"socialnet-client/internal/gateway"
	"socialnet-client/internal/httputil"
	"socialnet-client/internal/model"
	"socialnet-client/internal/store"
	"socialnet-client/internal/view"
)

type PostHandler struct {
	gw      *gateway.Client
	store   *store.Store
	forests *ForestCache
}

func NewPostHandler(gw *gateway.Client, st *store.Store, forests *ForestCache) *PostHandler {
	return &PostHandler{gw: gw, store: st, forests: forests}
}

type postListData struct {
	Posts []view.PostView
}

// List handles GET /posts
// The full post list is fetched once; the substring filter is applied
// client-side, case-insensitively, over author names and body.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	posts, err := h.gw.AllPosts(r.Context())
	if err != nil {
		surfaceError(w, r, err)
	}
	posts = view.FilterPosts(posts, query)

	page := newPage(w, r, h.store, "All posts")
	page.Query = query
	page.Data = postListData{Posts: view.NewPostViews(posts, h.store.CurrentUser())}
	httputil.Render(w, http.StatusOK, "posts", page)
}

type postDetailData struct {
	Post     view.PostView
	Comments []view.CommentView
}

// Show handles GET /posts/{id}
func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.renderPost(w, r, chi.URLParam(r, "id"), http.StatusOK, nil, nil)
}

// renderPost is shared with the comment handler so comment-form validation
// failures re-render the post page with inline errors.
func (h *PostHandler) renderPost(w http.ResponseWriter, r *http.Request, postID string, status int, fieldErrors, form map[string]string) {
	post, err := h.gw.Post(r.Context(), postID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts")
		return
	}

	forest, err := h.forest(r, postID)
	if err != nil {
		surfaceError(w, r, err)
	}

	user := h.store.CurrentUser()
	page := newPage(w, r, h.store, "Post")
	page.Errors = fieldErrors
	page.Form = form
	page.Data = postDetailData{
		Post:     view.NewPostView(*post, user),
		Comments: view.NewCommentViews(forest, postID, user),
	}
	httputil.Render(w, status, "post", page)
}

// forest returns the cached comment forest for a post, fetching and
// hydrating it on first use. Mutations update the cache through the
// synchronizer, so a cache hit reflects everything this client did.
func (h *PostHandler) forest(r *http.Request, postID string) ([]model.Comment, error) {
	if forest, ok := h.forests.Get(postID); ok {
		return forest, nil
	}

	comments, err := h.gw.CommentsForPost(r.Context(), postID)
	if err != nil {
		return nil, err
	}
	forest, err := commenttree.Hydrate(r.Context(), h.gw, comments)
	if err != nil {
		return nil, err
	}

	h.forests.Set(postID, forest)
	return forest, nil
}

// ShowEdit handles GET /posts/{id}/edit
func (h *PostHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	post, err := h.gw.Post(r.Context(), postID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts")
		return
	}

	page := newPage(w, r, h.store, "Edit post")
	page.Data = postDetailData{Post: view.NewPostView(*post, h.store.CurrentUser())}
	httputil.Render(w, http.StatusOK, "post_edit", page)
}

// Edit handles POST /posts/{id}/edit
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	body := strings.TrimSpace(r.PostFormValue("body"))
	if body == "" || len(body) > model.MaxPostBodyLength {
		post, err := h.gw.Post(r.Context(), postID)
		if err != nil {
			surfaceError(w, r, err)
			httputil.Redirect(w, r, "/posts")
			return
		}
		page := newPage(w, r, h.store, "Edit post")
		page.Errors = map[string]string{"body": "The post needs to contain content."}
		page.Data = postDetailData{Post: view.NewPostView(*post, h.store.CurrentUser())}
		httputil.Render(w, http.StatusUnprocessableEntity, "post_edit", page)
		return
	}

	post, err := h.gw.Post(r.Context(), postID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts")
		return
	}

	post.Body = body
	if _, err := h.gw.UpdatePost(r.Context(), post); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	httputil.AddNotice(w, r, view.NoticeInfo, "Post updated successfully.")
	httputil.Redirect(w, r, "/posts/"+postID)
}

// ConfirmDelete handles GET /posts/{id}/delete
// Destructive actions always pass through an explicit confirmation step.
func (h *PostHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	renderConfirm(w, r, h.store, confirmData{
		Message:   "This action cannot be undone. This will permanently delete this post and remove its data from our servers.",
		Action:    "/posts/" + postID + "/delete",
		CancelURL: "/posts/" + postID,
	})
}

// Delete handles POST /posts/{id}/delete
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.gw.DeletePost(r.Context(), postID); err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.forests.Drop(postID)
	httputil.AddNotice(w, r, view.NoticeInfo, "Post deleted.")
	httputil.Redirect(w, r, "/posts")
}

// Like handles POST /posts/{id}/like
// The backend applies the tri-state toggle and echoes the post; the next
// render derives state and score from that echo.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if _, err := h.gw.LikePost(r.Context(), postID); err != nil {
		surfaceError(w, r, err)
	}
	httputil.Redirect(w, r, backTo(r, "/posts/"+postID))
}

// Dislike handles POST /posts/{id}/dislike
func (h *PostHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if _, err := h.gw.DislikePost(r.Context(), postID); err != nil {
		surfaceError(w, r, err)
	}
	httputil.Redirect(w, r, backTo(r, "/posts/"+postID))
}

// backTo sends the browser back where the action was taken, falling back to
// the given path. Only local paths are honored.
func backTo(r *http.Request, fallback string) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return fallback
	}
	if strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//") {
		return ref
	}
	if u, err := r.URL.Parse(ref); err == nil && u.Host == r.Host {
		return u.Path
	}
	return fallback
}
