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

type CommentHandler struct {
	gw      *gateway.Client
	store   *store.Store
	posts   *PostHandler
	cascade *commenttree.Cascade
	forests *ForestCache
}

func NewCommentHandler(gw *gateway.Client, st *store.Store, posts *PostHandler, forests *ForestCache) *CommentHandler {
	return &CommentHandler{
		gw:      gw,
		store:   st,
		posts:   posts,
		cascade: commenttree.NewCascade(gw),
		forests: forests,
	}
}

// Create handles POST /posts/{id}/comments
// An empty message renders inline next to the comment form and never
// reaches the network.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	user := h.store.CurrentUser()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(r.PostFormValue("message"))
	if message == "" {
		h.posts.renderPost(w, r, postID, http.StatusUnprocessableEntity,
			map[string]string{"message": "Your comment needs to have content."}, nil)
		return
	}
	if len(message) > model.MaxCommentLength {
		h.posts.renderPost(w, r, postID, http.StatusUnprocessableEntity,
			map[string]string{"message": "Your comment is too long."},
			map[string]string{"message": message})
		return
	}

	comment, err := h.gw.CreateComment(r.Context(), model.CreateCommentRequest{
		Message: message,
		Author:  user.ID,
		Post:    postID,
	})
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.forests.Mutate(postID, func(forest []model.Comment) []model.Comment {
		return commenttree.AddTopLevel(forest, *comment)
	})
	httputil.Redirect(w, r, "/posts/"+postID)
}

// Reply handles POST /posts/{id}/comments/{commentID}/reply
// The backend echoes the parent comment with the reply already attached;
// the cached copy of the parent is replaced with that echo.
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	parentID := chi.URLParam(r, "commentID")
	user := h.store.CurrentUser()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(r.PostFormValue("message"))
	if message == "" {
		httputil.AddNotice(w, r, view.NoticeError, "Your reply needs to have content.")
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	parent, err := h.gw.ReplyToComment(r.Context(), model.ReplyCommentRequest{
		Message:       message,
		Author:        user.ID,
		Post:          postID,
		ParentComment: parentID,
	})
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.forests.Mutate(postID, func(forest []model.Comment) []model.Comment {
		merged := mergeCachedReplies(forest, *parent)
		return commenttree.AddReply(forest, merged)
	})
	httputil.Redirect(w, r, "/posts/"+postID)
}

// Edit handles POST /posts/{id}/comments/{commentID}/edit
func (h *CommentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentID")
	user := h.store.CurrentUser()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	message := strings.TrimSpace(r.PostFormValue("message"))
	if message == "" {
		httputil.AddNotice(w, r, view.NoticeError, "The comment needs to contain content.")
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	updated, err := h.gw.UpdateComment(r.Context(), commentID, model.CreateCommentRequest{
		Message: message,
		Author:  user.ID,
		Post:    postID,
	})
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.applyEcho(postID, *updated)
	httputil.AddNotice(w, r, view.NoticeInfo, "Comment updated successfully.")
	httputil.Redirect(w, r, "/posts/"+postID)
}

// ConfirmDelete handles GET /posts/{id}/comments/{commentID}/delete
func (h *CommentHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentID")
	renderConfirm(w, r, h.store, confirmData{
		Message:   "This action cannot be undone. This will permanently delete this comment and all of its replies.",
		Action:    "/posts/" + postID + "/comments/" + commentID + "/delete",
		CancelURL: "/posts/" + postID,
	})
}

// Delete handles POST /posts/{id}/comments/{commentID}/delete
// Descendants are deleted server-side innermost first; the local forest only
// reflects the removal once the whole cascade has succeeded.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentID")

	comment, err := h.lookup(r, postID, commentID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	if err := h.cascade.Delete(r.Context(), comment); err != nil {
		surfaceError(w, r, err)
		httputil.AddNotice(w, r, view.NoticeError, "Failed to delete comment, try again later.")
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.forests.Mutate(postID, func(forest []model.Comment) []model.Comment {
		return commenttree.RemoveRecursive(forest, commentID)
	})
	httputil.AddNotice(w, r, view.NoticeInfo, "Successfully deleted comment.")
	httputil.Redirect(w, r, "/posts/"+postID)
}

// Like handles POST /posts/{id}/comments/{commentID}/like
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentID")
	user := h.store.CurrentUser()

	updated, err := h.gw.LikeComment(r.Context(), commentID, user.ID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.applyEcho(postID, *updated)
	httputil.Redirect(w, r, "/posts/"+postID)
}

// Dislike handles POST /posts/{id}/comments/{commentID}/dislike
func (h *CommentHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	commentID := chi.URLParam(r, "commentID")
	user := h.store.CurrentUser()

	updated, err := h.gw.DislikeComment(r.Context(), commentID, user.ID)
	if err != nil {
		surfaceError(w, r, err)
		httputil.Redirect(w, r, "/posts/"+postID)
		return
	}

	h.applyEcho(postID, *updated)
	httputil.Redirect(w, r, "/posts/"+postID)
}

// lookup reads a fully hydrated comment from the forest cache, falling back
// to the gateway when the forest was never rendered.
func (h *CommentHandler) lookup(r *http.Request, postID, commentID string) (*model.Comment, error) {
	if forest, ok := h.forests.Get(postID); ok {
		if comment, found := commenttree.Find(forest, commentID); found {
			return comment, nil
		}
	}
	return h.gw.Comment(r.Context(), commentID)
}

// applyEcho installs a server-echoed comment into the cached forest:
// top-level nodes through the top-level replace, nested ones at their own
// level. The echo's reply list may be shallow, so cached children win.
func (h *CommentHandler) applyEcho(postID string, echo model.Comment) {
	h.forests.Mutate(postID, func(forest []model.Comment) []model.Comment {
		merged := mergeCachedReplies(forest, echo)
		if echo.ParentComment == nil {
			return commenttree.UpdateInPlace(forest, merged)
		}
		return commenttree.AddReply(forest, merged)
	})
}

// mergeCachedReplies swaps shallow replies in a server echo for the hydrated
// copies already cached, keeping subtree data the echo did not carry.
func mergeCachedReplies(forest []model.Comment, echo model.Comment) model.Comment {
	replies := make([]model.Comment, 0, len(echo.Replies))
	for _, reply := range echo.Replies {
		if cached, ok := commenttree.Find(forest, reply.ID); ok {
			replies = append(replies, *cached)
			continue
		}
		replies = append(replies, reply)
	}
	echo.Replies = replies
	return echo
}
