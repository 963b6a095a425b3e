package view

import (
	"socialnet-client/internal/model"
	"socialnet-client/internal/reaction"
)

// PostView decorates a post with everything the templates need: the viewer's
// reaction state and the score derived from the backend's reaction sets.
type PostView struct {
	model.Post
	Score        int
	State        reaction.State
	CommentCount int
	CanManage    bool
}

func NewPostView(p model.Post, viewer *model.User) PostView {
	pv := PostView{
		Post:         p,
		Score:        reaction.Score(p.Likes, p.Dislikes),
		CommentCount: len(p.Comments),
	}
	if viewer != nil {
		pv.State = reaction.StateOf(p.Likes, p.Dislikes, viewer.ID)
		pv.CanManage = viewer.ID == p.Author.ID || viewer.Admin
	}
	return pv
}

func NewPostViews(posts []model.Post, viewer *model.User) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostView(p, viewer))
	}
	return out
}

// CommentView mirrors PostView for a comment subtree. PostID carries the
// owning post into the nested form actions.
type CommentView struct {
	model.Comment
	PostID    string
	Score     int
	State     reaction.State
	CanManage bool
	Children  []CommentView
}

func NewCommentViews(forest []model.Comment, postID string, viewer *model.User) []CommentView {
	out := make([]CommentView, 0, len(forest))
	for _, c := range forest {
		cv := CommentView{
			Comment: c,
			PostID:  postID,
			Score:   reaction.Score(c.Likes, c.Dislikes),
		}
		if viewer != nil {
			cv.State = reaction.StateOf(c.Likes, c.Dislikes, viewer.ID)
			cv.CanManage = viewer.ID == c.Author.ID || viewer.Admin
		}
		cv.Children = NewCommentViews(c.Replies, postID, viewer)
		out = append(out, cv)
	}
	return out
}

// UserView decorates a listed user with the viewer's follow relationship.
type UserView struct {
	model.User
	Followed bool
}

func NewUserViews(users []model.User, viewer *model.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		uv := UserView{User: u}
		if viewer != nil {
			uv.Followed = viewer.IsFollowing(u.ID)
		}
		out = append(out, uv)
	}
	return out
}
