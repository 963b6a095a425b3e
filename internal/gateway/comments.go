package gateway

import (
	"context"

	"socialnet-client/internal/model"
)

// CreateComment posts a new top-level comment and returns the created node.
func (c *Client) CreateComment(ctx context.Context, req model.CreateCommentRequest) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.Comment{}).
		Post("/comments")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}

// ReplyToComment creates a nested reply. The backend returns the parent
// comment with the new reply already present in its reply list; the caller
// replaces its cached parent with this object.
func (c *Client) ReplyToComment(ctx context.Context, req model.ReplyCommentRequest) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.Comment{}).
		Post("/comments/reply")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}

// CommentsForPost returns the top-level comments of a post. Replies may be
// shallow; fetch each by id to hydrate a subtree.
func (c *Client) CommentsForPost(ctx context.Context, postID string) ([]model.Comment, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.Comment{}).
		Get("/comments/post/" + postID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.Comment), nil
}

func (c *Client) Comment(ctx context.Context, commentID string) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetResult(&model.Comment{}).
		Get("/comments/" + commentID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}

func (c *Client) UpdateComment(ctx context.Context, commentID string, req model.CreateCommentRequest) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.Comment{}).
		Put("/comments/" + commentID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	res, err := c.r(ctx).Delete("/comments/" + commentID)
	return c.check(res, err)
}

// LikeComment toggles the viewer's like on a comment and returns the echoed
// comment, which is the new source of truth for both reaction sets.
func (c *Client) LikeComment(ctx context.Context, commentID, userID string) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetBody(model.ReactToCommentRequest{CommentID: commentID, UserID: userID}).
		SetResult(&model.Comment{}).
		Post("/comments/like")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}

func (c *Client) DislikeComment(ctx context.Context, commentID, userID string) (*model.Comment, error) {
	res, err := c.r(ctx).
		SetBody(model.ReactToCommentRequest{CommentID: commentID, UserID: userID}).
		SetResult(&model.Comment{}).
		Post("/comments/dislike")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Comment), nil
}
