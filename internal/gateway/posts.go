package gateway

import (
	"context"

	"socialnet-client/internal/model"
)

// FollowedFeed returns the posts of the users the current user follows.
func (c *Client) FollowedFeed(ctx context.Context) ([]model.Post, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.Post{}).
		Get("/posts/feed/followers")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.Post), nil
}

func (c *Client) AllPosts(ctx context.Context) ([]model.Post, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.Post{}).
		Get("/posts/feed/all")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.Post), nil
}

func (c *Client) PostsByUser(ctx context.Context, userID string) ([]model.Post, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.Post{}).
		Get("/posts/user/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.Post), nil
}

func (c *Client) Post(ctx context.Context, postID string) (*model.Post, error) {
	res, err := c.r(ctx).
		SetResult(&model.Post{}).
		Get("/posts/" + postID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Post), nil
}

func (c *Client) AddPost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.Post{}).
		Post("/posts/add")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Post), nil
}

// UpdatePost sends the whole edited post; the backend echoes the stored one.
func (c *Client) UpdatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	res, err := c.r(ctx).
		SetBody(post).
		SetResult(&model.Post{}).
		Put("/posts/edit")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Post), nil
}

func (c *Client) DeletePost(ctx context.Context, postID string) error {
	res, err := c.r(ctx).Delete("/posts/delete/" + postID)
	return c.check(res, err)
}

// LikePost toggles the viewer's like on the post. The backend applies the
// tri-state transition and echoes the post; counts are never predicted
// locally.
func (c *Client) LikePost(ctx context.Context, postID string) (*model.Post, error) {
	res, err := c.r(ctx).
		SetBody(model.ReactToPostRequest{ID: postID}).
		SetResult(&model.Post{}).
		Post("/posts/like")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Post), nil
}

func (c *Client) DislikePost(ctx context.Context, postID string) (*model.Post, error) {
	res, err := c.r(ctx).
		SetBody(model.ReactToPostRequest{ID: postID}).
		SetResult(&model.Post{}).
		Post("/posts/dislike")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Post), nil
}
