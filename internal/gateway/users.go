package gateway

import (
	"context"

	"socialnet-client/internal/model"
)

// Login authenticates against the backend. The session credential arrives as
// a cookie on the response and lives in the client's jar from then on.
func (c *Client) Login(ctx context.Context, credentials model.LoginRequest) (*model.User, error) {
	res, err := c.r(ctx).
		SetBody(credentials).
		SetResult(&model.User{}).
		Post("/users/login")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

// Logout tells the backend to invalidate the session. Fire-and-forget from
// the store's point of view; failures are logged, not surfaced.
func (c *Client) Logout(ctx context.Context) error {
	res, err := c.r(ctx).Post("/users/logout")
	return c.check(res, err)
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.User{}).
		Post("/users/register")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

// CurrentUser fetches the user the session belongs to.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	res, err := c.r(ctx).
		SetResult(&model.User{}).
		Get("/users/")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.User{}).
		Get("/users/all/")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.User), nil
}

// UsersNotFollowedBy returns the users the given user does not follow yet,
// used for the "who to follow" suggestions.
func (c *Client) UsersNotFollowedBy(ctx context.Context, user *model.User) ([]model.User, error) {
	res, err := c.r(ctx).
		SetBody(map[string]*model.User{"user": user}).
		SetResult(&[]model.User{}).
		Post("/users/not-followed")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.User), nil
}

func (c *Client) UserByID(ctx context.Context, userID string) (*model.User, error) {
	res, err := c.r(ctx).
		SetResult(&model.User{}).
		Get("/users/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

// UpdateUser edits a profile and returns the backend's echo of the user.
func (c *Client) UpdateUser(ctx context.Context, userID string, req model.UpdateUserRequest) (*model.User, error) {
	res, err := c.r(ctx).
		SetBody(req).
		SetResult(&model.User{}).
		Put("/users/edit/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	res, err := c.r(ctx).Delete("/users/" + userID)
	return c.check(res, err)
}

// Follow adds the given user to the current user's follow list and returns
// the updated current user. The echoed object is the source of truth.
func (c *Client) Follow(ctx context.Context, userID string) (*model.User, error) {
	res, err := c.r(ctx).
		SetResult(&model.User{}).
		Get("/users/follow/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}

func (c *Client) Unfollow(ctx context.Context, userID string) (*model.User, error) {
	res, err := c.r(ctx).
		SetResult(&model.User{}).
		Get("/users/unfollow/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.User), nil
}
