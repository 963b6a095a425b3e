package gateway

import (
	"context"

	"socialnet-client/internal/model"
)

func (c *Client) SendFriendRequest(ctx context.Context, senderID, receiverID string) (*model.FriendRequest, error) {
	res, err := c.r(ctx).
		SetBody(model.SendFriendRequest{SenderID: senderID, ReceiverID: receiverID}).
		SetResult(&model.FriendRequest{}).
		Post("/friend-request")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.FriendRequest), nil
}

func (c *Client) AcceptFriendRequest(ctx context.Context, initiatorID string) (*model.FriendRequest, error) {
	res, err := c.r(ctx).
		SetBody(model.AcceptFriendRequest{InitiatorID: initiatorID}).
		SetResult(&model.FriendRequest{}).
		Post("/friend-request/accept")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.FriendRequest), nil
}

func (c *Client) DeclineFriendRequest(ctx context.Context, receiverID string) (*model.FriendRequest, error) {
	res, err := c.r(ctx).
		SetBody(receiverID).
		SetResult(&model.FriendRequest{}).
		Post("/friend-request/decline")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.FriendRequest), nil
}

func (c *Client) CancelFriendRequest(ctx context.Context, senderID, receiverID string) error {
	res, err := c.r(ctx).
		SetBody(model.CancelFriendRequest{SenderID: senderID, ReceiverID: receiverID}).
		Post("/friend-request/cancel")
	return c.check(res, err)
}

// FriendRequestsFor lists the requests involving the given user.
func (c *Client) FriendRequestsFor(ctx context.Context, userID string) ([]model.FriendRequest, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.FriendRequest{}).
		Get("/friend-request/" + userID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.FriendRequest), nil
}

// FriendRequestStatus returns the state of the request between the current
// user and the given user, if any.
func (c *Client) FriendRequestStatus(ctx context.Context, otherID string) (*model.FriendRequest, error) {
	res, err := c.r(ctx).
		SetResult(&model.FriendRequest{}).
		Get("/friend-request/status/" + otherID)
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.FriendRequest), nil
}
