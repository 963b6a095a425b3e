package gateway

import (
	"context"

	"socialnet-client/internal/model"
)

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	res, err := c.r(ctx).
		SetResult(&[]model.Notification{}).
		Get("/notifications")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]model.Notification), nil
}

// MarkNotificationRead marks one notification read and echoes it back.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) (*model.Notification, error) {
	res, err := c.r(ctx).
		SetResult(&model.Notification{}).
		Put("/notifications/" + notificationID + "/read")
	if err := c.check(res, err); err != nil {
		return nil, err
	}
	return res.Result().(*model.Notification), nil
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	res, err := c.r(ctx).Put("/notifications/read/all")
	return c.check(res, err)
}

func (c *Client) DeleteAllNotifications(ctx context.Context) error {
	res, err := c.r(ctx).Delete("/notifications/")
	return c.check(res, err)
}
