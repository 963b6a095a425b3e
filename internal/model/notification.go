package model

import (
	"time"
)

// Notification types
const (
	NotificationTypeLike           = "like"
	NotificationTypeDislike        = "dislike"
	NotificationTypeFollow         = "follow"
	NotificationTypeComment        = "comment"
	NotificationTypeLikeComment    = "like_comment"
	NotificationTypeDislikeComment = "dislike_comment"
	NotificationTypeReplyComment   = "reply_comment"
	NotificationTypeFriendRequest  = "friend_request"
)

// Notification represents a single notification for the current user.
type Notification struct {
	ID        string    `json:"_id"`
	User      User      `json:"user"`      // Recipient
	Type      string    `json:"type"`      // One of the NotificationType constants
	Initiator User      `json:"initiator"` // Who triggered it
	Post      *Post     `json:"post,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Text renders the notification body for display, keyed on the type tag.
func (n Notification) Text() string {
	name := n.Initiator.FullName()
	if name == "" {
		name = n.Initiator.Username
	}
	switch n.Type {
	case NotificationTypeLike:
		return name + " liked your post"
	case NotificationTypeDislike:
		return name + " disliked your post"
	case NotificationTypeFollow:
		return name + " started following you"
	case NotificationTypeComment:
		return name + " commented on your post"
	case NotificationTypeLikeComment:
		return name + " liked your comment"
	case NotificationTypeDislikeComment:
		return name + " disliked your comment"
	case NotificationTypeReplyComment:
		return name + " replied to your comment"
	case NotificationTypeFriendRequest:
		return name + " sent you a friend request"
	default:
		return name + " interacted with you"
	}
}
