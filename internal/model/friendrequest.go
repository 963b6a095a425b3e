package model

import (
	"errors"
	"time"
)

// Friend request statuses
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

// FriendRequest represents a friend request between two users.
// Sender and receiver travel as user ids.
type FriendRequest struct {
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SendFriendRequest is the request body for sending a friend request.
type SendFriendRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

// CancelFriendRequest is the request body for cancelling a pending request.
type CancelFriendRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

// AcceptFriendRequest is the request body for accepting a pending request.
type AcceptFriendRequest struct {
	InitiatorID string `json:"initiatorId"`
}

// Friend request errors
var (
	ErrFriendRequestNotFound = errors.New("friend request not found")
)
