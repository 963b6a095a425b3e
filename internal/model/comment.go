package model

import (
	"errors"
	"time"
)

// Comment represents a single node in a post's comment forest. Post and
// parent arrive populated; parent is nil on top-level comments. Replies may
// be returned shallow (id only) by some endpoints; callers that need a full
// subtree fetch each reply by id.
type Comment struct {
	ID            string    `json:"_id"`
	Message       string    `json:"message"`
	Author        User      `json:"author"`
	Post          *Post     `json:"post,omitempty"`
	ParentComment *Comment  `json:"parentComment,omitempty"`
	Likes         []User    `json:"likes"`
	Dislikes      []User    `json:"dislikes"`
	Replies       []Comment `json:"replies"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateCommentRequest is the request body for a top-level comment.
// Author and post travel as ids.
type CreateCommentRequest struct {
	Message string `json:"message"`
	Author  string `json:"author"`
	Post    string `json:"post"`
}

// ReplyCommentRequest is the request body for replying to a comment.
type ReplyCommentRequest struct {
	Message       string `json:"message"`
	Author        string `json:"author"`
	Post          string `json:"post"`
	ParentComment string `json:"parentComment"`
}

// ReactToCommentRequest identifies the comment and the reacting user.
type ReactToCommentRequest struct {
	CommentID string `json:"commentId"`
	UserID    string `json:"userId"`
}

// Comment constraints
const (
	MaxCommentLength = 2200
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrMessageRequired = errors.New("comment message is required")
	ErrMessageTooLong  = errors.New("comment message too long")
)
