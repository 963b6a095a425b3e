package model

import (
	"errors"
	"time"
)

// Post represents a post with its reaction sets and comment references.
// The like and dislike sets each hold full user objects; the backend
// guarantees a user appears in at most one of the two at a time.
type Post struct {
	ID        string    `json:"_id"`
	Author    User      `json:"author"`
	Body      string    `json:"body"`
	Image     string    `json:"image,omitempty"`
	Likes     []User    `json:"likes"`
	Dislikes  []User    `json:"dislikes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostRequest is the request body for creating a post. The image URL
// comes from the media uploader, not from the backend.
type CreatePostRequest struct {
	Body  string `json:"body"`
	Image string `json:"image,omitempty"`
}

// ReactToPostRequest identifies the post being liked or disliked.
type ReactToPostRequest struct {
	ID string `json:"_id"`
}

// Post constraints
const (
	MaxPostBodyLength = 2200
)

// Post errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrBodyRequired  = errors.New("post body is required")
	ErrBodyTooLong   = errors.New("post body too long")
	ErrNotPostAuthor = errors.New("not the author of this post")
)
