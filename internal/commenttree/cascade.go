package commenttree

import (
	"context"
	"fmt"
	"log"

	"socialnet-client/internal/model"
)

// CommentAPI is the slice of the gateway the synchronizer needs.
type CommentAPI interface {
	Comment(ctx context.Context, commentID string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

// Cascade drives server-side deletion of a comment subtree. The backend does
// not cascade on its own: deleting a node orphans its replies, so the client
// walks the subtree and deletes leaves first, one call at a time, the parent
// last. The first failure aborts the walk; callers must only update local
// state after the whole cascade has succeeded.
type Cascade struct {
	api CommentAPI
}

func NewCascade(api CommentAPI) *Cascade {
	return &Cascade{api: api}
}

// Delete removes the comment and all of its descendants, innermost first.
// Replies are re-fetched by id before recursing because list endpoints may
// return them shallow.
func (c *Cascade) Delete(ctx context.Context, comment *model.Comment) error {
	for _, reply := range comment.Replies {
		full, err := c.api.Comment(ctx, reply.ID)
		if err != nil {
			return fmt.Errorf("fetch reply %s: %w", reply.ID, err)
		}
		if err := c.Delete(ctx, full); err != nil {
			return err
		}
	}

	if err := c.api.DeleteComment(ctx, comment.ID); err != nil {
		log.Printf("[CommentTree] Failed to delete comment %s: %v", comment.ID, err)
		return fmt.Errorf("delete comment %s: %w", comment.ID, err)
	}
	return nil
}

// Hydrate fetches full reply objects for every node in the forest, turning
// shallow reply references into complete subtrees.
func Hydrate(ctx context.Context, api CommentAPI, forest []model.Comment) ([]model.Comment, error) {
	out := make([]model.Comment, 0, len(forest))
	for _, c := range forest {
		replies := make([]model.Comment, 0, len(c.Replies))
		for _, reply := range c.Replies {
			full, err := api.Comment(ctx, reply.ID)
			if err != nil {
				return nil, fmt.Errorf("fetch reply %s: %w", reply.ID, err)
			}
			replies = append(replies, *full)
		}

		hydrated, err := Hydrate(ctx, api, replies)
		if err != nil {
			return nil, err
		}
		c.Replies = hydrated
		out = append(out, c)
	}
	return out, nil
}
