// Package commenttree keeps an in-memory forest of comments consistent with
// user actions without re-fetching the whole tree. Every operation is a pure
// structural transform: input forests are never mutated, so a concurrent read
// during a re-render can never observe a half-updated structure.
package commenttree

import (
	"github.com/samber/lo"

	"socialnet-client/internal/model"
)

// AddTopLevel prepends a new root comment to the forest.
func AddTopLevel(forest []model.Comment, comment model.Comment) []model.Comment {
	out := make([]model.Comment, 0, len(forest)+1)
	out = append(out, comment)
	return append(out, forest...)
}

// AddReply installs the parent comment the backend returned after a reply.
// The parent already carries the new reply in its reply list, so the node
// with the matching id is replaced wherever it sits; every other node keeps
// its own children untouched.
func AddReply(forest []model.Comment, parent model.Comment) []model.Comment {
	return lo.Map(forest, func(c model.Comment, _ int) model.Comment {
		if c.ID == parent.ID {
			return parent
		}
		c.Replies = AddReply(c.Replies, parent)
		return c
	})
}

// UpdateInPlace replaces the entry with a matching id at the top level only.
// A caller operating on a nested comment updates the node at its own level.
func UpdateInPlace(forest []model.Comment, updated model.Comment) []model.Comment {
	return lo.Map(forest, func(c model.Comment, _ int) model.Comment {
		if c.ID == updated.ID {
			return updated
		}
		return c
	})
}

// RemoveRecursive rebuilds the forest omitting the comment with the given id,
// applying the same filter to every remaining comment's replies. The forest
// is acyclic and finite, so the recursion terminates.
func RemoveRecursive(forest []model.Comment, commentID string) []model.Comment {
	out := make([]model.Comment, 0, len(forest))
	for _, c := range forest {
		if c.ID == commentID {
			continue
		}
		c.Replies = RemoveRecursive(c.Replies, commentID)
		out = append(out, c)
	}
	return out
}

// Find returns the comment with the given id anywhere in the forest.
func Find(forest []model.Comment, commentID string) (*model.Comment, bool) {
	for i := range forest {
		if forest[i].ID == commentID {
			c := forest[i]
			return &c, true
		}
		if found, ok := Find(forest[i].Replies, commentID); ok {
			return found, ok
		}
	}
	return nil, false
}
