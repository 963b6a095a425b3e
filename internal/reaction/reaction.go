// Package reaction models the tri-state like/dislike control. The two
// backend reaction sets collapse into a single tagged state per
// (viewer, target) pair so mutual exclusion is structural, not conventional.
package reaction

import (
	"github.com/samber/lo"

	"socialnet-client/internal/model"
)

type State int

const (
	Neutral State = iota
	Liked
	Disliked
)

func (s State) String() string {
	switch s {
	case Liked:
		return "liked"
	case Disliked:
		return "disliked"
	default:
		return "neutral"
	}
}

// StateOf derives the viewer's state from the target's reaction sets. The
// backend guarantees a user appears in at most one of the two sets.
func StateOf(likes, dislikes []model.User, viewerID string) State {
	if lo.SomeBy(likes, func(u model.User) bool { return u.ID == viewerID }) {
		return Liked
	}
	if lo.SomeBy(dislikes, func(u model.User) bool { return u.ID == viewerID }) {
		return Disliked
	}
	return Neutral
}

// Next returns the state that results from pressing a reaction control:
// pressing the current reaction toggles off to neutral, anything else
// switches to the pressed polarity.
func Next(current, pressed State) State {
	if pressed == current {
		return Neutral
	}
	return pressed
}

// Score is the displayed reaction total. It is always recomputed from the
// authoritative object the backend echoed after a mutation, never predicted.
func Score(likes, dislikes []model.User) int {
	return len(likes) - len(dislikes)
}
