package view

import (
	"strings"

	"github.com/samber/lo"

	"socialnet-client/internal/model"
)

// FilterPosts narrows a post list to entries whose author names, author
// username, or body contain the query, case-insensitively. An empty query
// returns the input unchanged.
func FilterPosts(posts []model.Post, query string) []model.Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	return lo.Filter(posts, func(p model.Post, _ int) bool {
		return containsFold(p.Author.Firstname, q) ||
			containsFold(p.Author.Lastname, q) ||
			containsFold(p.Author.Username, q) ||
			containsFold(p.Body, q)
	})
}

// FilterUsers narrows a user list by first name, last name, or username.
func FilterUsers(users []model.User, query string) []model.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}
	return lo.Filter(users, func(u model.User, _ int) bool {
		return containsFold(u.Firstname, q) ||
			containsFold(u.Lastname, q) ||
			containsFold(u.Username, q)
	})
}

// containsFold expects the needle already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
