package view

import (
	"testing"

	"socialnet-client/internal/model"
)

func post(body string, author model.User) model.Post {
	return model.Post{Body: body, Author: author}
}

func TestFilterPosts(t *testing.T) {
	alice := model.User{Firstname: "Alice", Lastname: "Nguyen", Username: "alice_n"}
	bob := model.User{Firstname: "Bob", Lastname: "Tran", Username: "bobby"}
	posts := []model.Post{
		post("Hiking in the mountains", alice),
		post("New coffee place downtown", bob),
		post("Weekend plans", alice),
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query returns everything", "", 3},
		{"matches author username case-insensitively", "ALICE_N", 2},
		{"matches author last name", "tran", 1},
		{"matches body substring", "coffee", 1},
		{"no match", "zzz", 0},
		{"surrounding whitespace is ignored", "  coffee  ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPosts(posts, tt.query)
			if len(got) != tt.want {
				t.Errorf("FilterPosts(%q) returned %d posts, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestFilterUsers(t *testing.T) {
	users := []model.User{
		{Firstname: "Alice", Lastname: "Nguyen", Username: "alice_n"},
		{Firstname: "Bob", Lastname: "Tran", Username: "bobby"},
	}

	if got := FilterUsers(users, "NGU"); len(got) != 1 || got[0].Username != "alice_n" {
		t.Errorf("FilterUsers(NGU) = %v, want alice_n only", got)
	}
	if got := FilterUsers(users, ""); len(got) != 2 {
		t.Errorf("empty query must return all users, got %d", len(got))
	}
	if got := FilterUsers(users, "bob"); len(got) != 1 || got[0].Username != "bobby" {
		t.Errorf("FilterUsers(bob) = %v, want bobby only", got)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Alice", "Nguyen", "AN"},
		{"alice", "nguyen", "AN"},
		{"", "Nguyen", "AN"},
		{"Alice", "", "AU"},
		{"", "", "AU"},
		{"Éva", "Øberg", "ÉØ"},
		{"émile", "zola", "ÉZ"},
		{"\xff", "Nguyen", "AN"},
	}
	for _, tt := range tests {
		if got := Initials(tt.first, tt.last); got != tt.want {
			t.Errorf("Initials(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}
