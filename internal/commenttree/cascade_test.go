package commenttree

import (
	"context"
	"errors"
	"testing"

	"socialnet-client/internal/model"
)

// =============================================================================
// MOCK COMMENT API
// =============================================================================

type mockCommentAPI struct {
	commentFn       func(ctx context.Context, commentID string) (*model.Comment, error)
	deleteCommentFn func(ctx context.Context, commentID string) error

	// Track delete order for assertions
	deleted []string
}

func (m *mockCommentAPI) Comment(ctx context.Context, commentID string) (*model.Comment, error) {
	if m.commentFn != nil {
		return m.commentFn(ctx, commentID)
	}
	return nil, model.ErrCommentNotFound
}

func (m *mockCommentAPI) DeleteComment(ctx context.Context, commentID string) error {
	m.deleted = append(m.deleted, commentID)
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, commentID)
	}
	return nil
}

// commentStore answers Comment lookups from a fixed set of full objects,
// the way the backend single-comment endpoint does.
func commentStore(comments ...model.Comment) func(ctx context.Context, id string) (*model.Comment, error) {
	byID := map[string]model.Comment{}
	var index func(cs []model.Comment)
	index = func(cs []model.Comment) {
		for _, c := range cs {
			byID[c.ID] = c
			index(c.Replies)
		}
	}
	index(comments)
	return func(ctx context.Context, id string) (*model.Comment, error) {
		c, ok := byID[id]
		if !ok {
			return nil, model.ErrCommentNotFound
		}
		return &c, nil
	}
}

// =============================================================================
// CASCADE DELETE TESTS
// =============================================================================

func TestCascade_Delete_InnermostFirst(t *testing.T) {
	// ARRANGE: a -> [b -> [c], d]
	tree := comment("a", comment("b", comment("c")), comment("d"))
	api := &mockCommentAPI{commentFn: commentStore(tree)}
	cascade := NewCascade(api)

	// ACT
	err := cascade.Delete(context.Background(), &tree)

	// ASSERT: leaves go first, the root last
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	want := []string{"c", "b", "d", "a"}
	if len(api.deleted) != len(want) {
		t.Fatalf("deleted = %v, want %v", api.deleted, want)
	}
	for i := range want {
		if api.deleted[i] != want[i] {
			t.Fatalf("deleted = %v, want %v", api.deleted, want)
		}
	}
}

func TestCascade_Delete_AbortsOnFirstFailure(t *testing.T) {
	// ARRANGE: deleting b fails, so neither d nor a may be deleted
	tree := comment("a", comment("b", comment("c")), comment("d"))
	boom := errors.New("backend unavailable")
	api := &mockCommentAPI{
		commentFn: commentStore(tree),
		deleteCommentFn: func(ctx context.Context, id string) error {
			if id == "b" {
				return boom
			}
			return nil
		},
	}
	cascade := NewCascade(api)

	// ACT
	err := cascade.Delete(context.Background(), &tree)

	// ASSERT
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got: %v", err)
	}
	want := []string{"c", "b"}
	if len(api.deleted) != len(want) {
		t.Fatalf("deleted = %v, want %v (walk must stop at the failure)", api.deleted, want)
	}
}

func TestCascade_Delete_SingleComment(t *testing.T) {
	leaf := comment("only")
	api := &mockCommentAPI{}
	cascade := NewCascade(api)

	err := cascade.Delete(context.Background(), &leaf)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "only" {
		t.Fatalf("deleted = %v, want [only]", api.deleted)
	}
}

// =============================================================================
// HYDRATE TESTS
// =============================================================================

func TestHydrate_ExpandsShallowReplies(t *testing.T) {
	// ARRANGE: the list endpoint returned a with a shallow copy of b;
	// the full b carries its own reply c
	fullB := comment("b", comment("c"))
	shallowB := model.Comment{ID: "b"}
	forest := []model.Comment{comment("a", shallowB)}
	api := &mockCommentAPI{commentFn: commentStore(fullB, comment("c"))}

	// ACT
	got, err := Hydrate(context.Background(), api, forest)

	// ASSERT
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	equalIDs(t, got, "a", "b", "c")
	if got[0].Replies[0].Message != "message b" {
		t.Errorf("reply message = %q, want full object", got[0].Replies[0].Message)
	}
}

func TestHydrate_PropagatesFetchError(t *testing.T) {
	forest := []model.Comment{comment("a", model.Comment{ID: "gone"})}
	api := &mockCommentAPI{}

	_, err := Hydrate(context.Background(), api, forest)

	if !errors.Is(err, model.ErrCommentNotFound) {
		t.Fatalf("expected not-found error, got: %v", err)
	}
}
