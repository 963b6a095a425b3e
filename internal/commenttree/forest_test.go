package commenttree

import (
	"testing"

	"socialnet-client/internal/model"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func comment(id string, replies ...model.Comment) model.Comment {
	return model.Comment{ID: id, Message: "message " + id, Replies: replies}
}

// ids flattens a forest into pre-order id sequence for easy comparison.
func ids(forest []model.Comment) []string {
	var out []string
	for _, c := range forest {
		out = append(out, c.ID)
		out = append(out, ids(c.Replies)...)
	}
	return out
}

func equalIDs(t *testing.T, got []model.Comment, want ...string) {
	t.Helper()
	flat := ids(got)
	if len(flat) != len(want) {
		t.Fatalf("forest ids = %v, want %v", flat, want)
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("forest ids = %v, want %v", flat, want)
		}
	}
}

// =============================================================================
// ADD TESTS
// =============================================================================

func TestAddTopLevel_PrependsNewestFirst(t *testing.T) {
	forest := []model.Comment{comment("a"), comment("b")}

	got := AddTopLevel(forest, comment("c"))

	equalIDs(t, got, "c", "a", "b")
}

func TestAddTopLevel_DoesNotMutateInput(t *testing.T) {
	forest := []model.Comment{comment("a")}

	AddTopLevel(forest, comment("b"))

	equalIDs(t, forest, "a")
}

func TestAddReply_ReplacesNestedParentWithEcho(t *testing.T) {
	// ARRANGE: a -> [b], d; the backend echoes b with new reply c attached
	forest := []model.Comment{
		comment("a", comment("b")),
		comment("d"),
	}
	echo := comment("b", comment("c"))

	// ACT
	got := AddReply(forest, echo)

	// ASSERT: c now sits under b, siblings untouched
	equalIDs(t, got, "a", "b", "c", "d")
}

func TestAddReply_KeepsOtherSubtreesUntouched(t *testing.T) {
	forest := []model.Comment{
		comment("a", comment("b", comment("c"))),
		comment("d", comment("e")),
	}

	got := AddReply(forest, comment("e", comment("f")))

	equalIDs(t, got, "a", "b", "c", "d", "e", "f")
}

// =============================================================================
// UPDATE TESTS
// =============================================================================

func TestUpdateInPlace_ReplacesTopLevelOnly(t *testing.T) {
	forest := []model.Comment{comment("a"), comment("b")}
	updated := comment("b")
	updated.Message = "edited"

	got := UpdateInPlace(forest, updated)

	if got[1].Message != "edited" {
		t.Errorf("message = %q, want %q", got[1].Message, "edited")
	}
	if got[0].Message != "message a" {
		t.Errorf("sibling message = %q, want untouched", got[0].Message)
	}
}

// =============================================================================
// REMOVE TESTS
// =============================================================================

func TestRemoveRecursive_RemovesNodeAndSubtree(t *testing.T) {
	forest := []model.Comment{
		comment("a", comment("b", comment("c")), comment("d")),
		comment("e"),
	}

	got := RemoveRecursive(forest, "b")

	// b removed along with its descendant c; d and e survive
	equalIDs(t, got, "a", "d", "e")
}

func TestRemoveRecursive_MissingIDLeavesForestUnchanged(t *testing.T) {
	forest := []model.Comment{comment("a", comment("b"))}

	got := RemoveRecursive(forest, "nope")

	equalIDs(t, got, "a", "b")
}

func TestRemoveRecursive_IsIdempotent(t *testing.T) {
	forest := []model.Comment{comment("a"), comment("b")}

	once := RemoveRecursive(forest, "a")
	twice := RemoveRecursive(once, "a")

	equalIDs(t, twice, "b")
}

// =============================================================================
// FIND TESTS
// =============================================================================

func TestFind_LocatesNestedComment(t *testing.T) {
	forest := []model.Comment{
		comment("a", comment("b", comment("c"))),
	}

	got, ok := Find(forest, "c")

	if !ok {
		t.Fatal("expected to find comment c")
	}
	if got.ID != "c" {
		t.Errorf("id = %q, want %q", got.ID, "c")
	}
}

func TestFind_MissingIDReportsNotFound(t *testing.T) {
	forest := []model.Comment{comment("a")}

	_, ok := Find(forest, "z")

	if ok {
		t.Fatal("expected not found")
	}
}
