package tags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helpboard/backend/internal/tags"
)

// ---- Add -------------------------------------------------------------------

func TestAdd_ToEmpty(t *testing.T) {
	assert.Equal(t, []string{"x"}, tags.Add([]string{}, "x"))
	assert.Equal(t, []string{"x"}, tags.Add(nil, "x"))
}

func TestAdd_Duplicate(t *testing.T) {
	assert.Equal(t, []string{"x"}, tags.Add([]string{"x"}, "x"))
}

func TestAdd_EmptyTagIgnored(t *testing.T) {
	assert.Equal(t, []string{"x"}, tags.Add([]string{"x"}, ""))
}

func TestAdd_AppendsAtEnd(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, tags.Add([]string{"b", "a"}, "c"))
}

func TestAdd_CaseSensitive(t *testing.T) {
	assert.Equal(t, []string{"go", "Go"}, tags.Add([]string{"go"}, "Go"))
}

func TestAdd_DoesNotAliasInput(t *testing.T) {
	in := make([]string, 1, 8)
	in[0] = "a"

	out := tags.Add(in, "b")
	out[0] = "changed"

	assert.Equal(t, "a", in[0])
	assert.Len(t, in, 1)

	same := tags.Add(in, "a")
	same[0] = "changed"
	assert.Equal(t, "a", in[0], "unchanged result must still be a copy")
}

// ---- Remove ----------------------------------------------------------------

func TestRemove_AllOccurrences(t *testing.T) {
	assert.Equal(t, []string{"b"}, tags.Remove([]string{"a", "b", "a"}, "a"))
}

func TestRemove_Missing(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, tags.Remove([]string{"a", "b"}, "z"))
}

func TestRemove_NilGivesEmpty(t *testing.T) {
	got := tags.Remove(nil, "a")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRemove_Idempotent(t *testing.T) {
	in := []string{"a", "b", "a", "c"}

	once := tags.Remove(in, "a")
	twice := tags.Remove(once, "a")

	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"a", "b", "a", "c"}, in, "input must not be modified")
}

// ---- FromInput / Parse -----------------------------------------------------

func TestFromInput_TrimsAndDedupes(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, tags.FromInput([]string{" a", "a", "", "b "}))
}

func TestFromInput_Nil(t *testing.T) {
	got := tags.FromInput(nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParse(t *testing.T) {
	assert.Equal(t, []string{"plumbing", "diy", "urgent"}, tags.Parse("plumbing, diy,,urgent , diy"))
	assert.Empty(t, tags.Parse(""))
}
