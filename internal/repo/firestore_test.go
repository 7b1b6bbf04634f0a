package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/repo"
	"github.com/helpboard/backend/testutil"
)

// newFirestoreRepos returns Firestore repos on the emulator with the
// requests and tags collections emptied first.
func newFirestoreRepos(t *testing.T) (repo.RequestRepo, repo.TagRepo) {
	t.Helper()
	client := testutil.NewFirestoreClient(t)
	ctx := context.Background()

	for _, coll := range []string{"requests", "tags"} {
		refs, err := client.Collection(coll).DocumentRefs(ctx).GetAll()
		require.NoError(t, err)
		for _, ref := range refs {
			_, err := ref.Delete(ctx)
			require.NoError(t, err)
		}
	}

	return repo.NewFirestoreRequestRepo(client), repo.NewFirestoreTagRepo(client)
}

func TestFirestoreRequestRepo_CreateAndGet(t *testing.T) {
	requests, _ := newFirestoreRepos(t)
	ctx := context.Background()

	created, err := requests.Create(ctx, requestFixture("how do I fix a flat?", "bike", "repair"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.UUID{}, created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "createdAt should be the server timestamp")
	assert.Equal(t, []string{"bike", "repair"}, created.Tags)

	got, err := requests.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Text, got.Text)
	assert.Equal(t, created.ClarityScore, got.ClarityScore)
}

func TestFirestoreRequestRepo_GetByID_NotFound(t *testing.T) {
	requests, _ := newFirestoreRepos(t)

	_, err := requests.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFirestoreRequestRepo_ListPaged(t *testing.T) {
	requests, _ := newFirestoreRepos(t)
	ctx := context.Background()

	for _, text := range []string{"one", "two", "three"} {
		_, err := requests.Create(ctx, requestFixture(text, "chores"))
		require.NoError(t, err)
	}

	got, total, err := requests.ListPaged(ctx, "chores", domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 2)
	assert.Equal(t, "three", got[0].Text, "newest first")
}

func TestFirestoreTagRepo_ListCounts(t *testing.T) {
	requests, tags := newFirestoreRepos(t)
	ctx := context.Background()

	_, err := requests.Create(ctx, requestFixture("a", "garden", "a/b"))
	require.NoError(t, err)
	_, err = requests.Create(ctx, requestFixture("b", "garden"))
	require.NoError(t, err)

	got, err := tags.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []domain.TagCount{
		{Name: "a/b", Count: 1},
		{Name: "garden", Count: 2},
	}, got)

	got, err = tags.List(ctx, "gar")
	require.NoError(t, err)
	assert.Equal(t, []domain.TagCount{{Name: "garden", Count: 2}}, got)
}
