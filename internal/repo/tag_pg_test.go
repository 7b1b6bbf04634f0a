package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpboard/backend/internal/domain"
)

func TestTagRepo_List_CountsAcrossRequests(t *testing.T) {
	requests, tags := newTestRepos(t)
	ctx := context.Background()

	_, err := requests.Create(ctx, requestFixture("a", "garden", "tools"))
	require.NoError(t, err)
	_, err = requests.Create(ctx, requestFixture("b", "tools"))
	require.NoError(t, err)

	got, err := tags.List(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, []domain.TagCount{
		{Name: "garden", Count: 1},
		{Name: "tools", Count: 2},
	}, got)
}

func TestTagRepo_List_Prefix(t *testing.T) {
	requests, tags := newTestRepos(t)
	ctx := context.Background()

	_, err := requests.Create(ctx, requestFixture("a", "garden", "gardening", "tools"))
	require.NoError(t, err)

	got, err := tags.List(ctx, "gard")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "garden", got[0].Name)
	assert.Equal(t, "gardening", got[1].Name)
}

func TestTagRepo_List_PrefixIsLiteral(t *testing.T) {
	requests, tags := newTestRepos(t)
	ctx := context.Background()

	_, err := requests.Create(ctx, requestFixture("a", "100%", "1000"))
	require.NoError(t, err)

	got, err := tags.List(ctx, "100%")

	require.NoError(t, err)
	require.Len(t, got, 1, "% must not act as a wildcard")
	assert.Equal(t, "100%", got[0].Name)
}

func TestTagRepo_List_Empty(t *testing.T) {
	_, tags := newTestRepos(t)

	got, err := tags.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
