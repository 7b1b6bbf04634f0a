package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpboard/backend/internal/clarity"
	"github.com/helpboard/backend/internal/domain"
	"github.com/helpboard/backend/internal/repo"
	"github.com/helpboard/backend/internal/service"
)

// mockRequestRepo is a hand-written test double for repo.RequestRepo.
// Each method is a function field; set only the ones a test needs.
type mockRequestRepo struct {
	create    func(ctx context.Context, req domain.Request) (domain.Request, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Request, error)
	listPaged func(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	return m.create(ctx, req)
}
func (m *mockRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	return m.getByID(ctx, id)
}
func (m *mockRequestRepo) ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error) {
	return m.listPaged(ctx, tag, p)
}

// compile-time check: mockRequestRepo must satisfy repo.RequestRepo.
var _ repo.RequestRepo = (*mockRequestRepo)(nil)

// echoRepo stamps an ID and timestamp the way a store would and returns
// whatever it was given, so tests can inspect what the service persisted.
func echoRepo() *mockRequestRepo {
	return &mockRequestRepo{
		create: func(_ context.Context, r domain.Request) (domain.Request, error) {
			r.ID = uuid.New()
			r.CreatedAt = time.Now().UTC()
			return r, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestRequestService_Create_Valid(t *testing.T) {
	svc := service.NewRequestService(echoRepo())

	got, err := svc.Create(context.Background(), domain.NewRequest{
		Text: "  why won't my sourdough rise?  ",
		Tags: []string{"baking", " bread "},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, "why won't my sourdough rise?", got.Text, "text should be trimmed")
	assert.Equal(t, []string{"baking", "bread"}, got.Tags)
	assert.Equal(t, clarity.Score("why won't my sourdough rise?"), got.ClarityScore)
}

func TestRequestService_Create_DedupesTagsInOrder(t *testing.T) {
	var persisted domain.Request
	svc := service.NewRequestService(&mockRequestRepo{
		create: func(_ context.Context, r domain.Request) (domain.Request, error) {
			persisted = r
			return r, nil
		},
	})

	_, err := svc.Create(context.Background(), domain.NewRequest{
		Text: "help moving a couch",
		Tags: []string{"moving", "", "furniture", "moving", "  "},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"moving", "furniture"}, persisted.Tags)
}

func TestRequestService_Create_NilTagsBecomeEmpty(t *testing.T) {
	svc := service.NewRequestService(echoRepo())

	got, err := svc.Create(context.Background(), domain.NewRequest{Text: "anyone?"})

	require.NoError(t, err)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestRequestService_Create_MissingText(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{})

	_, err := svc.Create(context.Background(), domain.NewRequest{Text: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_TextTooLong(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{})

	_, err := svc.Create(context.Background(), domain.NewRequest{Text: strings.Repeat("a", 2001)})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_TooManyTags(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{})

	many := make([]string, 11)
	for i := range many {
		many[i] = fmt.Sprintf("tag-%d", i)
	}

	_, err := svc.Create(context.Background(), domain.NewRequest{Text: "hi", Tags: many})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_DuplicatesDoNotCountTowardsLimit(t *testing.T) {
	svc := service.NewRequestService(echoRepo())

	dupes := make([]string, 30)
	for i := range dupes {
		dupes[i] = "same"
	}

	got, err := svc.Create(context.Background(), domain.NewRequest{Text: "hi", Tags: dupes})

	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, got.Tags)
}

func TestRequestService_Create_TagTooLong(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{})

	_, err := svc.Create(context.Background(), domain.NewRequest{
		Text: "hi",
		Tags: []string{strings.Repeat("t", 41)},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_TagWithSeparatorRejected(t *testing.T) {
	called := false
	svc := service.NewRequestService(&mockRequestRepo{
		create: func(_ context.Context, r domain.Request) (domain.Request, error) {
			called = true
			return r, nil
		},
	})

	_, err := svc.Create(context.Background(), domain.NewRequest{
		Text: "hi",
		Tags: []string{"go", "ci|cd"},
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), `"ci|cd"`)
	assert.False(t, called, "nothing is stored")
}

func TestRequestService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("store unavailable")
	svc := service.NewRequestService(&mockRequestRepo{
		create: func(_ context.Context, _ domain.Request) (domain.Request, error) {
			return domain.Request{}, repoErr
		},
	})

	_, err := svc.Create(context.Background(), domain.NewRequest{Text: "hello"})

	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID ---------------------------------------------------------------

func TestRequestService_GetByID_Found(t *testing.T) {
	want := domain.Request{ID: uuid.New(), Text: "lend me a drill?"}
	svc := service.NewRequestService(&mockRequestRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Request, error) {
			assert.Equal(t, want.ID, id)
			return want, nil
		},
	})

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestRequestService_GetByID_NotFound(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Request, error) {
			return domain.Request{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ListPaged -------------------------------------------------------------

func TestRequestService_ListPaged_PassesTrimmedTag(t *testing.T) {
	var capturedTag string
	var capturedParams domain.PaginationParams
	svc := service.NewRequestService(&mockRequestRepo{
		listPaged: func(_ context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error) {
			capturedTag, capturedParams = tag, p
			return []domain.Request{{Text: "x"}}, 41, nil
		},
	})

	params := domain.PaginationParams{Page: 3, Limit: 20}
	got, total, err := svc.ListPaged(context.Background(), " garden ", params)

	require.NoError(t, err)
	assert.Equal(t, "garden", capturedTag)
	assert.Equal(t, params, capturedParams)
	assert.EqualValues(t, 41, total)
	assert.Len(t, got, 1)
}

func TestRequestService_ListPaged_Empty(t *testing.T) {
	svc := service.NewRequestService(&mockRequestRepo{
		listPaged: func(_ context.Context, _ string, _ domain.PaginationParams) ([]domain.Request, int64, error) {
			return nil, 0, nil
		},
	})

	got, _, err := svc.ListPaged(context.Background(), "", domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Score -----------------------------------------------------------------

func TestRequestService_Score_MatchesCreate(t *testing.T) {
	svc := service.NewRequestService(echoRepo())
	text := "   how do I patch drywall around an outlet box without a mess?   "

	created, err := svc.Create(context.Background(), domain.NewRequest{Text: text})
	require.NoError(t, err)

	assert.Equal(t, created.ClarityScore, svc.Score(text))
}
