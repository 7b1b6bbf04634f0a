package repo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/helpboard/backend/internal/domain"
)

const (
	requestsCollection = "requests"
	tagsCollection     = "tags"
)

// NewFirestoreClient initialises the Firebase Admin SDK for projectID and
// returns its Firestore client. credentialsPath may be empty, in which case
// Application Default Credentials (or FIRESTORE_EMULATOR_HOST) are used.
func NewFirestoreClient(ctx context.Context, projectID, credentialsPath string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("repo.NewFirestoreClient: init app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.NewFirestoreClient: firestore: %w", err)
	}
	return client, nil
}

// fsRequest is the document shape of a request in the requests collection.
// The document ID is the request UUID.
type fsRequest struct {
	Text         string    `firestore:"text"`
	Tags         []string  `firestore:"tags"`
	ClarityScore int       `firestore:"clarityScore"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

// fsTag is a per-tag usage counter in the tags collection.
type fsTag struct {
	Name  string `firestore:"name"`
	Count int64  `firestore:"count"`
}

// fsRequestRepo is the Firestore implementation of RequestRepo.
type fsRequestRepo struct {
	client *firestore.Client
}

// NewFirestoreRequestRepo constructs a RequestRepo backed by Cloud Firestore.
func NewFirestoreRequestRepo(client *firestore.Client) RequestRepo {
	return &fsRequestRepo{client: client}
}

// Create writes the request document and bumps the counter of each of its
// tags in one transaction. createdAt is a server timestamp, so the stored
// document is read back to return the time Firestore assigned.
func (r *fsRequestRepo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	ref := r.client.Collection(requestsCollection).Doc(uuid.NewString())
	tags := nonNil(req.Tags)

	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(ref, map[string]any{
			"text":         req.Text,
			"tags":         tags,
			"clarityScore": req.ClarityScore,
			"createdAt":    firestore.ServerTimestamp,
		}); err != nil {
			return err
		}
		for _, t := range tags {
			counter := map[string]any{"name": t, "count": firestore.Increment(1)}
			if err := tx.Set(r.tagDoc(t), counter, firestore.MergeAll); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: %w", err)
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: read back: %w", err)
	}
	result, err := requestFromSnapshot(snap)
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID reads a single request document.
func (r *fsRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	snap, err := r.client.Collection(requestsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.GetByID: %w", mapFirestoreErr(err))
	}
	result, err := requestFromSnapshot(snap)
	if err != nil {
		return domain.Request{}, fmt.Errorf("repo.RequestRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged pages through requests newest first. The tag filter together
// with the createdAt ordering needs the composite index
// (tags array-contains, createdAt desc) declared on the project.
func (r *fsRequestRepo) ListPaged(ctx context.Context, tag string, p domain.PaginationParams) ([]domain.Request, int64, error) {
	q := r.client.Collection(requestsCollection).Query
	if tag != "" {
		q = q.Where("tags", "array-contains", tag)
	}

	total, err := countQuery(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: count: %w", err)
	}

	snaps, err := q.OrderBy("createdAt", firestore.Desc).
		Offset(p.Offset()).
		Limit(p.Limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: %w", err)
	}

	requests := make([]domain.Request, 0, len(snaps))
	for _, snap := range snaps {
		req, err := requestFromSnapshot(snap)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.RequestRepo.ListPaged: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, nil
}

// tagDoc returns the counter document for tag. Tags may contain characters
// that are not valid in document IDs ("/" for one), so the ID is the
// URL-safe base64 of the tag and the readable name is kept in a field.
func (r *fsRequestRepo) tagDoc(tag string) *firestore.DocumentRef {
	return r.client.Collection(tagsCollection).Doc(base64.RawURLEncoding.EncodeToString([]byte(tag)))
}

// fsTagRepo is the Firestore implementation of TagRepo.
// It reads the counters maintained by fsRequestRepo.Create.
type fsTagRepo struct {
	client *firestore.Client
}

// NewFirestoreTagRepo constructs a TagRepo backed by Cloud Firestore.
func NewFirestoreTagRepo(client *firestore.Client) TagRepo {
	return &fsTagRepo{client: client}
}

// List runs a range query on name: [prefix, prefix+U+F8FF) is the usual
// Firestore idiom for "starts with".
func (r *fsTagRepo) List(ctx context.Context, prefix string) ([]domain.TagCount, error) {
	q := r.client.Collection(tagsCollection).Query
	if prefix != "" {
		q = q.Where("name", ">=", prefix).Where("name", "<", prefix+"\uf8ff")
	}

	snaps, err := q.OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}

	tags := []domain.TagCount{}
	for _, snap := range snaps {
		var t fsTag
		if err := snap.DataTo(&t); err != nil {
			return nil, fmt.Errorf("repo.TagRepo.List: decode %s: %w", snap.Ref.ID, err)
		}
		if t.Count <= 0 {
			continue
		}
		tags = append(tags, domain.TagCount{Name: t.Name, Count: t.Count})
	}
	return tags, nil
}

func requestFromSnapshot(snap *firestore.DocumentSnapshot) (domain.Request, error) {
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return domain.Request{}, fmt.Errorf("document %s: bad id: %w", snap.Ref.ID, err)
	}
	var doc fsRequest
	if err := snap.DataTo(&doc); err != nil {
		return domain.Request{}, fmt.Errorf("document %s: decode: %w", snap.Ref.ID, err)
	}
	return domain.Request{
		ID:           id,
		Text:         doc.Text,
		Tags:         nonNil(doc.Tags),
		ClarityScore: doc.ClarityScore,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func countQuery(ctx context.Context, q firestore.Query) (int64, error) {
	res, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["total"].(*firestorepb.Value)
	if !ok {
		return 0, errors.New("aggregation result has no total")
	}
	return v.GetIntegerValue(), nil
}

// mapFirestoreErr turns the gRPC NotFound status into domain.ErrNotFound.
func mapFirestoreErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return err
}
