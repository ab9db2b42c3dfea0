package record

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service contains the business logic for ledger operations
type Service struct {
	repo Repository
}

// NewService creates a new record service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the params, assigns a fresh ID and a timestamp
// (caller-supplied or current time) and appends the record.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	ts := time.Now().Unix()
	if params.Timestamp != nil {
		ts = *params.Timestamp
	}

	rec := Record{
		ID:        uuid.New(),
		User:      params.User,
		Item:      params.Item,
		Amount:    params.Amount,
		Timestamp: ts,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns a snapshot of the full ledger in insertion order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Get retrieves a single record by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update, re-validating each supplied field
// with the same rules as Create. The ID is never updatable.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Record, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

// Delete removes a record by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UserSummary aggregates the records of a single user. The match is
// exact: stored users are already trimmed, so callers must query with
// the trimmed form.
func (s *Service) UserSummary(ctx context.Context, user string) (*UserSummary, error) {
	recs, err := s.repo.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []Record{}
	}

	var total float64
	for _, rec := range recs {
		total += rec.Amount
	}

	return &UserSummary{
		User:        user,
		Count:       len(recs),
		TotalAmount: total,
		Records:     recs,
	}, nil
}
