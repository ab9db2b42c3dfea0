package jsonfile

import (
	"context"

	"github.com/google/uuid"

	"bookkeeping/internal/domain/record"
)

// RecordRepository implements record.Repository on top of a Store.
type RecordRepository struct {
	store *Store
}

// NewRecordRepository creates a repository backed by the given store.
func NewRecordRepository(store *Store) *RecordRepository {
	return &RecordRepository{store: store}
}

// Create appends rec to the ledger and persists the new state.
func (r *RecordRepository) Create(ctx context.Context, rec record.Record) error {
	return r.store.Update(func(records []record.Record) ([]record.Record, error) {
		next := make([]record.Record, len(records), len(records)+1)
		copy(next, records)
		return append(next, rec), nil
	})
}

// List returns a snapshot copy of the full ledger in insertion order.
func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	var out []record.Record
	r.store.View(func(records []record.Record) {
		out = make([]record.Record, len(records))
		copy(out, records)
	})
	return out, nil
}

// GetByID linear-scans for a matching record.
func (r *RecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*record.Record, error) {
	var found *record.Record
	r.store.View(func(records []record.Record) {
		for i := range records {
			if records[i].ID == id {
				rec := records[i]
				found = &rec
				return
			}
		}
	})
	if found == nil {
		return nil, record.ErrNotFound
	}
	return found, nil
}

// Update applies the non-nil fields of params to the matching record.
// A persist failure still returns the error even though the in-memory
// update committed.
func (r *RecordRepository) Update(ctx context.Context, id uuid.UUID, params record.UpdateParams) (*record.Record, error) {
	var updated record.Record
	err := r.store.Update(func(records []record.Record) ([]record.Record, error) {
		idx := -1
		for i := range records {
			if records[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, record.ErrNotFound
		}

		next := make([]record.Record, len(records))
		copy(next, records)

		rec := &next[idx]
		if params.User != nil {
			rec.User = *params.User
		}
		if params.Item != nil {
			rec.Item = *params.Item
		}
		if params.Amount != nil {
			rec.Amount = *params.Amount
		}
		if params.Timestamp != nil {
			rec.Timestamp = *params.Timestamp
		}
		updated = *rec
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matching record. Removal is the only mutation that
// changes the collection size, so an unchanged length is the absence
// signal.
func (r *RecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Update(func(records []record.Record) ([]record.Record, error) {
		next := make([]record.Record, 0, len(records))
		for _, rec := range records {
			if rec.ID != id {
				next = append(next, rec)
			}
		}
		if len(next) == len(records) {
			return nil, record.ErrNotFound
		}
		return next, nil
	})
}

// ListByUser returns the records whose user matches exactly.
func (r *RecordRepository) ListByUser(ctx context.Context, user string) ([]record.Record, error) {
	out := []record.Record{}
	r.store.View(func(records []record.Record) {
		for _, rec := range records {
			if rec.User == user {
				out = append(out, rec)
			}
		}
	})
	return out, nil
}
