package record

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for ledger data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create appends a fully-populated record to the ledger
	Create(ctx context.Context, rec Record) error

	// List returns a snapshot of all records in insertion order
	List(ctx context.Context) ([]Record, error)

	// GetByID retrieves a record by its ID, ErrNotFound if absent
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// Update applies the non-nil fields of params to the record with the
	// given ID and returns the updated record
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Record, error)

	// Delete removes the record with the given ID, ErrNotFound if absent
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByUser returns the records whose user matches exactly, in
	// insertion order
	ListByUser(ctx context.Context, user string) ([]Record, error)
}
