package record

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Record is a single financial entry in the ledger.
type Record struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`
	Item      string    `json:"item"`
	Amount    float64   `json:"amount"`
	Timestamp int64     `json:"timestamp"` // unix seconds
}

// CreateParams holds the caller-supplied fields for a new record.
// The ID and, when Timestamp is nil, the creation time are assigned
// by the service.
type CreateParams struct {
	User      string
	Item      string
	Amount    float64
	Timestamp *int64
}

// UpdateParams holds the fields of a partial update. Nil fields are
// left untouched. The record ID is immutable and not updatable.
type UpdateParams struct {
	User      *string
	Item      *string
	Amount    *float64
	Timestamp *int64
}

// UserSummary aggregates every record belonging to a single user.
type UserSummary struct {
	User        string   `json:"user"`
	Count       int      `json:"count"`
	TotalAmount float64  `json:"totalAmount"`
	Records     []Record `json:"records"`
}

// Normalize validates the params and returns a copy with user and item
// trimmed of surrounding whitespace.
func (p CreateParams) Normalize() (CreateParams, error) {
	user, err := cleanString("user", p.User)
	if err != nil {
		return p, err
	}
	item, err := cleanString("item", p.Item)
	if err != nil {
		return p, err
	}
	if err := validateAmount(p.Amount); err != nil {
		return p, err
	}
	p.User = user
	p.Item = item
	return p, nil
}

// Normalize validates every supplied field with the same rules as
// CreateParams.Normalize, trimming user and item in place.
func (p UpdateParams) Normalize() (UpdateParams, error) {
	if p.User != nil {
		user, err := cleanString("user", *p.User)
		if err != nil {
			return p, err
		}
		p.User = &user
	}
	if p.Item != nil {
		item, err := cleanString("item", *p.Item)
		if err != nil {
			return p, err
		}
		p.Item = &item
	}
	if p.Amount != nil {
		if err := validateAmount(*p.Amount); err != nil {
			return p, err
		}
	}
	return p, nil
}

func cleanString(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: field, Reason: "must be a non-empty string"}
	}
	return trimmed, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{Field: "amount", Reason: "must be a finite number"}
	}
	return nil
}
