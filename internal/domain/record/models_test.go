package record

import (
	"errors"
	"math"
	"testing"
)

func TestCreateParamsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		params    CreateParams
		wantUser  string
		wantItem  string
		wantField string // empty means no error expected
	}{
		{
			name:     "Valid",
			params:   CreateParams{User: "alice", Item: "book", Amount: 9.5},
			wantUser: "alice",
			wantItem: "book",
		},
		{
			name:     "TrimsWhitespace",
			params:   CreateParams{User: " Alice ", Item: " Book ", Amount: 9.5},
			wantUser: "Alice",
			wantItem: "Book",
		},
		{
			name:      "BlankUser",
			params:    CreateParams{User: "  ", Item: "x", Amount: 1.0},
			wantField: "user",
		},
		{
			name:      "BlankItem",
			params:    CreateParams{User: "a", Item: "\t\n", Amount: 1.0},
			wantField: "item",
		},
		{
			name:      "NaNAmount",
			params:    CreateParams{User: "a", Item: "b", Amount: math.NaN()},
			wantField: "amount",
		},
		{
			name:      "InfAmount",
			params:    CreateParams{User: "a", Item: "b", Amount: math.Inf(1)},
			wantField: "amount",
		},
		{
			name:     "NegativeAmountAllowed",
			params:   CreateParams{User: "a", Item: "b", Amount: -42.0},
			wantUser: "a",
			wantItem: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.params.Normalize()

			if tt.wantField != "" {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Normalize() error = %v, want ValidationError", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantField)
				}
				return
			}

			if err != nil {
				t.Fatalf("Normalize() failed: %v", err)
			}
			if got.User != tt.wantUser {
				t.Errorf("User = %q, want %q", got.User, tt.wantUser)
			}
			if got.Item != tt.wantItem {
				t.Errorf("Item = %q, want %q", got.Item, tt.wantItem)
			}
		})
	}
}

func TestUpdateParamsNormalize(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(f float64) *float64 { return &f }

	t.Run("NilFieldsPass", func(t *testing.T) {
		if _, err := (UpdateParams{}).Normalize(); err != nil {
			t.Errorf("Normalize() on empty params failed: %v", err)
		}
	})

	t.Run("TrimsSuppliedFields", func(t *testing.T) {
		got, err := UpdateParams{User: str(" Bob "), Item: str(" Pen ")}.Normalize()
		if err != nil {
			t.Fatalf("Normalize() failed: %v", err)
		}
		if *got.User != "Bob" {
			t.Errorf("User = %q, want %q", *got.User, "Bob")
		}
		if *got.Item != "Pen" {
			t.Errorf("Item = %q, want %q", *got.Item, "Pen")
		}
	})

	t.Run("RejectsBlankUser", func(t *testing.T) {
		_, err := UpdateParams{User: str("   ")}.Normalize()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Normalize() error = %v, want ValidationError", err)
		}
	})

	t.Run("RejectsNonFiniteAmount", func(t *testing.T) {
		_, err := UpdateParams{Amount: num(math.Inf(-1))}.Normalize()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Normalize() error = %v, want ValidationError", err)
		}
	})
}
