package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"bookkeeping/internal/domain/record"
)

// The on-disk contract is values-only (field order and whitespace are
// not contractual), but the writer itself is deterministic; this pins
// its output so format drift is a conscious choice.
func TestLedgerFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	repo := NewRecordRepository(Open(path))
	ctx := context.Background()

	records := []record.Record{
		{
			ID:        uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427"),
			User:      "alice",
			Item:      "book",
			Amount:    9.5,
			Timestamp: 1700000000,
		},
		{
			ID:        uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			User:      "bob",
			Item:      "pen",
			Amount:    -3,
			Timestamp: 1700000001,
		},
	}
	for _, rec := range records {
		require.NoError(t, repo.Create(ctx, rec))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "ledger", data)
}
