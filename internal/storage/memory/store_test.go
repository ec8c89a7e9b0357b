package memory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

func record(id, packageID string) models.QuoteRecord {
	return models.QuoteRecord{
		ID:          id,
		PackageID:   packageID,
		PackageName: "Party Pack",
		GuestCount:  10,
		Total:       decimal.RequireFromString("356.39"),
		Ledger:      json.RawMessage(`{"items":{}}`),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSaveAndGetQuotes(t *testing.T) {
	store := NewQuoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveQuote(ctx, record("q1", "pkg-a")))
	require.NoError(t, store.SaveQuote(ctx, record("q2", "pkg-b")))

	records, err := store.GetQuotes()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGetQuotesByPackage(t *testing.T) {
	store := NewQuoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveQuote(ctx, record("q1", "pkg-a")))
	require.NoError(t, store.SaveQuote(ctx, record("q2", "pkg-b")))
	require.NoError(t, store.SaveQuote(ctx, record("q3", "pkg-a")))

	records, err := store.GetQuotesByPackage("pkg-a")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "q1", records[0].ID)
	assert.Equal(t, "q3", records[1].ID)
}

func TestGetQuotesReturnsCopies(t *testing.T) {
	store := NewQuoteStore()
	ctx := context.Background()
	require.NoError(t, store.SaveQuote(ctx, record("q1", "pkg-a")))

	records, err := store.GetQuotes()
	require.NoError(t, err)
	records[0].ID = "tampered"

	again, err := store.GetQuotes()
	require.NoError(t, err)
	assert.Equal(t, "q1", again[0].ID)
}

func TestSaveQuoteCopiesLedgerBuffer(t *testing.T) {
	store := NewQuoteStore()
	ctx := context.Background()

	buf := []byte(`{"items":{}}`)
	r := record("q1", "pkg-a")
	r.Ledger = buf
	require.NoError(t, store.SaveQuote(ctx, r))

	buf[0] = 'X'

	records, err := store.GetQuotes()
	require.NoError(t, err)
	assert.Equal(t, byte('{'), records[0].Ledger[0])
}
