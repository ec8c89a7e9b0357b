package memory

import (
	"context"
	"sync"

	interfaces "github.com/wingworks/catering-pricing-engine/internal/interfaces"
	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// QuoteStore is an in-memory implementation of interfaces.QuoteStore,
// used by tests and by deployments without a database. It is safe for
// concurrent use and hands out copies so callers cannot mutate the
// stored records.
type QuoteStore struct {
	mu      sync.Mutex
	records []models.QuoteRecord
}

// NewQuoteStore creates an empty in-memory quote store.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		records: make([]models.QuoteRecord, 0),
	}
}

// SaveQuote appends a quote audit record.
func (s *QuoteStore) SaveQuote(ctx context.Context, record models.QuoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy the raw ledger JSON so a reused caller buffer cannot alias
	// stored state.
	if record.Ledger != nil {
		ledger := make([]byte, len(record.Ledger))
		copy(ledger, record.Ledger)
		record.Ledger = ledger
	}
	s.records = append(s.records, record)
	return nil
}

// GetQuotes returns a copy of every stored record.
func (s *QuoteStore) GetQuotes() ([]models.QuoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]models.QuoteRecord, len(s.records))
	copy(copied, s.records)
	return copied, nil
}

// GetQuotesByPackage returns the stored records for one package id.
func (s *QuoteStore) GetQuotesByPackage(packageID string) ([]models.QuoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.QuoteRecord
	for _, r := range s.records {
		if r.PackageID == packageID {
			result = append(result, r)
		}
	}
	return result, nil
}

// Compile-time check: QuoteStore implements interfaces.QuoteStore.
var _ interfaces.QuoteStore = (*QuoteStore)(nil)
