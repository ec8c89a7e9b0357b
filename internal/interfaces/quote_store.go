package interfaces

import (
	"context"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// QuoteStore persists quote audit records, one per computed ledger.
type QuoteStore interface {
	SaveQuote(ctx context.Context, record models.QuoteRecord) error
	GetQuotesByPackage(packageID string) ([]models.QuoteRecord, error)
	GetQuotes() ([]models.QuoteRecord, error)
}
