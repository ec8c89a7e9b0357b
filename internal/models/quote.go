package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRecord is the audit row persisted for every computed quote. The
// full ledger rides along as JSON so a past quote can be replayed exactly
// as the customer saw it.
type QuoteRecord struct {
	ID            string          `json:"id"`
	PackageID     string          `json:"package_id"`
	PackageName   string          `json:"package_name"`
	GuestCount    int             `json:"guest_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PerPersonCost decimal.Decimal `json:"per_person_cost"`
	CapExceeded   bool            `json:"cap_exceeded"`
	Ledger        json.RawMessage `json:"ledger"`
	CreatedAt     time.Time       `json:"created_at"`
}
