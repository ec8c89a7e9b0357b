package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteCalculated is emitted after every recomputation so downstream
// consumers (order summary, analytics) can react without polling.
type QuoteCalculated struct {
	QuoteID       string          `json:"quote_id"`
	PackageID     string          `json:"package_id"`
	PackageName   string          `json:"package_name"`
	GuestCount    int             `json:"guest_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PerPersonCost decimal.Decimal `json:"per_person_cost"`
	Complete      bool            `json:"complete"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
