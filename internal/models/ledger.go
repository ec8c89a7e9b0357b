package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCategory tags a ledger item with the configuration section it
// belongs to.
type ItemCategory string

const (
	CategoryPackage  ItemCategory = "package"
	CategoryWing     ItemCategory = "wing"
	CategorySauce    ItemCategory = "sauce"
	CategoryDip      ItemCategory = "dip"
	CategorySide     ItemCategory = "side"
	CategoryDessert  ItemCategory = "dessert"
	CategoryBeverage ItemCategory = "beverage"
)

// ModifierKind is a closed set of adjustment kinds. Warning modifiers
// never affect totals; upcharges and discounts carry a magnitude.
type ModifierKind string

const (
	KindUpcharge ModifierKind = "upcharge"
	KindDiscount ModifierKind = "discount"
	KindWarning  ModifierKind = "warning"
)

// Item is one billable line inside a Ledger: the package base, a wing
// group, a sauce, a dip, a side, a dessert or a beverage.
type Item struct {
	ID         string            `json:"id"`
	Category   ItemCategory      `json:"category"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	BasePrice  decimal.Decimal   `json:"basePrice"`
	Source     string            `json:"source,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Modifier is a priced or informational adjustment tied to an item.
// Amount is a magnitude (never negative); warnings always carry zero.
type Modifier struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"itemId"`
	Kind      ModifierKind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Label     string          `json:"label"`
	Source    string          `json:"source,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Totals is the derived numeric summary of a ledger. All fields are
// rounded to 2 decimal places at the point of total computation.
type Totals struct {
	ItemsSubtotal decimal.Decimal `json:"itemsSubtotal"`
	Upcharges     decimal.Decimal `json:"upcharges"`
	Discounts     decimal.Decimal `json:"discounts"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PerPersonCost decimal.Decimal `json:"perPersonCost"`
}

// RemovalEntry is one line of the removal-credit audit breakdown.
type RemovalEntry struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	CreditPerUnit decimal.Decimal `json:"creditPerUnit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
}

// Meta carries calculation metadata alongside the priced lines.
type Meta struct {
	LastCalculated   time.Time       `json:"lastCalculated"`
	GuestCount       int             `json:"guestCount"`
	CompletionStatus map[string]bool `json:"completionStatus"`
	PackageID        string          `json:"packageId,omitempty"`
	PackageName      string          `json:"packageName,omitempty"`
	RemovalBreakdown []RemovalEntry  `json:"removalBreakdown,omitempty"`
	CapExceeded      bool            `json:"capExceeded,omitempty"`
}

// Ledger is the normalized record of priced items, modifiers and totals
// produced by one calculation pass. A ledger is created fresh on every
// recomputation and is immutable once handed to subscribers.
type Ledger struct {
	Items     map[string]Item `json:"items"`
	Modifiers []Modifier      `json:"modifiers"`
	Totals    Totals          `json:"totals"`
	Meta      Meta            `json:"meta"`
}
