package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

var (
	// ErrNegativeAmount rejects modifiers with a negative magnitude;
	// discounts are magnitudes, not signed amounts.
	ErrNegativeAmount = errors.New("modifier amount must not be negative")

	// ErrDuplicateItem rejects a second item with the same id.
	ErrDuplicateItem = errors.New("item id already present in ledger")
)

// sectionRefPrefix marks a modifier itemId as a meta-only reference to a
// configuration section rather than a billable item.
const sectionRefPrefix = "section:"

// SectionRef builds a meta-only modifier reference for a section, used
// by warnings and discounts that are not tied to a single item.
func SectionRef(section string) string {
	return sectionRefPrefix + section
}

// NewLedger creates an empty ledger fragment.
func NewLedger() *models.Ledger {
	return &models.Ledger{
		Items:     make(map[string]models.Item),
		Modifiers: make([]models.Modifier, 0),
		Meta: models.Meta{
			CompletionStatus: make(map[string]bool),
		},
	}
}

// AddItem inserts a priced line into the ledger.
func AddItem(l *models.Ledger, item models.Item) error {
	if item.ID == "" {
		return errors.New("item id must not be empty")
	}
	if _, exists := l.Items[item.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
	}
	l.Items[item.ID] = item
	return nil
}

// AddModifier appends an adjustment to the ledger. Warnings are forced
// to zero amount so they can never leak into totals.
func AddModifier(l *models.Ledger, itemID string, kind models.ModifierKind, amount decimal.Decimal, label string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	if kind == models.KindWarning {
		amount = decimal.Zero
	}
	l.Modifiers = append(l.Modifiers, models.Modifier{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Kind:      kind,
		Amount:    amount,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// CalculateTotals derives the numeric summary from the ledger's items
// and non-warning modifiers and writes it back. Monetary values are
// rounded to 2 places here and nowhere earlier.
func CalculateTotals(l *models.Ledger, guestCount int) {
	if guestCount < 1 {
		guestCount = defaultGuestCount
	}

	itemsSubtotal := decimal.Zero
	for _, item := range l.Items {
		itemsSubtotal = itemsSubtotal.Add(item.BasePrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	upcharges := decimal.Zero
	discounts := decimal.Zero
	for _, mod := range l.Modifiers {
		switch mod.Kind {
		case models.KindUpcharge:
			upcharges = upcharges.Add(mod.Amount)
		case models.KindDiscount:
			discounts = discounts.Add(mod.Amount)
		}
	}

	subtotal := itemsSubtotal.Add(upcharges).Sub(discounts).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	l.Totals = models.Totals{
		ItemsSubtotal: itemsSubtotal.Round(2),
		Upcharges:     upcharges.Round(2),
		Discounts:     discounts.Round(2),
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PerPersonCost: total.Div(decimal.NewFromInt(int64(guestCount))).Round(2),
	}
	l.Meta.GuestCount = guestCount
	l.Meta.LastCalculated = time.Now().UTC()
}

// mustAddItem and mustAddModifier panic on malformed calculator output.
// The calculators own their ids and amounts, so a failure here is a bug
// in this package, not bad customer input.
func mustAddItem(l *models.Ledger, item models.Item) {
	if err := AddItem(l, item); err != nil {
		panic(err)
	}
}

func mustAddModifier(l *models.Ledger, itemID string, kind models.ModifierKind, amount decimal.Decimal, label string) {
	if err := AddModifier(l, itemID, kind, amount, label); err != nil {
		panic(err)
	}
}

// Validate checks the modifier reference invariant: every modifier must
// point at an existing item unless it carries a meta-only section ref.
func Validate(l *models.Ledger) error {
	for _, mod := range l.Modifiers {
		if strings.HasPrefix(mod.ItemID, sectionRefPrefix) {
			continue
		}
		if _, ok := l.Items[mod.ItemID]; !ok {
			return fmt.Errorf("modifier %s references missing item %q", mod.ID, mod.ItemID)
		}
	}
	return nil
}

// Clone deep-copies a ledger so the aggregator can hand out the cached
// ledger without exposing internal state.
func Clone(l *models.Ledger) *models.Ledger {
	if l == nil {
		return nil
	}

	out := &models.Ledger{
		Items:     make(map[string]models.Item, len(l.Items)),
		Modifiers: make([]models.Modifier, len(l.Modifiers)),
		Totals:    l.Totals,
		Meta: models.Meta{
			LastCalculated:   l.Meta.LastCalculated,
			GuestCount:       l.Meta.GuestCount,
			CompletionStatus: make(map[string]bool, len(l.Meta.CompletionStatus)),
			PackageID:        l.Meta.PackageID,
			PackageName:      l.Meta.PackageName,
			CapExceeded:      l.Meta.CapExceeded,
		},
	}
	for id, item := range l.Items {
		if item.Attributes != nil {
			attrs := make(map[string]string, len(item.Attributes))
			for k, v := range item.Attributes {
				attrs[k] = v
			}
			item.Attributes = attrs
		}
		out.Items[id] = item
	}
	copy(out.Modifiers, l.Modifiers)
	for k, v := range l.Meta.CompletionStatus {
		out.Meta.CompletionStatus[k] = v
	}
	if l.Meta.RemovalBreakdown != nil {
		out.Meta.RemovalBreakdown = make([]models.RemovalEntry, len(l.Meta.RemovalBreakdown))
		copy(out.Meta.RemovalBreakdown, l.Meta.RemovalBreakdown)
	}
	return out
}
