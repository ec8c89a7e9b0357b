package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItemRejectsDuplicateID(t *testing.T) {
	l := NewLedger()

	err := AddItem(l, models.Item{ID: "a", Category: models.CategorySide, Quantity: 1})
	require.NoError(t, err)

	err = AddItem(l, models.Item{ID: "a", Category: models.CategorySide, Quantity: 2})
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestAddModifierRejectsNegativeAmount(t *testing.T) {
	l := NewLedger()
	err := AddModifier(l, "x", models.KindDiscount, dec("-1.00"), "bad")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestAddModifierForcesWarningsToZero(t *testing.T) {
	l := NewLedger()
	err := AddModifier(l, SectionRef(SectionWings), models.KindWarning, dec("5.00"), "warn")
	require.NoError(t, err)
	assert.True(t, l.Modifiers[0].Amount.IsZero())
}

func TestCalculateTotalsIdentity(t *testing.T) {
	l := NewLedger()
	require.NoError(t, AddItem(l, models.Item{
		ID:        "pkg",
		Category:  models.CategoryPackage,
		Quantity:  1,
		BasePrice: dec("329.99"),
	}))
	require.NoError(t, AddModifier(l, "pkg", models.KindUpcharge, dec("10.00"), "up"))
	require.NoError(t, AddModifier(l, "pkg", models.KindDiscount, dec("8.50"), "down"))
	require.NoError(t, AddModifier(l, "pkg", models.KindWarning, decimal.Zero, "warnings never touch totals"))

	CalculateTotals(l, 15)

	assert.True(t, l.Totals.Subtotal.Equal(l.Totals.ItemsSubtotal.Add(l.Totals.Upcharges).Sub(l.Totals.Discounts).Round(2)))
	assert.True(t, l.Totals.Tax.Equal(l.Totals.Subtotal.Mul(dec("0.08")).Round(2)))
	assert.True(t, l.Totals.Total.Equal(l.Totals.Subtotal.Add(l.Totals.Tax).Round(2)))
	assert.True(t, l.Totals.PerPersonCost.Equal(l.Totals.Total.Div(decimal.NewFromInt(15)).Round(2)))
	assert.Equal(t, 15, l.Meta.GuestCount)
}

func TestCalculateTotalsDefaultsGuestCount(t *testing.T) {
	l := NewLedger()
	require.NoError(t, AddItem(l, models.Item{
		ID:        "pkg",
		Category:  models.CategoryPackage,
		Quantity:  1,
		BasePrice: dec("100.00"),
	}))

	CalculateTotals(l, 0)

	// 100.00 + 8.00 tax over 10 guests
	assert.Equal(t, "10.80", l.Totals.PerPersonCost.StringFixed(2))
	assert.Equal(t, 10, l.Meta.GuestCount)
}

func TestValidateCatchesDanglingModifier(t *testing.T) {
	l := NewLedger()
	require.NoError(t, AddModifier(l, "missing-item", models.KindUpcharge, dec("1.00"), "oops"))
	assert.Error(t, Validate(l))
}

func TestValidateAllowsSectionRefs(t *testing.T) {
	l := NewLedger()
	require.NoError(t, AddModifier(l, SectionRef(SectionRemovals), models.KindDiscount, dec("1.00"), "credit"))
	assert.NoError(t, Validate(l))
}

func TestCloneIsDeep(t *testing.T) {
	l := NewLedger()
	require.NoError(t, AddItem(l, models.Item{
		ID:         "a",
		Category:   models.CategoryWing,
		Quantity:   10,
		Attributes: map[string]string{"style": "mixed"},
	}))
	require.NoError(t, AddModifier(l, "a", models.KindUpcharge, dec("2.50"), "up"))
	l.Meta.CompletionStatus[SectionWings] = true
	l.Meta.RemovalBreakdown = []models.RemovalEntry{{Name: "Coleslaw", Quantity: 1}}

	clone := Clone(l)
	clone.Items["a"].Attributes["style"] = "flats"
	clone.Modifiers[0].Label = "changed"
	clone.Meta.CompletionStatus[SectionWings] = false
	clone.Meta.RemovalBreakdown[0].Name = "changed"

	assert.Equal(t, "mixed", l.Items["a"].Attributes["style"])
	assert.Equal(t, "up", l.Modifiers[0].Label)
	assert.True(t, l.Meta.CompletionStatus[SectionWings])
	assert.Equal(t, "Coleslaw", l.Meta.RemovalBreakdown[0].Name)
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, Clone(nil))
}
