package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

func TestDipsWithinAllotmentCarryNoCharge(t *testing.T) {
	l := CalculateDips([]models.DipSelection{
		{ID: "ranch", Name: "Ranch", Quantity: 2},
		{ID: "blue", Name: "Blue Cheese", Quantity: 2},
	}, 4)

	assert.Len(t, l.Items, 2)
	assert.Empty(t, modifiersOfKind(l, models.KindUpcharge))
	assert.True(t, l.Meta.CompletionStatus[SectionDips])
}

func TestDipsAllotmentConsumedInInputOrder(t *testing.T) {
	l := CalculateDips([]models.DipSelection{
		{ID: "ranch", Name: "Ranch", Quantity: 3},
		{ID: "blue", Name: "Blue Cheese", Quantity: 3},
	}, 4)

	ups := modifiersOfKind(l, models.KindUpcharge)
	require.Len(t, ups, 1)
	assert.Equal(t, "dip-blue", ups[0].ItemID)
	// 2 extra units at 2.50
	assert.Equal(t, "5.00", ups[0].Amount.StringFixed(2))
}

func TestDipsSizeUpgradeStacksWithExtraCharge(t *testing.T) {
	l := CalculateDips([]models.DipSelection{
		{ID: "queso", Name: "Queso", Size: "large", Quantity: 3},
	}, 1)

	ups := modifiersOfKind(l, models.KindUpcharge)
	require.Len(t, ups, 2)
	for _, mod := range ups {
		assert.Equal(t, "dip-queso", mod.ItemID)
	}

	var extra, upgrade string
	for _, mod := range ups {
		switch {
		case mod.Label == "Extra dips: Queso x2":
			extra = mod.Amount.StringFixed(2)
		case mod.Label == "Large size upgrade: Queso x3":
			upgrade = mod.Amount.StringFixed(2)
		}
	}
	assert.Equal(t, "5.00", extra)
	assert.Equal(t, "3.00", upgrade)
}

func TestDipsBelowAllotmentIncomplete(t *testing.T) {
	l := CalculateDips([]models.DipSelection{
		{ID: "ranch", Name: "Ranch", Quantity: 1},
	}, 4)

	assert.False(t, l.Meta.CompletionStatus[SectionDips])
}

func TestDipsZeroQuantitySkipped(t *testing.T) {
	l := CalculateDips([]models.DipSelection{
		{ID: "ranch", Name: "Ranch", Quantity: 0},
	}, 0)

	assert.Empty(t, l.Items)
	assert.True(t, l.Meta.CompletionStatus[SectionDips])
}
