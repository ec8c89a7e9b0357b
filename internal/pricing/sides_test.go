package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

func TestSidesRates(t *testing.T) {
	tests := []struct {
		sideType string
		quantity int
		want     string
	}{
		{"chips", 2, "17.00"},
		{"cold", 3, "13.50"},
		{"salad", 1, "6.00"},
	}

	for _, tt := range tests {
		l, err := CalculateSides([]models.SideSelection{
			{ID: "x", Name: "Side", Type: tt.sideType, Quantity: tt.quantity},
		})
		require.NoError(t, err)

		ups := modifiersOfKind(l, models.KindUpcharge)
		require.Len(t, ups, 1, "type %s", tt.sideType)
		assert.Equal(t, tt.want, ups[0].Amount.StringFixed(2), "type %s", tt.sideType)
	}
}

func TestSidesEachSelectionGetsItemAndUpcharge(t *testing.T) {
	l, err := CalculateSides([]models.SideSelection{
		{ID: "chips", Name: "Chips 5-Pack", Type: "chips", Quantity: 1},
		{ID: "slaw", Name: "Coleslaw", Type: "cold", Quantity: 2},
	})
	require.NoError(t, err)

	assert.Len(t, l.Items, 2)
	assert.Len(t, modifiersOfKind(l, models.KindUpcharge), 2)
	assert.True(t, l.Meta.CompletionStatus[SectionSides])
}

func TestSidesUnknownTypeIsContractViolation(t *testing.T) {
	_, err := CalculateSides([]models.SideSelection{
		{ID: "x", Name: "Mystery", Type: "fried", Quantity: 1},
	})
	assert.Error(t, err)
}

func TestSidesEmptySelectionIncomplete(t *testing.T) {
	l, err := CalculateSides(nil)
	require.NoError(t, err)
	assert.False(t, l.Meta.CompletionStatus[SectionSides])
}
