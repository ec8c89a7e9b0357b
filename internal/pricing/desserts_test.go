package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

func TestDessertRates(t *testing.T) {
	tests := []struct {
		dessertType string
		quantity    int
		want        string
	}{
		{"cookie", 12, "24.00"},
		{"brownie", 6, "15.00"},
		{"cake", 2, "8.00"},
	}

	for _, tt := range tests {
		l, err := CalculateDesserts([]models.DessertSelection{
			{ID: "d", Name: "Dessert", Type: tt.dessertType, Quantity: tt.quantity},
		})
		require.NoError(t, err)

		ups := modifiersOfKind(l, models.KindUpcharge)
		require.Len(t, ups, 1, "type %s", tt.dessertType)
		assert.Equal(t, tt.want, ups[0].Amount.StringFixed(2), "type %s", tt.dessertType)
	}
}

func TestDessertsUnknownTypeIsContractViolation(t *testing.T) {
	_, err := CalculateDesserts([]models.DessertSelection{
		{ID: "d", Name: "Pie", Type: "pie", Quantity: 1},
	})
	assert.Error(t, err)
}

func TestDessertsCompletionNeedsOneSelection(t *testing.T) {
	l, err := CalculateDesserts(nil)
	require.NoError(t, err)
	assert.False(t, l.Meta.CompletionStatus[SectionDesserts])

	l, err = CalculateDesserts([]models.DessertSelection{
		{ID: "c", Name: "Cookie Dozen", Type: "cookie", Quantity: 1},
	})
	require.NoError(t, err)
	assert.True(t, l.Meta.CompletionStatus[SectionDesserts])
}
