package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateDesserts prices dessert selections at the fixed per-unit rate
// for their type discriminator (cookie, brownie or cake).
func CalculateDesserts(desserts []models.DessertSelection) (*models.Ledger, error) {
	l := NewLedger()

	total := 0
	for _, dessert := range desserts {
		if dessert.Quantity <= 0 {
			continue
		}

		rate, ok := dessertRates[dessert.Type]
		if !ok {
			return nil, fmt.Errorf("desserts: unknown dessert type %q", dessert.Type)
		}
		total += dessert.Quantity

		itemID := "dessert-" + dessert.ID
		mustAddItem(l, models.Item{
			ID:       itemID,
			Category: models.CategoryDessert,
			Name:     dessert.Name,
			Quantity: dessert.Quantity,
			Attributes: map[string]string{
				"type": dessert.Type,
			},
		})
		amount := rate.Mul(decimal.NewFromInt(int64(dessert.Quantity)))
		mustAddModifier(l, itemID, models.KindUpcharge, amount,
			fmt.Sprintf("%s x%d", dessert.Name, dessert.Quantity))
	}

	l.Meta.CompletionStatus[SectionDesserts] = total > 0

	return l, nil
}
