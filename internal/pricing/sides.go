package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateSides prices side selections: chips by the 5-pack unit, cold
// sides and salads per unit. Every selection becomes its own ledger item
// with a matching upcharge modifier. An unresolvable side type is a
// contract violation, not a warning.
func CalculateSides(sides []models.SideSelection) (*models.Ledger, error) {
	l := NewLedger()

	total := 0
	for _, side := range sides {
		if side.Quantity <= 0 {
			continue
		}

		rate, unit, err := sideRate(side.Type)
		if err != nil {
			return nil, err
		}
		total += side.Quantity

		itemID := "side-" + side.ID
		mustAddItem(l, models.Item{
			ID:       itemID,
			Category: models.CategorySide,
			Name:     side.Name,
			Quantity: side.Quantity,
			Attributes: map[string]string{
				"type": side.Type,
				"unit": unit,
			},
		})
		amount := rate.Mul(decimal.NewFromInt(int64(side.Quantity)))
		mustAddModifier(l, itemID, models.KindUpcharge, amount,
			fmt.Sprintf("%s x%d", side.Name, side.Quantity))
	}

	l.Meta.CompletionStatus[SectionSides] = total > 0

	return l, nil
}

func sideRate(sideType string) (decimal.Decimal, string, error) {
	switch sideType {
	case "chips":
		return chipsFivePackPrice, "5-pack", nil
	case "cold":
		return coldSidePrice, "each", nil
	case "salad":
		return saladPrice, "each", nil
	default:
		return decimal.Zero, "", fmt.Errorf("sides: unknown side type %q", sideType)
	}
}
