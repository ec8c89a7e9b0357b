package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateDips prices dip selections against the package's included dip
// allotment. Selections consume the allotment in input order; units past
// the allotment bill at the extra-dip rate. A large size variant adds a
// per-unit upgrade on top, and both upcharges can land on the same dip.
func CalculateDips(dips []models.DipSelection, includedCount int) *models.Ledger {
	l := NewLedger()

	remaining := includedCount
	total := 0
	for _, dip := range dips {
		if dip.Quantity <= 0 {
			continue
		}
		total += dip.Quantity

		includedUnits := dip.Quantity
		if includedUnits > remaining {
			includedUnits = remaining
		}
		remaining -= includedUnits
		extraUnits := dip.Quantity - includedUnits

		itemID := "dip-" + dip.ID
		mustAddItem(l, models.Item{
			ID:       itemID,
			Category: models.CategoryDip,
			Name:     dip.Name,
			Quantity: dip.Quantity,
			Attributes: map[string]string{
				"size": dipSize(dip.Size),
			},
		})

		if extraUnits > 0 {
			amount := extraDipPrice.Mul(decimal.NewFromInt(int64(extraUnits)))
			mustAddModifier(l, itemID, models.KindUpcharge, amount,
				fmt.Sprintf("Extra dips: %s x%d", dip.Name, extraUnits))
		}
		if dip.Size == "large" {
			amount := dipSizeUpgradePrice.Mul(decimal.NewFromInt(int64(dip.Quantity)))
			mustAddModifier(l, itemID, models.KindUpcharge, amount,
				fmt.Sprintf("Large size upgrade: %s x%d", dip.Name, dip.Quantity))
		}
	}

	l.Meta.CompletionStatus[SectionDips] = total >= includedCount

	return l
}

func dipSize(size string) string {
	if size == "" {
		return "regular"
	}
	return size
}
