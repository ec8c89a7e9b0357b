package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateBeverages prices beverage selections split by temperature.
// Cold drinks rate by can/bottle/pitcher, hot drinks by cup/box. Unknown
// temperatures or sizes are contract violations.
func CalculateBeverages(beverages []models.BeverageSelection) (*models.Ledger, error) {
	l := NewLedger()

	total := 0
	for _, bev := range beverages {
		if bev.Quantity <= 0 {
			continue
		}

		rate, err := beverageRate(bev.Temperature, bev.Size)
		if err != nil {
			return nil, err
		}
		total += bev.Quantity

		itemID := "beverage-" + bev.ID
		mustAddItem(l, models.Item{
			ID:       itemID,
			Category: models.CategoryBeverage,
			Name:     bev.Name,
			Quantity: bev.Quantity,
			Attributes: map[string]string{
				"temperature": bev.Temperature,
				"size":        bev.Size,
			},
		})
		amount := rate.Mul(decimal.NewFromInt(int64(bev.Quantity)))
		mustAddModifier(l, itemID, models.KindUpcharge, amount,
			fmt.Sprintf("%s (%s) x%d", bev.Name, bev.Size, bev.Quantity))
	}

	l.Meta.CompletionStatus[SectionBeverages] = total > 0

	return l, nil
}

func beverageRate(temperature, size string) (decimal.Decimal, error) {
	var rates map[string]decimal.Decimal
	switch temperature {
	case "cold":
		rates = coldBeverageRates
	case "hot":
		rates = hotBeverageRates
	default:
		return decimal.Zero, fmt.Errorf("beverages: unknown temperature %q", temperature)
	}

	rate, ok := rates[size]
	if !ok {
		return decimal.Zero, fmt.Errorf("beverages: unknown %s beverage size %q", temperature, size)
	}
	return rate, nil
}
