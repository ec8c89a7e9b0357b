package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateRemovals computes refund-style credits for package items the
// customer omits. Each known item refunds a margin-tiered fraction of its
// list price per unit; the summed credit is capped at a fixed percentage
// of the package base price. Names missing from the pricing table
// contribute zero credit and are logged so an unpriced item is neither
// billed nor crashed on.
func CalculateRemovals(removed []models.RemovedItem, basePrice decimal.Decimal, log *zap.Logger) *models.Ledger {
	l := NewLedger()
	l.Meta.CompletionStatus[SectionRemovals] = true
	if len(removed) == 0 {
		return l
	}

	ref := SectionRef(SectionRemovals)
	breakdown := make([]models.RemovalEntry, 0, len(removed))
	uncapped := decimal.Zero

	for _, item := range removed {
		quantity := item.Quantity
		if quantity < 0 {
			quantity = 0
		}

		creditPerUnit, entry, ok := removalCreditFor(item.Name)
		if !ok {
			log.Warn("removed item not in pricing table, crediting zero",
				zap.String("name", item.Name),
				zap.String("category", item.Category))
			breakdown = append(breakdown, models.RemovalEntry{
				Name:          item.Name,
				Category:      item.Category,
				Quantity:      quantity,
				CreditPerUnit: decimal.Zero,
				TotalCredit:   decimal.Zero,
			})
			continue
		}

		totalCredit := creditPerUnit.Mul(decimal.NewFromInt(int64(quantity)))
		uncapped = uncapped.Add(totalCredit)
		breakdown = append(breakdown, models.RemovalEntry{
			Name:          item.Name,
			Category:      entry.Category,
			Quantity:      quantity,
			CreditPerUnit: creditPerUnit,
			TotalCredit:   totalCredit,
		})
	}

	l.Meta.RemovalBreakdown = breakdown

	creditCap := basePrice.Mul(removalCapRate)
	switch {
	case uncapped.GreaterThan(creditCap):
		mustAddModifier(l, ref, models.KindDiscount, creditCap,
			fmt.Sprintf("Removal credit (capped at %s%% of package price)",
				removalCapRate.Mul(decimal.NewFromInt(100)).StringFixed(0)))
		mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
			fmt.Sprintf("Removal credits capped at $%s; $%s of credit exceeds the cap",
				creditCap.StringFixed(2), uncapped.Sub(creditCap).StringFixed(2)))
		l.Meta.CapExceeded = true
	case uncapped.IsPositive():
		mustAddModifier(l, ref, models.KindDiscount, uncapped, "Removal credit")
	}

	return l
}
