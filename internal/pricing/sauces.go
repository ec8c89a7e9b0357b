package pricing

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// CalculateSauces prices sauce selections against the package sauce
// schema. The first max selections ride included with the package; each
// one past max carries a flat per-sauce upcharge. Count and type
// violations surface as warnings, and large extra counts get a
// bulk-pricing suggestion that is never applied automatically.
func CalculateSauces(sauces []models.SauceSelection, opts *models.SauceOptions) *models.Ledger {
	l := NewLedger()
	if opts == nil {
		return l
	}

	allowed := make(map[string]bool, len(opts.AllowedTypes))
	for _, t := range opts.AllowedTypes {
		allowed[t] = true
	}

	seen := make(map[string]bool, len(sauces))
	extras := 0
	added := 0
	for _, sauce := range sauces {
		if seen[sauce.ID] {
			mustAddModifier(l, SectionRef(SectionSauces), models.KindWarning, decimal.Zero,
				fmt.Sprintf("Duplicate sauce selection: %s", sauce.Name))
			continue
		}
		seen[sauce.ID] = true

		// The first max distinct selections ride included; everything
		// after is an extra.
		included := added < opts.Max
		added++
		if !included {
			extras++
		}

		itemID := "sauce-" + sauce.ID

		mustAddItem(l, models.Item{
			ID:       itemID,
			Category: models.CategorySauce,
			Name:     sauce.Name,
			Quantity: 1,
			Attributes: map[string]string{
				"type":      sauce.Type,
				"heatLevel": strconv.Itoa(sauce.HeatLevel),
				"included":  strconv.FormatBool(included),
			},
		})

		if !included {
			mustAddModifier(l, itemID, models.KindUpcharge, extraSaucePrice,
				fmt.Sprintf("Extra sauce: %s", sauce.Name))
		}

		if len(opts.AllowedTypes) > 0 && !allowed[sauce.Type] {
			mustAddModifier(l, itemID, models.KindWarning, decimal.Zero,
				fmt.Sprintf("Sauce type %q not available for this package", sauce.Type))
		}
	}

	count := len(sauces)
	if count < opts.Min {
		mustAddModifier(l, SectionRef(SectionSauces), models.KindWarning, decimal.Zero,
			fmt.Sprintf("Select at least %d sauces (have %d)", opts.Min, count))
	}
	if count > opts.Max {
		mustAddModifier(l, SectionRef(SectionSauces), models.KindWarning, decimal.Zero,
			fmt.Sprintf("Package includes %d sauces; %d extras billed separately", opts.Max, count-opts.Max))
	}

	if suggestion, ok := bulkSauceSuggestion(extras); ok {
		mustAddModifier(l, SectionRef(SectionSauces), models.KindWarning, decimal.Zero, suggestion)
	}

	l.Meta.CompletionStatus[SectionSauces] = count >= opts.Min && count <= opts.Max

	return l
}

// bulkSauceSuggestion compares flat extra-sauce pricing to the 5-pack or
// 10-pack bundle and reports the savings when the bundle wins.
func bulkSauceSuggestion(extras int) (string, bool) {
	if extras < sauceBundle5Threshold {
		return "", false
	}

	flat := extraSaucePrice.Mul(decimal.NewFromInt(int64(extras)))

	bundleName := "5-pack"
	bundled := sauceBundle5Pack.Add(extraSaucePrice.Mul(decimal.NewFromInt(int64(extras - sauceBundle5Threshold))))
	if extras >= sauceBundle10Threshold {
		bundleName = "10-pack"
		bundled = sauceBundle10Pak.Add(extraSaucePrice.Mul(decimal.NewFromInt(int64(extras - sauceBundle10Threshold))))
	}

	savings := flat.Sub(bundled)
	if !savings.IsPositive() {
		return "", false
	}
	return fmt.Sprintf("A sauce %s bundle would save $%s on %d extra sauces", bundleName, savings.StringFixed(2), extras), true
}
