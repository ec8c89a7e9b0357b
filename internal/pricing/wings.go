package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// Section names double as completion-status keys and meta-only modifier
// references.
const (
	SectionWings     = "wings"
	SectionSauces    = "sauces"
	SectionDips      = "dips"
	SectionSides     = "sides"
	SectionDesserts  = "desserts"
	SectionBeverages = "beverages"
	SectionRemovals  = "removals"
)

const (
	itemWingsBoneless   = "wings-boneless"
	itemWingsBoneIn     = "wings-bone-in"
	itemWingsPlantBased = "wings-plant-based"
)

// CalculateWings prices the customer's wing-type distribution against the
// package wing schema: one item per non-zero type, a per-wing surcharge
// for flats-only or drums-only bone-in preparation, a per-wing surcharge
// on plant-based wings, and a distribution differential when the package
// schema carries default counts and unit costs. Count constraints are
// reported as warning modifiers, never as errors.
func CalculateWings(dist *models.WingDistribution, opts *models.WingOptions) *models.Ledger {
	l := NewLedger()
	if opts == nil {
		return l
	}
	if dist == nil {
		dist = &models.WingDistribution{}
	}

	if dist.Boneless != 0 {
		mustAddItem(l, models.Item{
			ID:       itemWingsBoneless,
			Category: models.CategoryWing,
			Name:     "Boneless Wings",
			Quantity: dist.Boneless,
		})
	}
	if dist.BoneIn != 0 {
		style := dist.BoneInStyle
		if style == "" {
			style = "mixed"
		}
		mustAddItem(l, models.Item{
			ID:         itemWingsBoneIn,
			Category:   models.CategoryWing,
			Name:       "Bone-In Wings",
			Quantity:   dist.BoneIn,
			Attributes: map[string]string{"style": style},
		})
	}
	if dist.PlantBased != 0 {
		mustAddItem(l, models.Item{
			ID:       itemWingsPlantBased,
			Category: models.CategoryWing,
			Name:     "Plant-Based Wings",
			Quantity: dist.PlantBased,
			Attributes: map[string]string{
				"dietary": "vegan,vegetarian",
			},
		})
	}

	// Flats-only and drums-only prep costs the kitchen extra sorting; the
	// surcharge applies to the bone-in count only.
	if dist.BoneIn > 0 && (dist.BoneInStyle == "flats" || dist.BoneInStyle == "drums") {
		amount := boneInStyleUpchargePerWing.Mul(decimal.NewFromInt(int64(dist.BoneIn)))
		mustAddModifier(l, itemWingsBoneIn, models.KindUpcharge, amount,
			fmt.Sprintf("%s-only preparation (%d wings)", dist.BoneInStyle, dist.BoneIn))
	}

	if dist.PlantBased > 0 {
		amount := plantBasedUpchargePerWing.Mul(decimal.NewFromInt(int64(dist.PlantBased)))
		mustAddModifier(l, itemWingsPlantBased, models.KindUpcharge, amount,
			fmt.Sprintf("Plant-based wings (%d)", dist.PlantBased))
	}

	// Distribution differential, only when the package schema carries both
	// default counts and per-unit costs. Older package documents without
	// this data price at the package rate with no adjustment.
	if opts.DefaultDistribution != nil && opts.PerUnitCosts != nil {
		diff := distributionCost(dist.Boneless, dist.BoneIn, dist.PlantBased, opts.PerUnitCosts).
			Sub(distributionCost(opts.DefaultDistribution.Boneless, opts.DefaultDistribution.BoneIn, opts.DefaultDistribution.PlantBased, opts.PerUnitCosts))
		switch {
		case diff.IsPositive():
			mustAddModifier(l, SectionRef(SectionWings), models.KindUpcharge, diff,
				"Wing distribution adjustment")
		case diff.IsNegative():
			mustAddModifier(l, SectionRef(SectionWings), models.KindDiscount, diff.Abs(),
				"Wing distribution adjustment")
		}
	}

	addWingWarnings(l, dist, opts)

	selected := dist.Boneless + dist.BoneIn + dist.PlantBased
	l.Meta.CompletionStatus[SectionWings] = selected == opts.TotalWings

	return l
}

func distributionCost(boneless, boneIn, plantBased int, costs *models.WingUnitCosts) decimal.Decimal {
	return costs.Boneless.Mul(decimal.NewFromInt(int64(boneless))).
		Add(costs.BoneIn.Mul(decimal.NewFromInt(int64(boneIn)))).
		Add(costs.PlantBased.Mul(decimal.NewFromInt(int64(plantBased))))
}

func addWingWarnings(l *models.Ledger, dist *models.WingDistribution, opts *models.WingOptions) {
	ref := SectionRef(SectionWings)

	counts := map[string]int{
		"boneless":    dist.Boneless,
		"bone-in":     dist.BoneIn,
		"plant-based": dist.PlantBased,
	}
	for _, name := range []string{"boneless", "bone-in", "plant-based"} {
		if counts[name] < 0 {
			mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
				fmt.Sprintf("Negative %s wing count (%d)", name, counts[name]))
		}
	}

	selected := dist.Boneless + dist.BoneIn + dist.PlantBased
	if selected != opts.TotalWings {
		mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
			fmt.Sprintf("Selected %d wings but package includes %d", selected, opts.TotalWings))
	}
	if selected > opts.TotalWings {
		mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
			fmt.Sprintf("%d extra wings will be billed as add-ons", selected-opts.TotalWings))
	}

	active := 0
	for _, count := range counts {
		if count > 0 {
			active++
		}
	}
	if active >= 2 {
		for _, name := range []string{"boneless", "bone-in", "plant-based"} {
			if count := counts[name]; count > 0 && count < wingPerTypeMinimum {
				mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
					fmt.Sprintf("At least %d %s wings required when mixing types (have %d)", wingPerTypeMinimum, name, count))
			}
		}
	}

	if selected < wingOverallMinimum {
		mustAddModifier(l, ref, models.KindWarning, decimal.Zero,
			fmt.Sprintf("Wing orders start at %d wings (have %d)", wingOverallMinimum, selected))
	}
}
