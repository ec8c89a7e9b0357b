package pricing

import "github.com/shopspring/decimal"

// Fixed rates and thresholds for the pricing engine. These are static
// lookup tables rather than inline conditionals so the cap and credit
// math stays auditable.

var (
	taxRate        = decimal.RequireFromString("0.08")
	removalCapRate = decimal.RequireFromString("0.20")
)

const defaultGuestCount = 10

// Wing rates and validation thresholds.
var (
	boneInStyleUpchargePerWing = decimal.RequireFromString("0.25")
	plantBasedUpchargePerWing  = decimal.RequireFromString("0.50")
)

const (
	wingPerTypeMinimum = 10
	wingOverallMinimum = 20
)

// Sauce rates. Bundles are suggestion-only; the engine never applies
// them automatically.
var (
	extraSaucePrice  = decimal.RequireFromString("1.50")
	sauceBundle5Pack = decimal.RequireFromString("6.00")
	sauceBundle10Pak = decimal.RequireFromString("11.00")
)

const (
	sauceBundle5Threshold  = 5
	sauceBundle10Threshold = 10
)

// Dip rates.
var (
	extraDipPrice       = decimal.RequireFromString("2.50")
	dipSizeUpgradePrice = decimal.RequireFromString("1.00")
)

// Side rates. Chips are sold and priced per 5-pack unit.
var (
	chipsFivePackPrice = decimal.RequireFromString("8.50")
	coldSidePrice      = decimal.RequireFromString("4.50")
	saladPrice         = decimal.RequireFromString("6.00")
)

// Dessert rates by type discriminator.
var dessertRates = map[string]decimal.Decimal{
	"cookie":  decimal.RequireFromString("2.00"),
	"brownie": decimal.RequireFromString("2.50"),
	"cake":    decimal.RequireFromString("4.00"),
}

// Beverage rates by temperature and size.
var coldBeverageRates = map[string]decimal.Decimal{
	"can":     decimal.RequireFromString("1.50"),
	"bottle":  decimal.RequireFromString("2.50"),
	"pitcher": decimal.RequireFromString("6.00"),
}

var hotBeverageRates = map[string]decimal.Decimal{
	"cup": decimal.RequireFromString("2.00"),
	"box": decimal.RequireFromString("12.00"),
}

// MarginTier buckets catalog items by how much margin the kitchen makes
// on them; higher margin means a smaller removal credit.
type MarginTier string

const (
	MarginHigh   MarginTier = "high"
	MarginMedium MarginTier = "medium"
	MarginLow    MarginTier = "low"
)

// creditRates maps a margin tier to the fraction of list price refunded
// when the item is removed from the package.
var creditRates = map[MarginTier]decimal.Decimal{
	MarginHigh:   decimal.RequireFromString("0.50"),
	MarginMedium: decimal.RequireFromString("0.75"),
	MarginLow:    decimal.RequireFromString("1.00"),
}

// catalogEntry is one row of the removal-credit pricing table.
type catalogEntry struct {
	Category  string
	ListPrice decimal.Decimal
	Tier      MarginTier
}

// removalCatalog maps package item names to their list price and margin
// tier. Names not present here contribute zero credit.
var removalCatalog = map[string]catalogEntry{
	"Chips 5-Pack":       {Category: "side", ListPrice: decimal.RequireFromString("8.50"), Tier: MarginHigh},
	"Ranch Dip":          {Category: "dip", ListPrice: decimal.RequireFromString("2.50"), Tier: MarginHigh},
	"Blue Cheese Dip":    {Category: "dip", ListPrice: decimal.RequireFromString("2.50"), Tier: MarginHigh},
	"Celery Sticks":      {Category: "side", ListPrice: decimal.RequireFromString("3.00"), Tier: MarginHigh},
	"Carrot Sticks":      {Category: "side", ListPrice: decimal.RequireFromString("3.00"), Tier: MarginHigh},
	"Coleslaw":           {Category: "side", ListPrice: decimal.RequireFromString("4.50"), Tier: MarginMedium},
	"Potato Salad":       {Category: "side", ListPrice: decimal.RequireFromString("4.50"), Tier: MarginMedium},
	"Garden Salad":       {Category: "side", ListPrice: decimal.RequireFromString("6.00"), Tier: MarginMedium},
	"Cookie Dozen":       {Category: "dessert", ListPrice: decimal.RequireFromString("12.00"), Tier: MarginMedium},
	"Brownie Tray":       {Category: "dessert", ListPrice: decimal.RequireFromString("15.00"), Tier: MarginMedium},
	"Soda Pitcher":       {Category: "beverage", ListPrice: decimal.RequireFromString("6.00"), Tier: MarginLow},
	"Bottled Water Case": {Category: "beverage", ListPrice: decimal.RequireFromString("10.00"), Tier: MarginLow},
	"Iced Tea Gallon":    {Category: "beverage", ListPrice: decimal.RequireFromString("8.00"), Tier: MarginLow},
}

// removalCreditFor returns the per-unit credit for a removed item name,
// or zero and false when the name is not in the catalog.
func removalCreditFor(name string) (decimal.Decimal, catalogEntry, bool) {
	entry, ok := removalCatalog[name]
	if !ok {
		return decimal.Zero, catalogEntry{}, false
	}
	return entry.ListPrice.Mul(creditRates[entry.Tier]), entry, true
}
