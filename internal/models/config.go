package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Snapshot is one complete configuration handed to the pricing engine by
// the hosting layer. All data is already resolved; the engine performs no
// fetching of its own.
type Snapshot struct {
	SelectedPackage SelectedPackage `json:"selectedPackage"`
	CurrentConfig   CurrentConfig   `json:"currentConfig"`
	EventDetails    *EventDetails   `json:"eventDetails,omitempty"`
}

// SelectedPackage describes the catering package the customer started from.
type SelectedPackage struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	WingOptions  *WingOptions    `json:"wingOptions,omitempty"`
	SauceOptions *SauceOptions   `json:"sauceSelections,omitempty"`
	DipsIncluded int             `json:"dipsIncluded,omitempty"`
}

// WingOptions is the package-side wing schema. DefaultDistribution and
// PerUnitCosts are newer schema fields; either may be absent on older
// package documents.
type WingOptions struct {
	TotalWings          int            `json:"totalWings"`
	DefaultDistribution *WingCounts    `json:"defaultDistribution,omitempty"`
	PerUnitCosts        *WingUnitCosts `json:"perUnitCosts,omitempty"`
}

// WingCounts holds a wing count per type.
type WingCounts struct {
	Boneless   int `json:"boneless"`
	BoneIn     int `json:"boneIn"`
	PlantBased int `json:"plantBased"`
}

// WingUnitCosts holds a per-wing cost per type.
type WingUnitCosts struct {
	Boneless   decimal.Decimal `json:"boneless"`
	BoneIn     decimal.Decimal `json:"boneIn"`
	PlantBased decimal.Decimal `json:"plantBased"`
}

// SauceOptions is the package-side sauce schema.
type SauceOptions struct {
	Min          int      `json:"min"`
	Max          int      `json:"max"`
	AllowedTypes []string `json:"allowedTypes,omitempty"`
}

// CurrentConfig is the customer's current set of selections.
type CurrentConfig struct {
	WingDistribution *WingDistribution  `json:"wingDistribution,omitempty"`
	Sauces           []SauceSelection   `json:"sauces,omitempty"`
	Dips             DipSelections      `json:"dips,omitempty"`
	Sides            SideSelections     `json:"sides,omitempty"`
	Desserts         DessertSelections  `json:"desserts,omitempty"`
	Beverages        BeverageSelections `json:"beverages,omitempty"`
	RemovedItems     []RemovedItem      `json:"removedItems,omitempty"`
}

// WingDistribution is the customer's chosen wing mix. BoneInStyle is one
// of "mixed", "flats" or "drums"; empty means mixed.
type WingDistribution struct {
	Boneless    int    `json:"boneless"`
	BoneIn      int    `json:"boneIn"`
	PlantBased  int    `json:"plantBased"`
	BoneInStyle string `json:"boneInStyle,omitempty"`
}

// SauceSelection is one chosen sauce.
type SauceSelection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	HeatLevel int    `json:"heatLevel"`
}

// DipSelection is one chosen dip. Size "large" triggers a per-unit size
// upgrade upcharge.
type DipSelection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

// SideSelection is one chosen side. Type is one of "chips", "cold" or
// "salad"; chips quantities count 5-pack units.
type SideSelection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// DessertSelection is one chosen dessert. Type is one of "cookie",
// "brownie" or "cake".
type DessertSelection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// BeverageSelection is one chosen beverage. Temperature is "cold" or
// "hot"; size is can/bottle/pitcher for cold, cup/box for hot.
type BeverageSelection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Temperature string `json:"temperature"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

// RemovedItem names a package-included item the customer chose to omit.
type RemovedItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// EventDetails carries event-level inputs to the totals calculation.
type EventDetails struct {
	GuestCount int `json:"guestCount"`
}

// Selection collections arrive from older clients as JSON arrays and from
// newer clients as id-keyed objects. Each collection type normalizes both
// shapes to the slice form here, at the boundary, so the calculators only
// ever see one shape. Any other JSON shape is a contract violation.

// DipSelections normalizes dip input, array or id-keyed object.
type DipSelections []DipSelection

// SideSelections normalizes side input, array or id-keyed object.
type SideSelections []SideSelection

// DessertSelections normalizes dessert input, array or id-keyed object.
type DessertSelections []DessertSelection

// BeverageSelections normalizes beverage input, array or id-keyed object.
type BeverageSelections []BeverageSelection

func (d *DipSelections) UnmarshalJSON(data []byte) error {
	out, err := normalizeCollection[DipSelection]("dips", data, func(id string, v *DipSelection) {
		if v.ID == "" {
			v.ID = id
		}
	})
	if err != nil {
		return err
	}
	*d = out
	return nil
}

func (s *SideSelections) UnmarshalJSON(data []byte) error {
	out, err := normalizeCollection[SideSelection]("sides", data, func(id string, v *SideSelection) {
		if v.ID == "" {
			v.ID = id
		}
	})
	if err != nil {
		return err
	}
	*s = out
	return nil
}

func (d *DessertSelections) UnmarshalJSON(data []byte) error {
	out, err := normalizeCollection[DessertSelection]("desserts", data, func(id string, v *DessertSelection) {
		if v.ID == "" {
			v.ID = id
		}
	})
	if err != nil {
		return err
	}
	*d = out
	return nil
}

func (b *BeverageSelections) UnmarshalJSON(data []byte) error {
	out, err := normalizeCollection[BeverageSelection]("beverages", data, func(id string, v *BeverageSelection) {
		if v.ID == "" {
			v.ID = id
		}
	})
	if err != nil {
		return err
	}
	*b = out
	return nil
}

// normalizeCollection decodes either a JSON array or an id-keyed JSON
// object into a slice. Object keys are visited in sorted order so the
// same input always produces the same selection order.
func normalizeCollection[T any](section string, data []byte, setID func(id string, v *T)) ([]T, error) {
	trimmed := firstNonSpace(data)

	switch trimmed {
	case '[':
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%s: invalid array form: %w", section, err)
		}
		return list, nil
	case '{':
		var keyed map[string]T
		if err := json.Unmarshal(data, &keyed); err != nil {
			return nil, fmt.Errorf("%s: invalid object form: %w", section, err)
		}
		ids := make([]string, 0, len(keyed))
		for id := range keyed {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		list := make([]T, 0, len(keyed))
		for _, id := range ids {
			v := keyed[id]
			setID(id, &v)
			list = append(list, v)
		}
		return list, nil
	case 'n': // JSON null
		return nil, nil
	default:
		return nil, fmt.Errorf("%s: expected array or object, got %q", section, string(data))
	}
}

func firstNonSpace(data []byte) byte {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}
