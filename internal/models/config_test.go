package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionsAcceptArrayForm(t *testing.T) {
	var sides SideSelections
	err := json.Unmarshal([]byte(`[
		{"id":"chips","name":"Chips 5-Pack","type":"chips","quantity":2},
		{"id":"slaw","name":"Coleslaw","type":"cold","quantity":1}
	]`), &sides)
	require.NoError(t, err)

	require.Len(t, sides, 2)
	assert.Equal(t, "chips", sides[0].ID)
	assert.Equal(t, 1, sides[1].Quantity)
}

func TestSelectionsAcceptObjectForm(t *testing.T) {
	var beverages BeverageSelections
	err := json.Unmarshal([]byte(`{
		"soda":  {"name":"Soda","temperature":"cold","size":"pitcher","quantity":2},
		"cocoa": {"name":"Hot Cocoa","temperature":"hot","size":"box","quantity":1}
	}`), &beverages)
	require.NoError(t, err)

	require.Len(t, beverages, 2)
	// Object keys become ids and are visited in sorted order so repeated
	// parses of the same payload price identically.
	assert.Equal(t, "cocoa", beverages[0].ID)
	assert.Equal(t, "soda", beverages[1].ID)
}

func TestSelectionsObjectFormKeepsExplicitID(t *testing.T) {
	var dips DipSelections
	err := json.Unmarshal([]byte(`{"key":{"id":"ranch","name":"Ranch","quantity":1}}`), &dips)
	require.NoError(t, err)

	require.Len(t, dips, 1)
	assert.Equal(t, "ranch", dips[0].ID)
}

func TestSelectionsNullIsEmpty(t *testing.T) {
	var desserts DessertSelections
	err := json.Unmarshal([]byte(`null`), &desserts)
	require.NoError(t, err)
	assert.Empty(t, desserts)
}

func TestSelectionsRejectOtherShapes(t *testing.T) {
	var sides SideSelections
	err := json.Unmarshal([]byte(`"chips"`), &sides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected array or object")

	var dips DipSelections
	err = json.Unmarshal([]byte(`42`), &dips)
	assert.Error(t, err)
}

func TestSnapshotRoundTripsLosslessly(t *testing.T) {
	payload := []byte(`{
		"selectedPackage": {
			"id": "party-pack-200",
			"name": "Party Pack (200 wings)",
			"basePrice": "329.99",
			"wingOptions": {
				"totalWings": 200,
				"defaultDistribution": {"boneless": 150, "boneIn": 50, "plantBased": 0},
				"perUnitCosts": {"boneless": "0.80", "boneIn": "1.00", "plantBased": "1.20"}
			},
			"sauceSelections": {"min": 1, "max": 3},
			"dipsIncluded": 4
		},
		"currentConfig": {
			"wingDistribution": {"boneless": 100, "boneIn": 100, "boneInStyle": "flats"},
			"sauces": [{"id": "bbq", "name": "BBQ", "type": "classic", "heatLevel": 1}],
			"dips": {"ranch": {"name": "Ranch", "quantity": 2}},
			"removedItems": [{"name": "Coleslaw", "category": "side", "quantity": 2}]
		},
		"eventDetails": {"guestCount": 15}
	}`)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(payload, &snapshot))

	assert.Equal(t, "329.99", snapshot.SelectedPackage.BasePrice.String())
	assert.Equal(t, "0.80", snapshot.SelectedPackage.WingOptions.PerUnitCosts.Boneless.String())
	assert.Equal(t, 15, snapshot.EventDetails.GuestCount)
	require.Len(t, snapshot.CurrentConfig.Dips, 1)
	assert.Equal(t, "ranch", snapshot.CurrentConfig.Dips[0].ID)

	// Re-encoding must not lose numeric precision.
	out, err := json.Marshal(snapshot)
	require.NoError(t, err)
	var again Snapshot
	require.NoError(t, json.Unmarshal(out, &again))
	assert.True(t, snapshot.SelectedPackage.BasePrice.Equal(again.SelectedPackage.BasePrice))
}
