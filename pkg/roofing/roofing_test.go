package roofing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/roofing"
)

func TestShingleItems(t *testing.T) {
	items := roofing.ShingleItems()
	assert.Len(t, items, 8)

	var removals, installs int
	for _, s := range items {
		if s.Removal {
			removals++
		} else {
			installs++
		}
	}
	assert.Equal(t, 4, removals)
	assert.Equal(t, 4, installs)
}

func TestFamilyIncrement(t *testing.T) {
	assert.Equal(t, 0.25, roofing.Laminated.Increment())
	assert.InDelta(t, 1.0/3.0, roofing.ThreeTab.Increment(), 1e-12)
	assert.Equal(t, "laminated", roofing.Laminated.String())
	assert.Equal(t, "3-tab", roofing.ThreeTab.String())
}

func TestSteepBands(t *testing.T) {
	bands := roofing.SteepBands()
	assert.Len(t, bands, 3)

	m := claims.Measurements{
		roofing.KeyAreaPitch7:      450,
		roofing.KeyAreaPitch9:      1000,
		roofing.KeyAreaPitch11:     200,
		roofing.KeyAreaPitch12Plus: 75,
	}
	assert.InDelta(t, 1450, bands[0].BandArea(m), 1e-9)
	assert.InDelta(t, 200, bands[1].BandArea(m), 1e-9)
	assert.InDelta(t, 75, bands[2].BandArea(m), 1e-9)
}

func TestFeltBands(t *testing.T) {
	bands := roofing.FeltBands()
	assert.Len(t, bands, 3)

	// Every discrete pitch key lands in exactly one felt band.
	covered := make(map[string]int)
	for _, b := range bands {
		for _, k := range b.AreaKeys {
			covered[k]++
		}
	}
	assert.Len(t, covered, 13)
	for k, n := range covered {
		assert.Equal(t, 1, n, "pitch key %q", k)
	}
}

func TestAccessoryRequiredLength(t *testing.T) {
	m := claims.Measurements{
		roofing.KeyTotalEavesLength: 120,
		roofing.KeyTotalRakesLength: 80,
	}
	for _, a := range roofing.Accessories() {
		if a.ID == "drip-edge" || a.ID == "starter" {
			assert.InDelta(t, 200, a.RequiredLength(m), 1e-9, a.ID)
		}
	}
}

func TestCanonicalDescriptionsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range roofing.CanonicalDescriptions() {
		assert.False(t, seen[d], "duplicate description %q", d)
		seen[d] = true
	}
	assert.GreaterOrEqual(t, len(seen), 30)
}

func TestMeasurementKeys(t *testing.T) {
	keys := roofing.MeasurementKeys()
	assert.Len(t, keys, 21)
	assert.Contains(t, keys, "Total Roof Area")
	assert.Contains(t, keys, "Area for Pitch 12/12+ (sq ft)")
}
