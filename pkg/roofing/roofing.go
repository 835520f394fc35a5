// Package roofing defines the canonical roofing vocabulary shared by the
// adjustment engine and the conformance validator: exact canonical line-item
// descriptions, canonical measurement keys, shingle families with their
// rounding increments, steep-pitch surcharge bands, underlayment bands, and
// accessory specifications.
//
// The tables are exported so validation compares real data against real data
// instead of reflecting over engine internals.
package roofing

import (
	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/constants"
)

// Canonical measurement keys from the roof measurement report.
const (
	KeyTotalRoofArea          = "Total Roof Area"
	KeyTotalEavesLength       = "Total Eaves Length"
	KeyTotalRakesLength       = "Total Rakes Length"
	KeyTotalRidgesHipsLength  = "Total Ridges/Hips Length"
	KeyTotalLineLengthsRidges = "Total Line Lengths (Ridges)"
	KeyTotalValleysLength     = "Total Valleys Length"
	KeyTotalStepFlashing      = "Total Step Flashing Length"
	KeyTotalFlashingLength    = "Total Flashing Length"
)

// Per-pitch area keys.
const (
	KeyAreaPitch1      = "Area for Pitch 1/12 (sq ft)"
	KeyAreaPitch2      = "Area for Pitch 2/12 (sq ft)"
	KeyAreaPitch3      = "Area for Pitch 3/12 (sq ft)"
	KeyAreaPitch4      = "Area for Pitch 4/12 (sq ft)"
	KeyAreaPitch5      = "Area for Pitch 5/12 (sq ft)"
	KeyAreaPitch6      = "Area for Pitch 6/12 (sq ft)"
	KeyAreaPitch7      = "Area for Pitch 7/12 (sq ft)"
	KeyAreaPitch8      = "Area for Pitch 8/12 (sq ft)"
	KeyAreaPitch9      = "Area for Pitch 9/12 (sq ft)"
	KeyAreaPitch10     = "Area for Pitch 10/12 (sq ft)"
	KeyAreaPitch11     = "Area for Pitch 11/12 (sq ft)"
	KeyAreaPitch12     = "Area for Pitch 12/12 (sq ft)"
	KeyAreaPitch12Plus = "Area for Pitch 12/12+ (sq ft)"
)

// MeasurementKeys returns every canonical measurement key the engine reads.
func MeasurementKeys() []string {
	return []string{
		KeyTotalRoofArea,
		KeyTotalEavesLength,
		KeyTotalRakesLength,
		KeyTotalRidgesHipsLength,
		KeyTotalLineLengthsRidges,
		KeyTotalValleysLength,
		KeyTotalStepFlashing,
		KeyTotalFlashingLength,
		KeyAreaPitch1,
		KeyAreaPitch2,
		KeyAreaPitch3,
		KeyAreaPitch4,
		KeyAreaPitch5,
		KeyAreaPitch6,
		KeyAreaPitch7,
		KeyAreaPitch8,
		KeyAreaPitch9,
		KeyAreaPitch10,
		KeyAreaPitch11,
		KeyAreaPitch12,
		KeyAreaPitch12Plus,
	}
}

// ShingleFamily identifies a shingle product family with its own supplier
// bundle increment.
type ShingleFamily int

// Shingle families.
const (
	Laminated ShingleFamily = iota
	ThreeTab
)

// String returns the family name.
func (f ShingleFamily) String() string {
	switch f {
	case Laminated:
		return "laminated"
	case ThreeTab:
		return "3-tab"
	default:
		return "unknown"
	}
}

// Increment returns the rounding increment for the family.
func (f ShingleFamily) Increment() float64 {
	switch f {
	case Laminated:
		return constants.LaminatedIncrement
	case ThreeTab:
		return constants.ThreeTabIncrement
	default:
		return 0
	}
}

// ShingleSpec describes one of the canonical shingle removal or installation
// line items subject to quantity floors and bundle rounding.
type ShingleSpec struct {
	Description string
	Family      ShingleFamily
	Removal     bool
}

// ShingleItems returns the eight canonical shingle line items.
func ShingleItems() []ShingleSpec {
	return []ShingleSpec{
		{Description: "Remove Laminated - comp. shingle rfg. - w/out felt", Family: Laminated, Removal: true},
		{Description: "Remove 3 tab - 25 yr. - comp. shingle roofing - w/out felt", Family: ThreeTab, Removal: true},
		{Description: "Remove 3 tab - 25 yr. - composition shingle roofing - incl. felt", Family: ThreeTab, Removal: true},
		{Description: "Remove Laminated - comp. shingle rfg. - w/ felt", Family: Laminated, Removal: true},
		{Description: "Laminated - comp. shingle rfg. - w/out felt", Family: Laminated},
		{Description: "3 tab - 25 yr. - comp. shingle roofing - w/out felt", Family: ThreeTab},
		{Description: "3 tab - 25 yr. - composition shingle roofing - incl. felt", Family: ThreeTab},
		{Description: "Laminated - comp. shingle rfg. - w/ felt", Family: Laminated},
	}
}

// SteepBand is a steep-roof pitch band carrying a removal/installation
// surcharge pair. Surcharge quantities are pinned to the band area in
// squares; absent surcharge lines are reported, never synthesized.
type SteepBand struct {
	ID                 string
	Label              string
	AreaKeys           []string
	RemoveDescription  string
	InstallDescription string
}

// SteepBands returns the three steep-roof surcharge bands.
func SteepBands() []SteepBand {
	return []SteepBand{
		{
			ID:                 "steep-7-9",
			Label:              "7/12 to 9/12",
			AreaKeys:           []string{KeyAreaPitch7, KeyAreaPitch8, KeyAreaPitch9},
			RemoveDescription:  "Remove Additional charge for steep roof - 7/12 to 9/12 slope",
			InstallDescription: "Additional charge for steep roof - 7/12 to 9/12 slope",
		},
		{
			ID:                 "steep-10-12",
			Label:              "10/12 to 12/12",
			AreaKeys:           []string{KeyAreaPitch10, KeyAreaPitch11, KeyAreaPitch12},
			RemoveDescription:  "Remove Additional charge for steep roof - 10/12 - 12/12 slope",
			InstallDescription: "Additional charge for steep roof - 10/12 - 12/12 slope",
		},
		{
			ID:                 "steep-12-plus",
			Label:              "greater than 12/12",
			AreaKeys:           []string{KeyAreaPitch12Plus},
			RemoveDescription:  "Remove Additional charge for steep roof greater than 12/12 slope",
			InstallDescription: "Additional charge for steep roof greater than 12/12 slope",
		},
	}
}

// BandArea sums a band's pitch areas from the measurement report.
func (b SteepBand) BandArea(m claims.Measurements) float64 {
	var total float64
	for _, key := range b.AreaKeys {
		total += m.Get(key)
	}
	return total
}

// AccessorySpec describes an accessory item group subject to floor-or-add
// reconciliation. Any present variant is floored at the required quantity;
// when no variant is present the AddDescription item is added, priced from
// the catalog. The required quantity is the sum of the measurement keys,
// converted to squares when the catalog rates the entry in SQ.
type AccessorySpec struct {
	ID              string
	AddDescription  string
	Variants        []string
	MeasurementKeys []string
}

// Accessories returns the accessory reconciliation specs.
func Accessories() []AccessorySpec {
	return []AccessorySpec{
		{
			ID:              "drip-edge",
			AddDescription:  "Drip edge/gutter apron",
			Variants:        []string{"Drip edge/gutter apron", "Drip edge"},
			MeasurementKeys: []string{KeyTotalEavesLength, KeyTotalRakesLength},
		},
		{
			ID:             "starter",
			AddDescription: "Asphalt starter - universal starter course",
			Variants: []string{
				"Asphalt starter - universal starter course",
				"Asphalt starter - peel and stick",
				"Asphalt starter - laminated double layer starter",
			},
			MeasurementKeys: []string{KeyTotalEavesLength, KeyTotalRakesLength},
		},
		{
			ID:              "step-flashing",
			AddDescription:  "Step flashing",
			Variants:        []string{"Step flashing"},
			MeasurementKeys: []string{KeyTotalStepFlashing},
		},
		{
			ID:              "valley-metal",
			AddDescription:  "Valley metal",
			Variants:        []string{"Valley metal", "Valley metal - (W) profile"},
			MeasurementKeys: []string{KeyTotalValleysLength},
		},
		{
			ID:             "ridge-cap",
			AddDescription: "Hip / Ridge cap - Standard profile - composition shingles",
			Variants: []string{
				"Hip / Ridge cap - Standard profile - composition shingles",
				"Hip / Ridge cap - High profile - composition shingles",
				"Hip / Ridge cap - cut from 3 tab - composition shingles",
			},
			MeasurementKeys: []string{KeyTotalRidgesHipsLength},
		},
		{
			ID:              "aluminum-flashing",
			AddDescription:  "Aluminum sidewall/endwall flashing - mill finish",
			Variants:        []string{"Aluminum sidewall/endwall flashing - mill finish"},
			MeasurementKeys: []string{KeyTotalFlashingLength},
		},
		{
			ID:             "ridge-vent",
			AddDescription: "Continuous ridge vent - shingle-over style",
			Variants: []string{
				"Continuous ridge vent - shingle-over style",
				"Continuous ridge vent - aluminum",
				"Continuous ridge vent - Detach & reset",
			},
			MeasurementKeys: []string{KeyTotalLineLengthsRidges},
		},
	}
}

// RequiredLength sums the accessory's measurement keys.
func (a AccessorySpec) RequiredLength(m claims.Measurements) float64 {
	var total float64
	for _, key := range a.MeasurementKeys {
		total += m.Get(key)
	}
	return total
}

// FeltBand is a slope band carrying its underlayment requirement. Felt
// quantities are rated in squares of band area.
type FeltBand struct {
	ID          string
	Label       string
	Description string
	AreaKeys    []string
}

// FeltBands returns the three underlayment slope bands.
func FeltBands() []FeltBand {
	return []FeltBand{
		{
			ID:          "low",
			Label:       "1/12 to 4/12",
			Description: "Roofing felt - 15 lb. double coverage/low slope",
			AreaKeys:    []string{KeyAreaPitch1, KeyAreaPitch2, KeyAreaPitch3, KeyAreaPitch4},
		},
		{
			ID:          "medium",
			Label:       "5/12 to 8/12",
			Description: "Roofing felt - 15 lb.",
			AreaKeys:    []string{KeyAreaPitch5, KeyAreaPitch6, KeyAreaPitch7, KeyAreaPitch8},
		},
		{
			ID:          "steep",
			Label:       "9/12 and above",
			Description: "Roofing felt - 30 lb.",
			AreaKeys: []string{
				KeyAreaPitch9, KeyAreaPitch10, KeyAreaPitch11,
				KeyAreaPitch12, KeyAreaPitch12Plus,
			},
		},
	}
}

// BandArea sums a felt band's pitch areas from the measurement report.
func (b FeltBand) BandArea(m claims.Measurements) float64 {
	var total float64
	for _, key := range b.AreaKeys {
		total += m.Get(key)
	}
	return total
}

// CricketRule pairs a chimney flashing item with its saddle/cricket
// companion. When the flashing is present and the companion absent, the
// companion is added as one each.
type CricketRule struct {
	FlashingDescription string
	SaddleDescription   string
}

// CricketRules returns the chimney saddle/cricket companion rules.
func CricketRules() []CricketRule {
	return []CricketRule{
		{
			FlashingDescription: `Chimney flashing average (32" x 36")`,
			SaddleDescription:   "Saddle or cricket up to 25 SF",
		},
		{
			FlashingDescription: `Chimney flashing- large (32" x 60")`,
			SaddleDescription:   "Saddle or cricket 26 to 50 SF",
		},
	}
}

// CanonicalDescriptions returns every canonical line-item description the
// engine knows about, in table order.
func CanonicalDescriptions() []string {
	var out []string
	for _, s := range ShingleItems() {
		out = append(out, s.Description)
	}
	for _, b := range SteepBands() {
		out = append(out, b.RemoveDescription, b.InstallDescription)
	}
	for _, a := range Accessories() {
		out = append(out, a.Variants...)
	}
	for _, b := range FeltBands() {
		out = append(out, b.Description)
	}
	for _, c := range CricketRules() {
		out = append(out, c.FlashingDescription, c.SaddleDescription)
	}
	return out
}
