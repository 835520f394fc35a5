// Package claims defines the data model for roofing insurance-claim estimates:
// line items, units of measure, roof measurements, and the money arithmetic
// shared by the adjustment engine and its callers.
package claims

import (
	"math"

	"github.com/estimatics/roofline/pkg/constants"
)

// Unit is a unit of measure on an estimate line item.
type Unit string

// Units of measure used by roofing estimates.
const (
	// UnitSquare is a roofing square (100 sq ft)
	UnitSquare Unit = "SQ"

	// UnitLinearFoot is a linear foot
	UnitLinearFoot Unit = "LF"

	// UnitEach is a count of discrete items
	UnitEach Unit = "EA"

	// UnitSquareFoot is a square foot
	UnitSquareFoot Unit = "SF"
)

// LineItem is a single line of an insurance estimate.
//
// Field names on the wire follow the carrier export format, including the
// uppercase RCV/ACV keys.
type LineItem struct {
	LineNumber  string  `json:"line_number" yaml:"line_number"`
	Description string  `json:"description" yaml:"description"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Unit        Unit    `json:"unit" yaml:"unit"`
	UnitPrice   float64 `json:"unit_price" yaml:"unit_price"`
	RCV         float64 `json:"RCV" yaml:"RCV"`

	// Depreciation fields carried through from the carrier estimate.
	DepreciationAmount float64 `json:"depreciation_amount,omitempty" yaml:"depreciation_amount,omitempty"`
	ACV                float64 `json:"ACV,omitempty" yaml:"ACV,omitempty"`
	AgeLife            string  `json:"age_life,omitempty" yaml:"age_life,omitempty"`
	Condition          string  `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Document context, passed through untouched.
	Category     string `json:"category,omitempty" yaml:"category,omitempty"`
	LocationRoom string `json:"location_room,omitempty" yaml:"location_room,omitempty"`
	PageNumber   int    `json:"page_number,omitempty" yaml:"page_number,omitempty"`
	Narrative    string `json:"narrative,omitempty" yaml:"narrative,omitempty"`
}

// UpdateCosts recomputes the derived monetary fields from quantity and unit
// price. RCV is always quantity times unit price; ACV is RCV less the
// depreciation amount.
func (li *LineItem) UpdateCosts() {
	li.RCV = Round2(li.Quantity * li.UnitPrice)
	li.ACV = Round2(li.RCV - li.DepreciationAmount)
}

// Valid reports whether the item is well formed enough for the engine to
// adjust. Items failing this check are passed through untouched.
func (li *LineItem) Valid() bool {
	if li.Description == "" {
		return false
	}
	if li.Quantity < 0 || math.IsNaN(li.Quantity) || math.IsInf(li.Quantity, 0) {
		return false
	}
	if li.UnitPrice < 0 || math.IsNaN(li.UnitPrice) || math.IsInf(li.UnitPrice, 0) {
		return false
	}
	return true
}

// Clone returns a copy of the line item.
func (li LineItem) Clone() LineItem {
	return li
}

// CloneItems returns a deep copy of a line-item slice. The engine operates on
// a clone so callers' slices are never mutated.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Round2 rounds a monetary amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MoneyEqual reports whether two monetary amounts are equal within the money
// tolerance.
func MoneyEqual(a, b float64) bool {
	return math.Abs(a-b) <= constants.MoneyTolerance
}

// QuantityEqual reports whether two quantities are equal within the quantity
// tolerance.
func QuantityEqual(a, b float64) bool {
	return math.Abs(a-b) <= constants.QuantityTolerance
}
