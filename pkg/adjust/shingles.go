package adjust

import (
	"fmt"
	"math"

	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/constants"
	"github.com/estimatics/roofline/pkg/roofing"
)

// applyQuantityFloors raises the canonical shingle removal and installation
// quantities to the measured roof area in squares. Installation floors carry
// the configured waste factor. A zero total roof area disables the rule and
// is reported when shingle items are present.
func (r *run) applyQuantityFloors() {
	area := r.m.Get(roofing.KeyTotalRoofArea)
	if area <= 0 {
		if r.hasShingleItems() {
			r.log.Warn().Msg("Total roof area is 0, skipping shingle quantity floors")
			r.note(Notification{
				Type:    NoteZeroRoofArea,
				Message: "total roof area is 0; shingle quantities were not adjusted",
			})
		}
		return
	}

	squares := area / constants.SquareFeetPerSquare
	for _, spec := range roofing.ShingleItems() {
		required := squares
		explanation := fmt.Sprintf("quantity should be at least Total Roof Area / 100 (%s SQ)", fmtQty(required))
		if !spec.Removal && r.engine.wastePercent > 0 {
			required = squares * (1 + r.engine.wastePercent)
			explanation = fmt.Sprintf("quantity should be at least Total Roof Area / 100 with %.0f%% waste (%s SQ)",
				r.engine.wastePercent*100, fmtQty(required))
		}
		for _, i := range r.findAll(spec.Description) {
			r.floorQuantity(i, required, RuleQuantityFloor, explanation)
		}
	}
}

// applyRounding rounds SQ-rated shingle quantities up to the family bundle
// increment. Aligned quantities are untouched; rounding never decreases.
func (r *run) applyRounding() {
	for _, spec := range roofing.ShingleItems() {
		inc := spec.Family.Increment()
		if inc <= 0 {
			continue
		}
		for _, i := range r.findAll(spec.Description) {
			if r.items[i].Unit != claims.UnitSquare {
				continue
			}
			rounded := roundUpTo(r.items[i].Quantity, inc)
			r.setQuantity(i, rounded, roundingRuleID(spec.Family),
				fmt.Sprintf("%s shingle quantities round up to the nearest %s SQ",
					spec.Family, fmtQty(inc)))
		}
	}
}

// hasShingleItems reports whether any canonical shingle item is present.
func (r *run) hasShingleItems() bool {
	for _, spec := range roofing.ShingleItems() {
		if r.has(spec.Description) {
			return true
		}
	}
	return false
}

// roundUpTo rounds q up to the next multiple of inc. Quantities already on
// a multiple (within tolerance, absorbing float noise in thirds) are
// returned as that multiple.
func roundUpTo(q, inc float64) float64 {
	steps := q / inc
	nearest := math.Round(steps)
	if math.Abs(steps-nearest) <= constants.QuantityTolerance {
		return nearest * inc
	}
	return math.Ceil(steps) * inc
}
