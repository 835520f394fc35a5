package adjust

import (
	"fmt"

	"github.com/estimatics/roofline/pkg/constants"
	"github.com/estimatics/roofline/pkg/roofing"
)

// applySteepSurcharges pins the removal and installation surcharge
// quantities of each steep-pitch band to the band area in squares. Unlike
// floors, pinning corrects in both directions. Bands with area but no
// surcharge line are reported, never synthesized: there is no catalog-backed
// construction that can be trusted for these lines.
func (r *run) applySteepSurcharges() {
	for _, band := range roofing.SteepBands() {
		area := band.BandArea(r.m)
		if area <= 0 {
			continue
		}

		required := area / constants.SquareFeetPerSquare
		ruleID := surchargeRuleID(band)
		explanation := fmt.Sprintf("steep roof charge (%s slope) should equal band area / 100 (%s SQ)",
			band.Label, fmtQty(required))

		for _, desc := range []string{band.RemoveDescription, band.InstallDescription} {
			indexes := r.findAll(desc)
			if len(indexes) == 0 {
				r.note(Notification{
					Type:        NoteMissingSurcharge,
					Description: desc,
					Message: fmt.Sprintf("steep roof area %s sq ft (%s slope) measured but %q is absent",
						fmtQty(area), band.Label, desc),
				})
				continue
			}
			for _, i := range indexes {
				r.setQuantity(i, required, ruleID, explanation)
			}
		}
	}
}
