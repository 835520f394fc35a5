package adjust

import (
	"fmt"

	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/constants"
	"github.com/estimatics/roofline/pkg/roofing"
)

// applyAccessories reconciles accessory item groups against the measured
// lengths: every present variant is floored at the required quantity, and
// when no variant is present the canonical item is added with catalog
// pricing. A zero measurement disables the group.
func (r *run) applyAccessories() {
	for _, spec := range roofing.Accessories() {
		length := spec.RequiredLength(r.m)
		if length <= 0 {
			continue
		}

		found := false
		for _, variant := range spec.Variants {
			for _, i := range r.findAll(variant) {
				found = true
				required := length
				if entry, ok := r.engine.catalog.Lookup(variant); ok {
					required = requiredQuantity(entry, length)
				} else if r.items[i].Unit == claims.UnitSquare {
					required = length / constants.SquareFeetPerSquare
				}
				r.floorQuantity(i, required, accessoryRuleID(spec),
					fmt.Sprintf("%s quantity should be at least %s per roof measurements",
						variant, fmtQty(required)))
			}
		}
		if found {
			continue
		}

		entry, ok := r.engine.catalog.Lookup(spec.AddDescription)
		if !ok {
			r.noteMissingCatalogEntry(spec.AddDescription)
			continue
		}
		qty := requiredQuantity(entry, length)
		r.addItem(entry, qty, accessoryAddRuleID(spec),
			fmt.Sprintf("%s required by roof measurements (%s) but absent from estimate",
				entry.Description, fmtQty(qty)))
	}
}

// applyFelt reconciles slope-band underlayment: the felt item for each band
// with measured area is floored at the band area in squares, or added when
// absent.
func (r *run) applyFelt() {
	for _, band := range roofing.FeltBands() {
		area := band.BandArea(r.m)
		if area <= 0 {
			continue
		}

		required := area / constants.SquareFeetPerSquare
		indexes := r.findAll(band.Description)
		if len(indexes) > 0 {
			for _, i := range indexes {
				r.floorQuantity(i, required, feltRuleID(band),
					fmt.Sprintf("%s quantity should be at least band area / 100 (%s SQ) for %s slopes",
						band.Description, fmtQty(required), band.Label))
			}
			continue
		}

		entry, ok := r.engine.catalog.Lookup(band.Description)
		if !ok {
			r.noteMissingCatalogEntry(band.Description)
			continue
		}
		r.addItem(entry, required, feltAddRuleID(band),
			fmt.Sprintf("underlayment required for %s slopes (%s SQ) but absent from estimate",
				band.Label, fmtQty(required)))
	}
}

// applyCrickets adds the saddle/cricket companion for each chimney flashing
// item present without one.
func (r *run) applyCrickets() {
	for _, rule := range roofing.CricketRules() {
		if !r.has(rule.FlashingDescription) || r.has(rule.SaddleDescription) {
			continue
		}

		entry, ok := r.engine.catalog.Lookup(rule.SaddleDescription)
		if !ok {
			r.noteMissingCatalogEntry(rule.SaddleDescription)
			continue
		}
		r.addItem(entry, 1, RuleCricketAdd,
			fmt.Sprintf("%s present without %s", rule.FlashingDescription, rule.SaddleDescription))
	}
}

func (r *run) noteMissingCatalogEntry(description string) {
	r.note(Notification{
		Type:        NoteMissingCatalogEntry,
		Description: description,
		Message:     fmt.Sprintf("%q is required but has no catalog entry to price it", description),
	})
}
