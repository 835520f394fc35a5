// Package conformance validates that the shipped roofing vocabulary and the
// engine's registered rule set still carry every description, measurement
// key, and rule the business requires. The required lists are duplicated
// here on purpose: validation compares exported tables against an
// independent master copy instead of reflecting over engine internals, so a
// table edit that drops a required entry fails loudly.
package conformance

import (
	"fmt"

	"github.com/estimatics/roofline/internal/matcher"
	"github.com/estimatics/roofline/pkg/adjust"
	"github.com/estimatics/roofline/pkg/roofing"
)

// requiredDescriptions is the master list of canonical line-item
// descriptions the engine must know about.
var requiredDescriptions = []string{
	// Shingle removal
	"Remove Laminated - comp. shingle rfg. - w/out felt",
	"Remove 3 tab - 25 yr. - comp. shingle roofing - w/out felt",
	"Remove 3 tab - 25 yr. - composition shingle roofing - incl. felt",
	"Remove Laminated - comp. shingle rfg. - w/ felt",
	// Shingle installation
	"Laminated - comp. shingle rfg. - w/out felt",
	"3 tab - 25 yr. - comp. shingle roofing - w/out felt",
	"3 tab - 25 yr. - composition shingle roofing - incl. felt",
	"Laminated - comp. shingle rfg. - w/ felt",
	// Steep surcharges
	"Remove Additional charge for steep roof - 7/12 to 9/12 slope",
	"Additional charge for steep roof - 7/12 to 9/12 slope",
	"Remove Additional charge for steep roof - 10/12 - 12/12 slope",
	"Additional charge for steep roof - 10/12 - 12/12 slope",
	"Remove Additional charge for steep roof greater than 12/12 slope",
	"Additional charge for steep roof greater than 12/12 slope",
	// Accessories
	"Drip edge/gutter apron",
	"Asphalt starter - universal starter course",
	"Asphalt starter - peel and stick",
	"Asphalt starter - laminated double layer starter",
	"Step flashing",
	"Valley metal",
	"Valley metal - (W) profile",
	"Hip / Ridge cap - Standard profile - composition shingles",
	"Hip / Ridge cap - High profile - composition shingles",
	"Hip / Ridge cap - cut from 3 tab - composition shingles",
	"Aluminum sidewall/endwall flashing - mill finish",
	"Continuous ridge vent - shingle-over style",
	"Continuous ridge vent - aluminum",
	// Underlayment
	"Roofing felt - 15 lb. double coverage/low slope",
	"Roofing felt - 15 lb.",
	"Roofing felt - 30 lb.",
	// Chimney
	`Chimney flashing average (32" x 36")`,
	`Chimney flashing- large (32" x 60")`,
	"Saddle or cricket up to 25 SF",
	"Saddle or cricket 26 to 50 SF",
}

// requiredMeasurementKeys is the master list of measurement report keys the
// engine must read.
var requiredMeasurementKeys = []string{
	"Total Roof Area",
	"Total Eaves Length",
	"Total Rakes Length",
	"Total Ridges/Hips Length",
	"Total Line Lengths (Ridges)",
	"Total Valleys Length",
	"Total Step Flashing Length",
	"Total Flashing Length",
	"Area for Pitch 1/12 (sq ft)",
	"Area for Pitch 2/12 (sq ft)",
	"Area for Pitch 3/12 (sq ft)",
	"Area for Pitch 4/12 (sq ft)",
	"Area for Pitch 5/12 (sq ft)",
	"Area for Pitch 6/12 (sq ft)",
	"Area for Pitch 7/12 (sq ft)",
	"Area for Pitch 8/12 (sq ft)",
	"Area for Pitch 9/12 (sq ft)",
	"Area for Pitch 10/12 (sq ft)",
	"Area for Pitch 11/12 (sq ft)",
	"Area for Pitch 12/12 (sq ft)",
	"Area for Pitch 12/12+ (sq ft)",
}

// requiredRuleIDs is the master list of rules the engine must register.
var requiredRuleIDs = []string{
	"catalog/unit-price",
	"catalog/unit",
	"quantity/floor",
	"rounding/laminated",
	"rounding/3-tab",
	"surcharge/steep-7-9",
	"surcharge/steep-10-12",
	"surcharge/steep-12-plus",
	"accessory/drip-edge",
	"accessory/starter",
	"accessory/step-flashing",
	"accessory/valley-metal",
	"accessory/ridge-cap",
	"accessory/aluminum-flashing",
	"accessory/ridge-vent",
	"felt/low",
	"felt/medium",
	"felt/steep",
	"cricket/add",
}

// Kind classifies a conformance check.
type Kind string

// Check kinds.
const (
	KindDescription    Kind = "description"
	KindMeasurementKey Kind = "measurement_key"
	KindRuleID         Kind = "rule_id"
)

// Check is the outcome of one required-entry verification.
type Check struct {
	Kind    Kind   `json:"kind"`
	Name    string `json:"name"`
	Pass    bool   `json:"pass"`
	Message string `json:"message,omitempty"`
}

// Report aggregates conformance checks.
type Report struct {
	Checks []Check `json:"checks"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed checks.
func (r *Report) Failures() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Pass {
			out = append(out, c)
		}
	}
	return out
}

func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
	if c.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// Validate checks the shipped tables and rule registry against the master
// lists. Descriptions compare after normalization so formatting drift does
// not hide a real match; keys and rule IDs compare verbatim.
func Validate() *Report {
	report := &Report{}

	shipped := make(map[string]bool)
	for _, d := range roofing.CanonicalDescriptions() {
		shipped[matcher.Normalize(d)] = true
	}
	for _, d := range requiredDescriptions {
		check := Check{Kind: KindDescription, Name: d, Pass: shipped[matcher.Normalize(d)]}
		if !check.Pass {
			check.Message = fmt.Sprintf("required description %q missing from roofing tables", d)
		}
		report.add(check)
	}

	keys := make(map[string]bool)
	for _, k := range roofing.MeasurementKeys() {
		keys[k] = true
	}
	for _, k := range requiredMeasurementKeys {
		check := Check{Kind: KindMeasurementKey, Name: k, Pass: keys[k]}
		if !check.Pass {
			check.Message = fmt.Sprintf("required measurement key %q missing from roofing tables", k)
		}
		report.add(check)
	}

	registered := make(map[string]bool)
	for _, id := range adjust.RuleIDs() {
		registered[id] = true
	}
	for _, id := range requiredRuleIDs {
		check := Check{Kind: KindRuleID, Name: id, Pass: registered[id]}
		if !check.Pass {
			check.Message = fmt.Sprintf("required rule %q not registered by the engine", id)
		}
		report.add(check)
	}

	return report
}
