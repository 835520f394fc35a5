package adjust

import "github.com/estimatics/roofline/pkg/roofing"

// Category classifies an adjustment for summary reporting.
type Category string

// Adjustment categories.
const (
	CategoryQuantity  Category = "quantity"
	CategoryPrice     Category = "price"
	CategoryRounding  Category = "rounding"
	CategorySurcharge Category = "surcharge"
	CategoryAccessory Category = "accessory"
	CategoryAddition  Category = "addition"
)

// Rule identifies an adjustment rule and its reporting category.
type Rule struct {
	ID       string
	Category Category
}

// Fixed rule IDs. Band- and accessory-specific IDs are derived from the
// roofing tables.
const (
	RuleCatalogUnitPrice = "catalog/unit-price"
	RuleCatalogUnit      = "catalog/unit"
	RuleQuantityFloor    = "quantity/floor"
	RuleRoundLaminated   = "rounding/laminated"
	RuleRoundThreeTab    = "rounding/3-tab"
	RuleCricketAdd       = "cricket/add"
)

// Rules returns every rule the engine can apply, in pipeline order.
func Rules() []Rule {
	rules := []Rule{
		{ID: RuleCatalogUnitPrice, Category: CategoryPrice},
		{ID: RuleCatalogUnit, Category: CategoryPrice},
		{ID: RuleQuantityFloor, Category: CategoryQuantity},
		{ID: RuleRoundLaminated, Category: CategoryRounding},
		{ID: RuleRoundThreeTab, Category: CategoryRounding},
	}
	for _, b := range roofing.SteepBands() {
		rules = append(rules, Rule{ID: surchargeRuleID(b), Category: CategorySurcharge})
	}
	for _, a := range roofing.Accessories() {
		rules = append(rules,
			Rule{ID: accessoryRuleID(a), Category: CategoryAccessory},
			Rule{ID: accessoryAddRuleID(a), Category: CategoryAddition},
		)
	}
	for _, b := range roofing.FeltBands() {
		rules = append(rules,
			Rule{ID: feltRuleID(b), Category: CategoryAccessory},
			Rule{ID: feltAddRuleID(b), Category: CategoryAddition},
		)
	}
	rules = append(rules, Rule{ID: RuleCricketAdd, Category: CategoryAddition})
	return rules
}

// RuleIDs returns the registered rule IDs in pipeline order.
func RuleIDs() []string {
	rules := Rules()
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}

// CategoryOf returns the reporting category for a rule ID. Unknown IDs map
// to the quantity category.
func CategoryOf(ruleID string) Category {
	for _, r := range Rules() {
		if r.ID == ruleID {
			return r.Category
		}
	}
	return CategoryQuantity
}

func surchargeRuleID(b roofing.SteepBand) string {
	return "surcharge/" + b.ID
}

func accessoryRuleID(a roofing.AccessorySpec) string {
	return "accessory/" + a.ID
}

func accessoryAddRuleID(a roofing.AccessorySpec) string {
	return "accessory/" + a.ID + "/add"
}

func feltRuleID(b roofing.FeltBand) string {
	return "felt/" + b.ID
}

func feltAddRuleID(b roofing.FeltBand) string {
	return "felt/" + b.ID + "/add"
}

func roundingRuleID(f roofing.ShingleFamily) string {
	if f == roofing.Laminated {
		return RuleRoundLaminated
	}
	return RuleRoundThreeTab
}
