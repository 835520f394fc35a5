package adjust_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estimatics/roofline/pkg/adjust"
)

func TestRuleIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range adjust.RuleIDs() {
		assert.False(t, seen[id], "duplicate rule ID %q", id)
		seen[id] = true
	}
	assert.NotEmpty(t, seen)
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		ruleID string
		want   adjust.Category
	}{
		{adjust.RuleCatalogUnitPrice, adjust.CategoryPrice},
		{adjust.RuleCatalogUnit, adjust.CategoryPrice},
		{adjust.RuleQuantityFloor, adjust.CategoryQuantity},
		{adjust.RuleRoundLaminated, adjust.CategoryRounding},
		{adjust.RuleRoundThreeTab, adjust.CategoryRounding},
		{"surcharge/steep-7-9", adjust.CategorySurcharge},
		{"accessory/drip-edge", adjust.CategoryAccessory},
		{"accessory/drip-edge/add", adjust.CategoryAddition},
		{"felt/low", adjust.CategoryAccessory},
		{"felt/steep/add", adjust.CategoryAddition},
		{adjust.RuleCricketAdd, adjust.CategoryAddition},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, adjust.CategoryOf(tt.ruleID), "CategoryOf(%q)", tt.ruleID)
	}
}

func TestEveryAdditionRuleEndsInAdd(t *testing.T) {
	for _, r := range adjust.Rules() {
		if r.Category == adjust.CategoryAddition {
			assert.True(t, strings.HasSuffix(r.ID, "/add"), "addition rule %q", r.ID)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := adjust.Summarize(nil)
	assert.Equal(t, 0, s.TotalAdjustments)
	assert.Equal(t, 0, s.TotalAdditions)
	assert.Empty(t, s.ByCategory)
}
