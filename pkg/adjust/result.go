package adjust

import (
	"time"

	"github.com/estimatics/roofline/pkg/claims"
)

// Metadata records run timing and item counts.
type Metadata struct {
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     time.Duration `json:"duration"`
	ItemsIn      int           `json:"items_in"`
	ItemsOut     int           `json:"items_out"`
	ItemsSkipped int           `json:"items_skipped"`
}

// Summary reports adjustment counts by category. It is always derived from
// the audit log, never tracked separately, so the two cannot disagree.
type Summary struct {
	TotalAdjustments int              `json:"total_adjustments"`
	TotalAdditions   int              `json:"total_additions"`
	ByCategory       map[Category]int `json:"adjustments_by_type"`
}

// Summarize derives a summary from an audit log.
func Summarize(audit []Entry) Summary {
	s := Summary{ByCategory: make(map[Category]int)}
	for _, e := range audit {
		cat := CategoryOf(e.RuleID)
		s.ByCategory[cat]++
		if cat == CategoryAddition {
			s.TotalAdditions++
		} else {
			s.TotalAdjustments++
		}
	}
	return s
}

// Result is the outcome of an engine run over a cloned working copy of the
// input line items.
type Result struct {
	Items         []claims.LineItem `json:"adjusted_line_items"`
	Audit         []Entry           `json:"audit_log"`
	Notifications []Notification    `json:"notifications,omitempty"`
	Summary       Summary           `json:"summary"`
	Metadata      Metadata          `json:"metadata"`
}

// Adjusted reports whether the run changed anything.
func (r *Result) Adjusted() bool {
	return len(r.Audit) > 0
}

// EntriesFor returns the audit entries recorded for a line number.
func (r *Result) EntriesFor(lineNumber string) []Entry {
	var out []Entry
	for _, e := range r.Audit {
		if e.LineNumber == lineNumber {
			out = append(out, e)
		}
	}
	return out
}

// EntriesByRule returns the audit entries recorded by a rule.
func (r *Result) EntriesByRule(ruleID string) []Entry {
	var out []Entry
	for _, e := range r.Audit {
		if e.RuleID == ruleID {
			out = append(out, e)
		}
	}
	return out
}
