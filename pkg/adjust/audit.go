package adjust

import (
	"time"

	"github.com/estimatics/roofline/pkg/catalog"
)

// Field names a line-item field mutated by an adjustment.
type Field string

// Audited fields.
const (
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unit_price"
	FieldUnit      Field = "unit"
)

// Entry is one record of the append-only audit log. Every atomic mutation
// the engine performs emits exactly one entry; an item floored and then
// rounded carries two.
type Entry struct {
	LineNumber  string    `json:"line_number"`
	Description string    `json:"description"`
	Field       Field     `json:"field"`
	Before      any       `json:"before"`
	After       any       `json:"after"`
	Explanation string    `json:"explanation"`
	RuleID      string    `json:"rule_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationType classifies conditions the engine reports but will not
// auto-fix.
type NotificationType string

// Notification types.
const (
	// NoteMissingSurcharge flags a steep-roof band with measured area but no
	// surcharge line to pin. Surcharge lines are never synthesized.
	NoteMissingSurcharge NotificationType = "missing_surcharge"

	// NoteZeroRoofArea flags a report with no total roof area while shingle
	// items are present; quantity floors are skipped.
	NoteZeroRoofArea NotificationType = "zero_roof_area"

	// NoteFuzzySuggestion carries near-miss catalog matches for an item with
	// no exact catalog entry. Suggestions are informational only.
	NoteFuzzySuggestion NotificationType = "fuzzy_suggestion"

	// NoteMalformedItem flags an item the engine passed through untouched.
	NoteMalformedItem NotificationType = "malformed_item"

	// NoteMissingCatalogEntry flags a required addition that could not be
	// priced because the catalog has no entry for it.
	NoteMissingCatalogEntry NotificationType = "missing_catalog_entry"
)

// Notification is an informational record accompanying a run.
type Notification struct {
	Type        NotificationType `json:"type"`
	LineNumber  string           `json:"line_number,omitempty"`
	Description string           `json:"description,omitempty"`
	Message     string           `json:"message"`
	Suggestions []catalog.Match  `json:"suggestions,omitempty"`
}
