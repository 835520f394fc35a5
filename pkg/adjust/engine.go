// Package adjust implements the roofing-claim adjustment engine: an ordered
// pipeline of business rules that reconciles estimate line items against the
// reference price catalog and the measured roof geometry, recording every
// mutation in an append-only audit log.
//
// The pipeline order is fixed: catalog reconciliation, shingle quantity
// floors, bundle rounding, steep-roof surcharge pinning, accessory
// reconciliation, underlayment reconciliation, chimney cricket companions.
// Rules only raise quantities (floors) except for catalog prices and steep
// surcharges, which are pinned to their computed values. Running the engine
// over its own output changes nothing.
package adjust

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/estimatics/roofline/internal/matcher"
	"github.com/estimatics/roofline/pkg/catalog"
	"github.com/estimatics/roofline/pkg/claims"
	"github.com/estimatics/roofline/pkg/constants"
	"github.com/estimatics/roofline/pkg/errors"
	"github.com/estimatics/roofline/pkg/logging"
)

// Engine applies the adjustment pipeline. It is stateless across runs and
// safe for concurrent use; each run operates on a clone of its input.
type Engine struct {
	catalog      *catalog.Catalog
	logger       *zerolog.Logger
	wastePercent float64
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets the engine logger. A nil logger restores the default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = logging.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithWastePercent sets the installation waste factor applied to shingle
// quantity floors, as a fraction (0.10 for 10% waste).
func WithWastePercent(p float64) Option {
	return func(e *Engine) error {
		if p < 0 || p > 1 {
			return errors.NewValidationError("waste_percent", p, "must be between 0 and 1")
		}
		e.wastePercent = p
		return nil
	}
}

// New creates an adjustment engine backed by the given price catalog.
func New(c *catalog.Catalog, opts ...Option) (*Engine, error) {
	if c == nil || c.Len() == 0 {
		return nil, errors.ErrEmptyCatalog
	}

	e := &Engine{
		catalog:      c,
		logger:       logging.Default(),
		wastePercent: constants.DefaultWastePercent,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Catalog returns the engine's price catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// WastePercent returns the configured installation waste factor.
func (e *Engine) WastePercent() float64 {
	return e.wastePercent
}

// Run executes the full pipeline over a clone of items. The caller's slice
// and measurement map are never mutated. Empty inputs yield an empty result.
func (e *Engine) Run(ctx context.Context, items []claims.LineItem, m claims.Measurements) (*Result, error) {
	start := time.Now()

	// A logger attached to the context takes precedence over the engine's.
	log := e.logger
	if l := logging.FromContext(ctx); l != logging.Default() {
		log = l
	}

	r := &run{
		engine: e,
		log:    log,
		items:  claims.CloneItems(items),
		m:      m,
		skip:   make(map[int]bool),
	}

	log.Debug().
		Int("items", len(items)).
		Int("measurements", len(m)).
		Float64("waste_percent", e.wastePercent).
		Msg("Starting adjustment run")

	r.screenItems()
	r.reconcileCatalog()
	r.applyQuantityFloors()
	r.applyRounding()
	r.applySteepSurcharges()
	r.applyAccessories()
	r.applyFelt()
	r.applyCrickets()

	end := time.Now()
	result := &Result{
		Items:         r.items,
		Audit:         r.audit,
		Notifications: r.notes,
		Summary:       Summarize(r.audit),
		Metadata: Metadata{
			StartTime:    start,
			EndTime:      end,
			Duration:     end.Sub(start),
			ItemsIn:      len(items),
			ItemsOut:     len(r.items),
			ItemsSkipped: len(r.skip),
		},
	}

	log.Info().
		Int("adjustments", result.Summary.TotalAdjustments).
		Int("additions", result.Summary.TotalAdditions).
		Int("notifications", len(result.Notifications)).
		Dur("duration", result.Metadata.Duration).
		Msg("Adjustment run complete")

	return result, nil
}

// run carries the working state of a single engine invocation.
type run struct {
	engine *Engine
	log    *zerolog.Logger
	items  []claims.LineItem
	m      claims.Measurements
	audit  []Entry
	notes  []Notification
	skip   map[int]bool
}

// screenItems marks malformed items so later rules pass them through
// untouched. The batch always continues.
func (r *run) screenItems() {
	for i := range r.items {
		if r.items[i].Valid() {
			continue
		}
		r.skip[i] = true
		r.log.Warn().
			Str("line_number", r.items[i].LineNumber).
			Str("description", r.items[i].Description).
			Msg("Malformed line item, passing through untouched")
		r.note(Notification{
			Type:        NoteMalformedItem,
			LineNumber:  r.items[i].LineNumber,
			Description: r.items[i].Description,
			Message:     "line item is malformed and was not adjusted",
		})
	}
}

// findAll returns the indexes of items matching the description after
// normalization, excluding skipped items.
func (r *run) findAll(description string) []int {
	var out []int
	for i := range r.items {
		if r.skip[i] {
			continue
		}
		if matcher.Equal(r.items[i].Description, description) {
			out = append(out, i)
		}
	}
	return out
}

// has reports whether any non-skipped item matches the description.
func (r *run) has(description string) bool {
	return len(r.findAll(description)) > 0
}

// record appends an audit entry.
func (r *run) record(e Entry) {
	e.Timestamp = time.Now().UTC()
	r.audit = append(r.audit, e)
}

// note appends a notification.
func (r *run) note(n Notification) {
	r.notes = append(r.notes, n)
}

// setQuantity pins an item's quantity, recomputes its costs, and records a
// single audit entry. No entry is recorded when the quantity is already
// equal within tolerance.
func (r *run) setQuantity(i int, qty float64, ruleID, explanation string) {
	item := &r.items[i]
	if claims.QuantityEqual(item.Quantity, qty) {
		return
	}
	before := item.Quantity
	item.Quantity = qty
	item.UpdateCosts()
	r.record(Entry{
		LineNumber:  item.LineNumber,
		Description: item.Description,
		Field:       FieldQuantity,
		Before:      before,
		After:       qty,
		Explanation: explanation,
		RuleID:      ruleID,
	})
	r.log.Debug().
		Str("rule_id", ruleID).
		Str("line_number", item.LineNumber).
		Float64("before", before).
		Float64("after", qty).
		Msg("Quantity adjusted")
}

// floorQuantity raises an item's quantity to required if currently lower.
// Floors never decrease a quantity.
func (r *run) floorQuantity(i int, required float64, ruleID, explanation string) {
	if r.items[i].Quantity >= required-constants.QuantityTolerance {
		return
	}
	r.setQuantity(i, required, ruleID, explanation)
}

// setUnitPrice pins an item's unit price to the catalog value.
func (r *run) setUnitPrice(i int, price float64, explanation string) {
	item := &r.items[i]
	before := item.UnitPrice
	item.UnitPrice = price
	item.UpdateCosts()
	r.record(Entry{
		LineNumber:  item.LineNumber,
		Description: item.Description,
		Field:       FieldUnitPrice,
		Before:      before,
		After:       price,
		Explanation: explanation,
		RuleID:      RuleCatalogUnitPrice,
	})
	r.log.Debug().
		Str("rule_id", RuleCatalogUnitPrice).
		Str("line_number", item.LineNumber).
		Float64("before", before).
		Float64("after", price).
		Msg("Unit price pinned to catalog")
}

// setUnit pins an item's unit of measure to the catalog value.
func (r *run) setUnit(i int, unit claims.Unit, explanation string) {
	item := &r.items[i]
	before := item.Unit
	item.Unit = unit
	r.record(Entry{
		LineNumber:  item.LineNumber,
		Description: item.Description,
		Field:       FieldUnit,
		Before:      string(before),
		After:       string(unit),
		Explanation: explanation,
		RuleID:      RuleCatalogUnit,
	})
	r.log.Debug().
		Str("rule_id", RuleCatalogUnit).
		Str("line_number", item.LineNumber).
		Str("before", string(before)).
		Str("after", string(unit)).
		Msg("Unit pinned to catalog")
}

// addItem appends a new catalog-priced line item and records its addition
// with a before quantity of zero.
func (r *run) addItem(entry catalog.Entry, qty float64, ruleID, explanation string) {
	item := claims.LineItem{
		LineNumber:  r.nextLineNumber(),
		Description: entry.Description,
		Quantity:    qty,
		Unit:        entry.Unit,
		UnitPrice:   entry.UnitPrice,
	}
	item.UpdateCosts()
	r.items = append(r.items, item)
	r.record(Entry{
		LineNumber:  item.LineNumber,
		Description: item.Description,
		Field:       FieldQuantity,
		Before:      0.0,
		After:       qty,
		Explanation: explanation,
		RuleID:      ruleID,
	})
	r.log.Debug().
		Str("rule_id", ruleID).
		Str("line_number", item.LineNumber).
		Str("description", item.Description).
		Float64("quantity", qty).
		Msg("Line item added")
}

// nextLineNumber continues the numeric line numbering past the current
// maximum.
func (r *run) nextLineNumber() string {
	max := 0
	for i := range r.items {
		if n, err := strconv.Atoi(r.items[i].LineNumber); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// requiredQuantity converts a measured length to the catalog entry's rating:
// squares for SQ-rated entries, the raw measurement otherwise.
func requiredQuantity(entry catalog.Entry, length float64) float64 {
	if entry.Unit == claims.UnitSquare {
		return length / constants.SquareFeetPerSquare
	}
	return length
}

// fmtQty formats a quantity for explanations.
func fmtQty(q float64) string {
	return strconv.FormatFloat(q, 'f', 2, 64)
}

// fmtMoney formats a monetary amount for explanations.
func fmtMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
