package adjust

import (
	"fmt"
	"strings"

	"github.com/estimatics/roofline/pkg/claims"
)

// reconcileCatalog pins unit prices and units of exact catalog matches and
// collects fuzzy suggestions for everything else. Suggestions are
// informational only and never applied automatically.
func (r *run) reconcileCatalog() {
	for i := range r.items {
		if r.skip[i] {
			continue
		}
		item := &r.items[i]

		entry, ok := r.engine.catalog.Lookup(item.Description)
		if !ok {
			if suggestions := r.engine.catalog.Suggest(item.Description); len(suggestions) > 0 {
				r.note(Notification{
					Type:        NoteFuzzySuggestion,
					LineNumber:  item.LineNumber,
					Description: item.Description,
					Message:     fmt.Sprintf("no exact catalog match; %d similar entries found", len(suggestions)),
					Suggestions: suggestions,
				})
			}
			continue
		}

		if !claims.MoneyEqual(item.UnitPrice, entry.UnitPrice) {
			r.setUnitPrice(i, entry.UnitPrice,
				fmt.Sprintf("unit price should match catalog price %s for %q",
					fmtMoney(entry.UnitPrice), entry.Description))
		}

		if entry.Unit != "" && !strings.EqualFold(string(item.Unit), string(entry.Unit)) {
			r.setUnit(i, entry.Unit,
				fmt.Sprintf("unit should match catalog unit %s for %q",
					entry.Unit, entry.Description))
		}
	}
}
