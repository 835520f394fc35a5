package claims

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/estimatics/roofline/pkg/errors"
)

// DecodeLineItems reads a JSON array of line items. Malformed elements are
// skipped and reported as per-item errors; they never abort the batch. The
// final error is non-nil only when the document itself cannot be parsed.
func DecodeLineItems(r io.Reader) ([]LineItem, []error, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.WrapIO("read", "line items", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Accept documents wrapping the array under a line_items key.
		var wrapper struct {
			LineItems []json.RawMessage `json:"line_items"`
		}
		if werr := json.Unmarshal(data, &wrapper); werr != nil || wrapper.LineItems == nil {
			return nil, nil, errors.WrapParse("json", "line items", err)
		}
		raw = wrapper.LineItems
	}

	items := make([]LineItem, 0, len(raw))
	var itemErrs []error
	for i, msg := range raw {
		var item LineItem
		if err := json.Unmarshal(msg, &item); err != nil {
			itemErrs = append(itemErrs, errors.NewLineItemError(
				fmt.Sprintf("#%d", i+1), "", err.Error()))
			continue
		}
		items = append(items, item)
	}
	return items, itemErrs, nil
}

// DecodeMeasurements reads a roof measurement report, accepting either a flat
// map of measurements or a document wrapping it under a measurements key.
func DecodeMeasurements(r io.Reader) (Measurements, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "measurements", err)
	}

	var wrapper struct {
		Measurements Measurements `json:"measurements"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.Measurements) > 0 {
		return wrapper.Measurements, nil
	}

	var m Measurements
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("json", "measurements", err)
	}
	return m, nil
}
