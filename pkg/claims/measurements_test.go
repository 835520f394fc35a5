package claims_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estimatics/roofline/pkg/claims"
)

func TestMeasurementsGet(t *testing.T) {
	m := claims.Measurements{"Total Roof Area": 3304}
	assert.Equal(t, 3304.0, m.Get("Total Roof Area"))
	assert.Equal(t, 0.0, m.Get("Total Valleys Length"))

	var nilMap claims.Measurements
	assert.Equal(t, 0.0, nilMap.Get("Total Roof Area"))
}

func TestMeasurementsUnmarshal(t *testing.T) {
	t.Run("bare numbers", func(t *testing.T) {
		var m claims.Measurements
		err := json.Unmarshal([]byte(`{"Total Roof Area": 3304, "Total Eaves Length": 120}`), &m)
		require.NoError(t, err)
		assert.Equal(t, 3304.0, m.Get("Total Roof Area"))
	})

	t.Run("structured values", func(t *testing.T) {
		var m claims.Measurements
		err := json.Unmarshal([]byte(`{"Total Roof Area": {"value": 3304}}`), &m)
		require.NoError(t, err)
		assert.Equal(t, 3304.0, m.Get("Total Roof Area"))
	})

	t.Run("invalid value", func(t *testing.T) {
		var m claims.Measurements
		err := json.Unmarshal([]byte(`{"Total Roof Area": "big"}`), &m)
		assert.Error(t, err)
	})
}

func TestDecodeLineItems(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		in := `[{"line_number":"1","description":"Step flashing","quantity":10,"unit":"LF","unit_price":8.64,"RCV":86.4}]`
		items, itemErrs, err := claims.DecodeLineItems(strings.NewReader(in))
		require.NoError(t, err)
		assert.Empty(t, itemErrs)
		require.Len(t, items, 1)
		assert.Equal(t, "Step flashing", items[0].Description)
		assert.Equal(t, claims.UnitLinearFoot, items[0].Unit)
	})

	t.Run("wrapped document", func(t *testing.T) {
		in := `{"line_items":[{"line_number":"1","description":"Valley metal","quantity":60,"unit":"LF","unit_price":5.5}]}`
		items, _, err := claims.DecodeLineItems(strings.NewReader(in))
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("malformed element skipped", func(t *testing.T) {
		in := `[{"line_number":"1","description":"Valley metal","quantity":60},{"line_number":"2","quantity":"sixty"}]`
		items, itemErrs, err := claims.DecodeLineItems(strings.NewReader(in))
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Len(t, itemErrs, 1)
	})

	t.Run("unparseable document fails", func(t *testing.T) {
		_, _, err := claims.DecodeLineItems(strings.NewReader("{nope"))
		assert.Error(t, err)
	})
}

func TestDecodeMeasurements(t *testing.T) {
	t.Run("flat map", func(t *testing.T) {
		m, err := claims.DecodeMeasurements(strings.NewReader(`{"Total Roof Area": 3304}`))
		require.NoError(t, err)
		assert.Equal(t, 3304.0, m.Get("Total Roof Area"))
	})

	t.Run("wrapped document", func(t *testing.T) {
		m, err := claims.DecodeMeasurements(strings.NewReader(`{"measurements":{"Total Roof Area": 3304}}`))
		require.NoError(t, err)
		assert.Equal(t, 3304.0, m.Get("Total Roof Area"))
	})
}
