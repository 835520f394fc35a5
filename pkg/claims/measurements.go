package claims

import (
	"encoding/json"
	"fmt"
)

// Measurements holds the roof geometry report keyed by canonical measurement
// name. Missing keys read as zero, which disables the rules that depend on
// them.
type Measurements map[string]float64

// Get returns the value for a measurement key, or 0 when absent.
func (m Measurements) Get(key string) float64 {
	if m == nil {
		return 0
	}
	return m[key]
}

// Has reports whether a measurement key is present with a positive value.
func (m Measurements) Has(key string) bool {
	return m.Get(key) > 0
}

// Clone returns a copy of the measurements map.
func (m Measurements) Clone() Measurements {
	if m == nil {
		return nil
	}
	out := make(Measurements, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// measurementValue accepts both the flat and the structured report formats:
// a bare number, or an object carrying a "value" key.
type measurementValue struct {
	Value float64
}

func (v *measurementValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Value = n
		return nil
	}
	var obj struct {
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("measurement value must be a number or an object with a value key: %w", err)
	}
	v.Value = obj.Value
	return nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting measurement values as
// either bare numbers or {"value": n} objects.
func (m *Measurements) UnmarshalJSON(data []byte) error {
	var raw map[string]measurementValue
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Measurements, len(raw))
	for k, v := range raw {
		out[k] = v.Value
	}
	*m = out
	return nil
}
