package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WeightConfig maps property names to non-negative numeric weights. Document
// order is preserved: the active property list fed to the score engine follows
// the order in which weights were declared, which keeps repeated runs on the
// same configuration byte-for-byte identical.
type WeightConfig struct {
	order   []string
	weights map[string]float64
}

// NewWeightConfig creates an empty weight configuration.
func NewWeightConfig() *WeightConfig {
	return &WeightConfig{weights: make(map[string]float64)}
}

// Set assigns a weight, appending the property to the declaration order on
// first assignment.
func (w *WeightConfig) Set(property string, weight float64) {
	if w.weights == nil {
		w.weights = make(map[string]float64)
	}
	if _, exists := w.weights[property]; !exists {
		w.order = append(w.order, property)
	}
	w.weights[property] = weight
}

// Get returns the weight for a property.
func (w *WeightConfig) Get(property string) (float64, bool) {
	weight, ok := w.weights[property]
	return weight, ok
}

// Properties returns property names in declaration order.
func (w *WeightConfig) Properties() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

// Len returns the number of configured properties.
func (w *WeightConfig) Len() int {
	return len(w.order)
}

// Clone returns an independent copy, so per-invocation overrides never leak
// into the shared defaults.
func (w *WeightConfig) Clone() *WeightConfig {
	clone := NewWeightConfig()
	for _, p := range w.order {
		clone.Set(p, w.weights[p])
	}
	return clone
}

// Validate rejects negative weights. Zero weights are legal and simply
// contribute nothing to any score.
func (w *WeightConfig) Validate() error {
	for _, p := range w.order {
		if w.weights[p] < 0 {
			return fmt.Errorf("weight for property %q is negative (%v)", p, w.weights[p])
		}
	}
	return nil
}

// UnmarshalJSON decodes a flat {property: number} document, preserving the
// key order of the document rather than Go's randomized map iteration.
func (w *WeightConfig) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read weight document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("weight document must be a JSON object, got %v", tok)
	}

	w.order = nil
	w.weights = make(map[string]float64)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read weight property name: %w", err)
		}
		key := keyTok.(string)

		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("weight for property %q is not numeric: %w", key, err)
		}
		w.Set(key, value)
	}

	return nil
}

// MarshalJSON encodes weights as a flat object in declaration order.
func (w *WeightConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range w.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(w.weights[p])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
