package components

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Stateful is an inspectable component that can be saved to a panel state file.
type Stateful interface {
	Inspectable
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// SaveState writes every component's serialized props to path, keyed by type name.
func SaveState(path string, comps []Stateful) error {
	state := make(map[string]map[string]any, len(comps))
	for _, c := range comps {
		state[c.TypeName()] = c.Serialize()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// LoadState applies the props saved at path to comps with a matching type
// name. A missing file is not an error; components keep their values.
func LoadState(path string, comps []Stateful) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	var state map[string]map[string]any
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state: %w", err)
	}
	for _, c := range comps {
		if props, ok := state[c.TypeName()]; ok {
			c.Deserialize(props)
		}
	}
	return nil
}

// floats3 reads a three-element JSON array of numbers.
func floats3(v any) ([3]float64, bool) {
	var out [3]float64
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		return out, false
	}
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			return out, false
		}
		out[i] = f
	}
	return out, true
}
