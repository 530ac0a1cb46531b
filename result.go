package gs1parse

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Element is one parsed Application Identifier occurrence.
type Element struct {
	AI    string `json:"ai"`
	Name  string `json:"name"`
	Value string `json:"value"`
	// Valid is the check-digit outcome for identification keys (GTIN, SSCC,
	// GLN) of full length, and nil for every other element.
	Valid *bool `json:"valid,omitempty"`
}

// Result holds the elements of one payload. Elements and Fields are two views
// of the same scan; Mode picks the one that is serialized.
type Result struct {
	Mode Mode
	// Elements lists every element in payload order.
	Elements []Element
	// Fields maps element names to values, the last occurrence winning.
	Fields map[string]string
}

func newResult(mode Mode, elements []Element) Result {
	r := Result{Mode: mode, Elements: elements, Fields: make(map[string]string, len(elements))}
	for _, e := range elements {
		r.Fields[e.Name] = e.Value
	}
	return r
}

// Len returns the number of entries in the serialized view: elements in
// verbose mode, distinct names in simple mode.
func (r Result) Len() int {
	if r.Mode == ModeVerbose {
		return len(r.Elements)
	}
	return len(r.Fields)
}

// Empty reports whether nothing was parsed.
func (r Result) Empty() bool {
	return len(r.Elements) == 0 && len(r.Fields) == 0
}

// Get returns the value of the last element named name.
func (r Result) Get(name string) (string, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// MarshalJSON encodes a verbose result as a list of elements and a simple
// result as a name to value object.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Mode == ModeVerbose {
		if r.Elements == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(r.Elements)
	}
	if r.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Fields)
}

// UnmarshalJSON accepts either encoding produced by MarshalJSON. A list
// gives a verbose result with Fields rebuilt from it; an object gives a
// simple result without Elements.
func (r *Result) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("gs1parse: empty result")
	}
	switch b[0] {
	case '[':
		var elements []Element
		if err := json.Unmarshal(b, &elements); err != nil {
			return err
		}
		*r = newResult(ModeVerbose, elements)
	case '{':
		fields := map[string]string{}
		if err := json.Unmarshal(b, &fields); err != nil {
			return err
		}
		*r = Result{Mode: ModeSimple, Fields: fields}
	default:
		return fmt.Errorf("gs1parse: result must be a JSON list or object")
	}
	return nil
}
