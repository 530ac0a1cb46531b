package ai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileRow is one entry of an AI table file, keyed by code:
//
//	{"01": {"name": "GTIN", "length": 14, "fixed_length": true}}
//	{"310y": {"name": "NET WEIGHT (kg)", "length": 6, "decimal_position": 0}}
type fileRow struct {
	Name            string `json:"name" yaml:"name"`
	Length          int    `json:"length" yaml:"length"`
	FixedLength     *bool  `json:"fixed_length" yaml:"fixed_length"`
	DecimalPosition *int   `json:"decimal_position" yaml:"decimal_position"`
}

// LoadFile reads an AI table from a JSON or YAML file. The format is chosen
// by extension; anything other than .yaml/.yml is treated as JSON.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTableUnavailable, err)
	}
	rows := map[string]fileRow{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rows)
	default:
		err = json.Unmarshal(data, &rows)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTableUnavailable, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no entries", ErrTableUnavailable, path)
	}

	codes := make([]string, 0, len(rows))
	for c := range rows {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	defs := make([]Definition, 0, len(rows))
	for _, code := range codes {
		r := rows[code]
		d := Definition{Code: code, Name: r.Name, MaxLength: r.Length, Fixed: true}
		if r.FixedLength != nil {
			d.Fixed = *r.FixedLength
		}
		if r.DecimalPosition != nil {
			d.Decimals = *r.DecimalPosition
			d.HasDecimals = true
		}
		defs = append(defs, d)
	}
	return New(path, defs)
}

// Open resolves the table the process should run with. An empty path selects
// the builtin table. When path is set but cannot be loaded, Open returns the
// minimal Fallback table together with the load error: the caller reports the
// error and keeps running.
func Open(path string) (*Registry, error) {
	if path == "" {
		return Builtin(), nil
	}
	r, err := LoadFile(path)
	if err != nil {
		return Fallback(), err
	}
	return r, nil
}
