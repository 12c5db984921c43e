package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"
)

// Parse decodes a descriptor file. The format is chosen by extension:
// .json is the contract format, .yaml/.yml is accepted with the same schema.
// The stem (file name without extension) doubles as the descriptor identifier
// and as the fallback display name.
func Parse(path string, data []byte) (*Descriptor, error) {
	raw := make(map[string]any)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return decode(stem, raw)
}

// decode декодира raw map в Descriptor през mapstructure
func decode(stem string, raw map[string]any) (*Descriptor, error) {
	var d Descriptor
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid descriptor: %w", err)
	}

	d.Stem = stem
	if d.Name == "" {
		d.Name = stem
	}
	for i, ps := range d.ParameterSets {
		if ps.Name == "" {
			d.ParameterSets[i].Name = "Unnamed"
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
