package stats

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeRows decodes header-keyed rows into a slice of structs tagged with
// `mapstructure:"HEADER"`. Weak typing lets "1946" land in an int field.
func DecodeRows(rows []Row, out any) error {
	raw := make([]map[string]any, len(rows))
	for i, row := range rows {
		raw[i] = row
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("build row decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode rows: %w", err)
	}
	return nil
}
