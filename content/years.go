package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrYearRange is returned when a year range doesn't have exactly two
// elements.
var ErrYearRange = errors.New("years must have exactly two elements")

// YearRange is a start year and an end year, in that order. Either may be
// written as a number or a string in the source file.
type YearRange [2]string

// Start returns the first year of the range.
func (y YearRange) Start() string {
	return y[0]
}

// End returns the last year of the range.
func (y YearRange) End() string {
	return y[1]
}

// UnmarshalYAML decodes a two-element YAML sequence of scalars.
func (y *YearRange) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: %w, got a non-sequence", node.Line, ErrYearRange)
	}
	if len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w, got %d", node.Line, ErrYearRange, len(node.Content))
	}
	for pos, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: year %d must be a scalar", item.Line, pos)
		}
		y[pos] = item.Value
	}
	return nil
}

// UnmarshalJSON decodes a two-element JSON array of strings or numbers.
func (y *YearRange) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding years: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w, got %d", ErrYearRange, len(raw))
	}
	for pos, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return fmt.Errorf("decoding year %d: %w", pos, err)
			}
			y[pos] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err != nil {
			return fmt.Errorf("decoding year %d: %w", pos, err)
		}
		y[pos] = n.String()
	}
	return nil
}
