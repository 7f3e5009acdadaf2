package config

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Flag is a boolean that also accepts numbers and boolean strings
// ("true", "1", "f", ...) when decoded from a configuration document.
type Flag bool

func truthy(v any) (Flag, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return Flag(x), nil
	case int64:
		return x != 0, nil
	case int:
		return x != 0, nil
	case float64:
		return x != 0, nil
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false, fmt.Errorf("invalid boolean %q", x)
		}
		return Flag(b), nil
	default:
		return false, fmt.Errorf("invalid boolean value of type %T", v)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	b, err := truthy(v)
	if err != nil {
		return err
	}
	*f = b
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	b, err := truthy(v)
	if err != nil {
		return err
	}
	*f = b
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (f *Flag) UnmarshalTOML(v any) error {
	b, err := truthy(v)
	if err != nil {
		return err
	}
	*f = b
	return nil
}
