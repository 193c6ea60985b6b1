package config

import (
	"fmt"
	"strconv"
)

// Parse converts raw CLI values to the type of the key's default.
func Parse(key string, raw []string) (any, error) {
	field, ok := Default[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", key)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no value given for %s", key)
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		parsed, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		return parsed, nil
	case float64:
		parsed, err := strconv.ParseFloat(raw[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number value: %s", raw[0])
		}
		return parsed, nil
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		return parsed, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type for %s", key)
	}
}
