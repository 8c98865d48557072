package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt64E converts various types to int64 using explicit type switching.
// It handles standard integer types, whole floats, strings, and byte slices.
func ToInt64E(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return uint64ToInt64(uint64(v))
	case uint64:
		return uint64ToInt64(v)
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", val)
	}
}

// ToUint64E converts various types to uint64. Negative inputs are rejected.
func ToUint64E(val any) (uint64, error) {
	switch v := val.(type) {
	case uint:
		return uint64(v), nil
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case string:
		return strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	case []byte:
		return strconv.ParseUint(strings.TrimSpace(string(v)), 10, 64)
	default:
		i, err := ToInt64E(val)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %T to uint64", val)
		}
		if i < 0 {
			return 0, fmt.Errorf("cannot convert negative value %d to uint64", i)
		}
		return uint64(i), nil
	}
}

// ToFloat64E converts numeric types and numeric strings to float64.
func ToFloat64E(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case []byte:
		return strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	default:
		if u, ok := val.(uint64); ok {
			return float64(u), nil
		}
		i, err := ToInt64E(val)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %T to float64", val)
		}
		return float64(i), nil
	}
}

// ToBoolE converts various types to bool.
// It handles bool, numeric types (0 and 1 only), and strings accepted by strconv.ParseBool.
func ToBoolE(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		i, err := ToInt64E(v)
		if err != nil || (i != 0 && i != 1) {
			return false, fmt.Errorf("cannot convert %v to bool", v)
		}
		return i == 1, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	case []byte:
		return strconv.ParseBool(strings.TrimSpace(string(v)))
	default:
		return false, fmt.Errorf("cannot convert %T to bool", val)
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func uint64ToInt64(v uint64) (int64, error) {
	if v > 1<<63-1 {
		return 0, fmt.Errorf("value %d overflows int64", v)
	}
	return int64(v), nil
}

func wholeFloat(f float64) (int64, error) {
	i := int64(f)
	if float64(i) != f {
		return 0, fmt.Errorf("value %v is not a whole number", f)
	}
	return i, nil
}
