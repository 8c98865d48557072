package decode

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"fromenv/core/utils"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

	errTooLarge = errors.New("value out of range")
)

// coerce parses raw into a value of type t.
func coerce(raw string, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		elem, err := coerce(raw, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	v := reflect.New(t).Elem()

	if t == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))
		return v, nil
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		u := v.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			return reflect.Value{}, err
		}
		return v, nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, fmt.Errorf("unsupported type %s", t)
	}

	return v, nil
}

// fit converts the result of a default function to type t.
// Strings go through coerce so a default can be written the same way as a file value.
func fit(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		if t.Kind() == reflect.Pointer {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.New("nil default for non-pointer field")
	}

	rv := reflect.ValueOf(val)
	if rv.Type() == t {
		return rv, nil
	}
	if t.Kind() == reflect.Pointer && rv.Type() == t.Elem() {
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(rv)
		return ptr, nil
	}
	if s, ok := val.(string); ok {
		return coerce(s, t)
	}
	if t.Kind() == reflect.Pointer {
		elem, err := fit(val, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if t == durationType {
		return reflect.Value{}, fmt.Errorf("duration default must be a time.Duration or a string, got %T", val)
	}

	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(utils.ToString(val))
	case reflect.Bool:
		b, err := utils.ToBoolE(val)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := utils.ToInt64E(val)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.OverflowInt(i) {
			return reflect.Value{}, errTooLarge
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := utils.ToUint64E(val)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.OverflowUint(u) {
			return reflect.Value{}, errTooLarge
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := utils.ToFloat64E(val)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.OverflowFloat(f) {
			return reflect.Value{}, errTooLarge
		}
		v.SetFloat(f)
	default:
		if rv.Type().ConvertibleTo(t) {
			return rv.Convert(t), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use %T as %s", val, t)
	}

	return v, nil
}
