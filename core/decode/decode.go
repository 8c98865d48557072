package decode

import (
	"fmt"
	"reflect"

	"fromenv/core/schema"
	"fromenv/core/source"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap"
)

// Options tune how a merged map is turned into a struct.
type Options struct {
	// Defaults overrides or adds field defaults by key.
	Defaults schema.Defaults
	// DisallowUnknown turns keys that match no field into an UnknownFieldError.
	DisallowUnknown bool
	// Logger receives debug output about ignored keys. Nil disables logging.
	Logger *zap.Logger
}

// Populate builds a T from merged. On error the zero T is returned.
func Populate[T any](merged source.Map, opts Options) (T, error) {
	var out T

	fields, err := schema.Of(reflect.TypeOf(out), opts.Defaults)
	if err != nil {
		return out, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	input, err := resolve(fields, merged, opts.DisallowUnknown, log)
	if err != nil {
		return out, err
	}

	var result T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &result,
		TagName: "mapstructure",
	})
	if err != nil {
		return out, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return out, fmt.Errorf("failed to decode %T: %w", out, err)
	}

	return result, nil
}

// resolve picks a typed value for every field: the coerced source value if the
// key is present, otherwise the default. Fields left out of the result keep
// their zero value.
func resolve(fields []schema.Field, merged source.Map, disallowUnknown bool, log *zap.Logger) (map[string]any, error) {
	input := make(map[string]any, len(fields))
	used := make(map[string]struct{}, len(merged))

	for _, f := range fields {
		raw, ok := merged.Lookup(f.Key)
		if ok {
			used[f.Key] = struct{}{}
			v, err := coerce(raw, f.Type)
			if err != nil {
				return nil, &TypeMismatchError{Field: f.Key, Value: raw, Type: typeName(f.Type), Err: err}
			}
			input[f.Key] = v.Interface()
			continue
		}

		switch {
		case f.DefaultFunc != nil:
			v, err := fit(f.DefaultFunc(), f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w: %w", f.Key, schema.ErrInvalidDefault, err)
			}
			input[f.Key] = v.Interface()
		case f.HasDefaultTag:
			v, err := coerce(f.DefaultTag, f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w: cannot parse %q as %s: %w", f.Key, schema.ErrInvalidDefault, f.DefaultTag, typeName(f.Type), err)
			}
			input[f.Key] = v.Interface()
		case f.Optional():
			log.Debug("optional field not set", zap.String("field", f.Key))
		default:
			return nil, &MissingFieldError{Field: f.Key}
		}
	}

	for _, key := range merged.Keys() {
		if _, ok := used[key]; ok {
			continue
		}
		if disallowUnknown {
			return nil, &UnknownFieldError{Field: key}
		}
		log.Debug("ignoring unknown key", zap.String("key", key))
	}

	return input, nil
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
