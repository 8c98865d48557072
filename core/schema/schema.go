package schema

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

const (
	keyTag     = "mapstructure"
	defaultTag = "default"
	skipKey    = "-"
)

var (
	// ErrUnsupportedType is returned for fields that cannot be filled from a string.
	ErrUnsupportedType = errors.New("unsupported field type")
	// ErrInvalidDefault is returned when a declared default does not fit its field.
	ErrInvalidDefault = errors.New("invalid default")
	// ErrNotStruct is returned when the target is not a struct type.
	ErrNotStruct = errors.New("target is not a struct")
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// DefaultFunc produces the default value of a field.
type DefaultFunc func() any

// Defaults maps field keys to the functions producing their defaults.
type Defaults map[string]DefaultFunc

// Field describes one settable field of the target struct.
type Field struct {
	// Key is the name looked up in the merged sources.
	Key string
	// Name is the Go field name.
	Name string
	Type reflect.Type

	// DefaultTag is the raw `default` tag value, valid when HasDefaultTag is set.
	DefaultTag    string
	HasDefaultTag bool
	// DefaultFunc comes from the caller's Defaults table and wins over the tag.
	DefaultFunc DefaultFunc
}

// HasDefault reports whether the field declares a default in any form.
func (f Field) HasDefault() bool {
	return f.DefaultFunc != nil || f.HasDefaultTag
}

// Optional reports whether the field may stay unset.
func (f Field) Optional() bool {
	return f.Type.Kind() == reflect.Pointer
}

// Required reports whether an absent key is an error.
func (f Field) Required() bool {
	return !f.HasDefault() && !f.Optional()
}

// Of builds the field list of t in declaration order.
func Of(t reflect.Type, defaults Defaults) ([]Field, error) {
	if t == nil {
		return nil, ErrNotStruct
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	fields := make([]Field, 0, t.NumField())
	seen := make(map[string]string, t.NumField())
	keys := make(map[string]struct{}, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		key := KeyOf(sf)
		if key == skipKey {
			continue
		}

		if !Supported(sf.Type) {
			return nil, fmt.Errorf("%w: field %s has type %s", ErrUnsupportedType, sf.Name, sf.Type)
		}

		if prev, dup := seen[strings.ToLower(key)]; dup {
			return nil, fmt.Errorf("fields %s and %s share the key %q", prev, sf.Name, key)
		}
		seen[strings.ToLower(key)] = sf.Name
		keys[key] = struct{}{}

		f := Field{
			Key:  key,
			Name: sf.Name,
			Type: sf.Type,
		}
		f.DefaultTag, f.HasDefaultTag = sf.Tag.Lookup(defaultTag)
		if fn, ok := defaults[key]; ok && fn != nil {
			f.DefaultFunc = fn
		}

		fields = append(fields, f)
	}

	for key := range defaults {
		if _, ok := keys[key]; !ok {
			return nil, fmt.Errorf("%w: no field with key %q", ErrInvalidDefault, key)
		}
	}

	return fields, nil
}

// KeyOf returns the lookup key of a struct field.
func KeyOf(sf reflect.StructField) string {
	tag := sf.Tag.Get(keyTag)
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name
	}
	return name
}

// Supported reports whether values of t can be produced from a string.
func Supported(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
		if t.Kind() == reflect.Pointer {
			return false
		}
	}
	if t == durationType || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
