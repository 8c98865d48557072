// Package decode turns a merged source map into a typed configuration struct.
//
// Populate walks the fields of the target type in declaration order. A field
// whose key is present is coerced from its raw string; an absent field takes
// its default; an absent field without a default fails with a
// MissingFieldError. A key that is present with an empty value is still
// coerced, so an empty string is a valid string but not a valid int.
//
// Keys are matched exactly: "SERVER_URL" does not fill a field keyed
// "server_url". The coerced values are assembled by
// github.com/go-viper/mapstructure/v2 using the same `mapstructure` tag.
//
// # Usage
//
//	merged := merge.Merge(fileMap, cliMap)
//	cfg, err := decode.Populate[Constants](merged, decode.Options{})
//	var mismatch *decode.TypeMismatchError
//	if errors.As(err, &mismatch) {
//	    log.Fatalf("bad value %q for %s", mismatch.Value, mismatch.Field)
//	}
package decode
