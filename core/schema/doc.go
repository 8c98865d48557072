// Package schema describes the fields of a caller's configuration struct.
//
// A field's key is its `mapstructure` tag name, or the Go field name when the
// tag is missing. Its default comes from the Defaults table passed by the
// caller or, failing that, from the `default` struct tag:
//
//	type Constants struct {
//	    CredFile  string `mapstructure:"cred_file" default:"credentials.json"`
//	    ServerURL string `mapstructure:"server_url" default:"127.0.0.1:8080"`
//	    Port      int    `mapstructure:"port"` // required
//	    Token     *string `mapstructure:"token"` // optional, nil when absent
//	}
//
// A non-pointer field without any default is required.
package schema
