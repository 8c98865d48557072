// Package source reads raw configuration values from the two supported inputs.
//
// Both readers produce a Map: a flat mapping from field name to the raw string
// value found in that input. No typing happens here; every value stays a string
// until the decode package coerces it into the caller's struct.
//
// # Command Line
//
// FromArgs interprets arguments of the form
//
//	--server_url localhost:9090
//	--server_url=localhost:9090
//	--verbose                     (no value: stored as "true")
//
// Values without a preceding key are ignored and a bare "--" ends parsing.
//
// # File
//
// ReadFile reads a flat ".env"-style file with one "key = value" assignment per
// line. A missing file yields an empty Map. Lines without "=" are returned as
// MalformedLineError values next to the Map instead of failing the read, so the
// caller decides whether they are fatal.
//
//	cred_file = credentials.json
//	# comments and blank lines are skipped
//	server_url = "127.0.0.1:8080"
//
// Values in double quotes may use the escapes written by godotenv:
// \\ \" \$ \! \` \n and \r. Single-quoted and bare values are taken literally.
package source
