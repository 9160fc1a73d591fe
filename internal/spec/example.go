package spec

import _ "embed"

// ExampleJSON is a complete specification used by the preview and
// spec-example endpoints.
//
//go:embed example.json
var ExampleJSON []byte

// Example parses ExampleJSON.
func Example() (*PageSpec, error) {
	return Parse(ExampleJSON)
}
