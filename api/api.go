// Package api holds the OpenAPI document of the HTTP interface.
package api

import _ "embed"

// Spec is the OpenAPI 3 document in YAML.
//
//go:embed openapi.yml
var Spec []byte
