//go:build tools

package tools

// Pins the code generator behind internal/api/generate.go and the goose CLI
// for ad-hoc migration work against a live database.

import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
