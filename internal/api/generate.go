// Package api holds the HTTP contract (openapi.yaml) and the Go bindings
// generated from it.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml openapi.yaml
