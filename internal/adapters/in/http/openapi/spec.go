// Package openapi holds the HTTP contract of the freight API: the embedded
// OpenAPI document, the wire types and the echo routing wrapper that binds
// path and query parameters before calling a ServerInterface.
package openapi

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawSpec []byte

// document serves the embedded spec to the swagger UI.
type document struct{}

func (document) ReadDoc() string {
	return string(rawSpec)
}

func init() {
	swag.Register(swag.Name, document{})
}

var (
	loadOnce   sync.Once
	loadedSpec *openapi3.T
	loadErr    error
)

// GetSwagger parses and validates the embedded document. The result is
// shared; callers must not mutate it.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		loadedSpec, loadErr = loader.LoadFromData(rawSpec)
		if loadErr != nil {
			return
		}
		loadErr = loadedSpec.Validate(loader.Context)
	})
	return loadedSpec, loadErr
}

// RawSpec returns the document bytes.
func RawSpec() []byte {
	return rawSpec
}
