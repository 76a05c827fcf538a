package servers

import (
	"fmt"

	"pizza/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger returns the OpenAPI document the handlers were generated from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
