package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// RegisterSwaggerDocs serves the OpenAPI document at /api/openapi.json and the
// Swagger UI under /swagger/.
func RegisterSwaggerDocs(e *echo.Echo, swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	// swag keeps a process-wide registry and panics on duplicates.
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	}

	e.GET("/api/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
