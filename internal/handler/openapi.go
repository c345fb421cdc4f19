package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/choice-battle/backend/internal/server"
	"github.com/choice-battle/backend/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API documentation embedded in the binary.
type OpenAPIHandler struct {
	Handler
	files fs.FS
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		files:   static.Files,
	}
}

// ServeOpenAPIUI serves the Swagger UI page, which loads /api-docs.json.
// Caching is disabled so doc updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	return h.serve(c, static.OpenAPIUI, echo.MIMETextHTMLCharsetUTF8)
}

// ServeOpenAPISpec serves the OpenAPI 3 document.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	return h.serve(c, static.OpenAPISpec, echo.MIMEApplicationJSONCharsetUTF8)
}

func (h *OpenAPIHandler) serve(c echo.Context, name, contentType string) error {
	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.Blob(http.StatusOK, contentType, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
