package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded document to the swagger UI.
type openAPIDoc struct {
	raw string
}

func (d openAPIDoc) ReadDoc() string {
	return d.raw
}

var docsOnce sync.Once

// registerDocs publishes spec under the default swag instance read by
// /swagger/doc.json. swag allows one registration per process.
func registerDocs(spec *openapi3.T) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	docsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{raw: string(raw)})
	})
	return nil
}
