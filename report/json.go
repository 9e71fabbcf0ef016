package report

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"

	"wordcover/analyzer"
)

// WriteJSON renders the full result as indented JSON.
func WriteJSON(w io.Writer, res *analyzer.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// Schema returns the JSON Schema for the JSON report format, so downstream
// consumers can validate reports without importing this module.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: false,
	}
	schema := reflector.Reflect(&analyzer.Result{})
	return json.MarshalIndent(schema, "", "  ")
}
