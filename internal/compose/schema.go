package compose

import (
	_ "embed"

	"github.com/careeriq/engine/internal/schemas"
)

//go:embed envelope.schema.json
var envelopeSchema string

// ValidateJSON checks serialized envelope content against the embedded result
// schema. Intended for consumers that persist or transport envelopes as raw
// JSON and want to verify shape before use.
func ValidateJSON(jsonContent string) error {
	return schemas.ValidateJSONString(envelopeSchema, jsonContent)
}
