package ports

import (
	"context"
	"encoding/json"
)

// GenerationParams are the per-section sampling constants. Fixed by the
// dispatcher, never caller-configurable.
type GenerationParams struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// StructuredGenerator is the generative-model provider. The returned raw
// JSON must conform to the section schema embedded in the prompt; the
// caller unmarshals into the section's shape and treats any failure as a
// generation error.
type StructuredGenerator interface {
	GenerateJSON(ctx context.Context, prompt, system string, params GenerationParams) (json.RawMessage, error)
}
