package llm

import "context"

// TextGenerator is the entire AI capability the pipeline may depend on:
// one prompt in, one text payload out. No streaming, no tools, no
// multi-turn state.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FieldPayload is one raw field as returned by the model. Line is the
// 1-based number of the prompt line the value came from; 0 means the
// model omitted the attribution.
type FieldPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Line  int    `json:"line,omitempty"`
}
