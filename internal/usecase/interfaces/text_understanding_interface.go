package interfaces

import "context"

// ITextUnderstanding abstracts the external vision/text model (OpenAI).
//
// Two call shapes go through the same capability:
//   - ExtractText: image in, free-form text out
//   - CompleteJSON: instruction + prompt in, a JSON-only completion out
type ITextUnderstanding interface {
	ExtractText(ctx context.Context, image []byte, contentType string, instruction string) (string, error)
	CompleteJSON(ctx context.Context, system string, prompt string) (string, error)
}
