package port

import "context"

// Generator is the external answer-synthesis capability.
type Generator interface {
	// IsAvailable reports whether the backend is configured.
	IsAvailable() bool

	// GenerateContent generates text from the prompt. Any backend fault
	// surfaces as an error; callers decide how to degrade.
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// ModelName returns the name of the configured model.
	ModelName() string
}
