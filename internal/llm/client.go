package llm

import (
	"context"
)

// Client generates free text for a prompt.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
