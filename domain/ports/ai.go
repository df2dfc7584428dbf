package ports

import "context"

// ChatModelPort relays one prompt to a generative model
type ChatModelPort interface {
	Reply(ctx context.Context, message string) (string, error)
}
