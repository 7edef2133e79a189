package agent

import (
	"context"

	"github.com/ramki271/Incident-management/mcpcfg"
)

// SessionOptions is handed to the runtime once at session start. The Servers
// registry is passed verbatim; the runtime owns all subsequent tool selection
// and invocation decisions.
type SessionOptions struct {
	Model          string
	SystemPrompt   string
	MaxTokens      int64
	PermissionMode PermissionMode
	Servers        mcpcfg.Registry
}

// Runtime is the external conversational runtime behind an Agent.
type Runtime interface {
	// Start opens the session.
	Start(ctx context.Context, opts *SessionOptions) error
	// Query sends one prompt. The returned channel is closed when the
	// response is complete; a MessageError entry terminates it early.
	Query(ctx context.Context, prompt string) (<-chan Message, error)
	// Close releases the underlying connection.
	Close() error
}
