package agent

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ramki271/Incident-management/mcpcfg"
)

var logger = xlog.NewPackageLogger("github.com/ramki271/Incident-management", "agent")

// ErrNotStarted is returned when the agent is used before Start.
// This is a programmer error, not a configuration problem.
var ErrNotStarted = errors.New("agent: session not started, call Start first or use Run")

var validate = validator.New()

// Agent wraps one runtime session. It is not safe for concurrent use: a
// session issues at most one outstanding query at a time.
type Agent struct {
	opts    Options
	id      string
	started bool
}

// New creates an agent. The runtime must be supplied; model, max tokens and
// permission mode default to DefaultModel, DefaultMaxTokens and
// PermissionDefault.
func New(opts ...Option) (*Agent, error) {
	o := Options{
		Model:          DefaultModel,
		MaxTokens:      DefaultMaxTokens,
		PermissionMode: PermissionDefault,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(o); err != nil {
		return nil, errors.Wrap(err, "invalid agent options")
	}

	a := &Agent{
		opts: o,
		id:   uuid.NewString(),
	}
	logger.KV(xlog.DEBUG,
		"status", "agent_created",
		"session", a.id,
		"model", o.Model,
		"servers", o.Servers.Names())
	return a, nil
}

// ID returns the session identifier used in logs.
func (a *Agent) ID() string {
	return a.id
}

// Servers returns the registry this session was configured with.
func (a *Agent) Servers() mcpcfg.Registry {
	return a.opts.Servers
}

// Start opens the runtime session and hands it the server registry.
// Starting an already started agent is a no-op.
func (a *Agent) Start(ctx context.Context) error {
	if a.started {
		return nil
	}
	so := &SessionOptions{
		Model:          a.opts.Model,
		SystemPrompt:   a.opts.SystemPrompt,
		MaxTokens:      a.opts.MaxTokens,
		PermissionMode: a.opts.PermissionMode,
		Servers:        a.opts.Servers,
	}
	if err := a.opts.Runtime.Start(ctx, so); err != nil {
		return errors.Wrap(err, "failed to start runtime session")
	}
	a.started = true
	logger.KV(xlog.DEBUG, "status", "session_started", "session", a.id)
	return nil
}

// Stop releases the runtime connection. Safe to call more than once.
func (a *Agent) Stop() error {
	if !a.started {
		return nil
	}
	a.started = false
	logger.KV(xlog.DEBUG, "status", "session_stopped", "session", a.id)
	return a.opts.Runtime.Close()
}

// Query sends one prompt and blocks until the response is complete,
// returning the collected text. The runtime decides on its own which tools
// to invoke; tool activity is logged and the text fragments are folded.
// Failures from the runtime propagate unmodified.
func (a *Agent) Query(ctx context.Context, prompt string) (string, error) {
	if !a.started {
		return "", ErrNotStarted
	}

	ch, err := a.opts.Runtime.Query(ctx, prompt)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for msg := range ch {
		switch msg.Type {
		case MessageText:
			sb.WriteString(msg.Text)
		case MessageToolUse:
			logger.KV(xlog.DEBUG,
				"session", a.id,
				"tool_use", msg.ToolName,
				"id", msg.ToolID)
		case MessageToolResult:
			logger.KV(xlog.DEBUG,
				"session", a.id,
				"tool_result", msg.ToolID)
		case MessageError:
			return "", errors.New(msg.Err)
		default:
			return "", errors.Errorf("unsupported message type: %s", msg.Type)
		}
	}
	return sb.String(), nil
}
