package agent

import (
	"github.com/ramki271/Incident-management/mcpcfg"
)

// PermissionMode controls how the runtime treats tool invocations that have
// external side effects, such as opening a pull request.
type PermissionMode string

const (
	// PermissionDefault requires the runtime to seek approval before
	// write-side tools run.
	PermissionDefault PermissionMode = "default"
	// PermissionBypass auto-approves every tool invocation. Callers must opt
	// in explicitly; fully autonomous remediation workflows need it.
	PermissionBypass PermissionMode = "bypassPermissions"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 4096
)

// Options configure an Agent session.
type Options struct {
	Model          string         `validate:"required"`
	SystemPrompt   string         `validate:"-"`
	MaxTokens      int64          `validate:"gte=1"`
	PermissionMode PermissionMode `validate:"oneof=default bypassPermissions"`
	Servers        mcpcfg.Registry
	Runtime        Runtime `validate:"required"`
}

type Option func(*Options)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(opts *Options) {
		opts.Model = model
	}
}

// WithSystemPrompt sets the session instructions.
func WithSystemPrompt(prompt string) Option {
	return func(opts *Options) {
		opts.SystemPrompt = prompt
	}
}

// WithMaxTokens caps the response size.
func WithMaxTokens(n int64) Option {
	return func(opts *Options) {
		opts.MaxTokens = n
	}
}

// WithPermissionMode sets how write-side tool invocations are approved.
func WithPermissionMode(mode PermissionMode) Option {
	return func(opts *Options) {
		opts.PermissionMode = mode
	}
}

// WithServers passes the assembled MCP server registry to the session.
func WithServers(reg mcpcfg.Registry) Option {
	return func(opts *Options) {
		opts.Servers = reg
	}
}

// WithRuntime supplies the conversational runtime backing the session.
func WithRuntime(rt Runtime) Option {
	return func(opts *Options) {
		opts.Runtime = rt
	}
}
