package mcpcfg

import (
	"fmt"
	"slices"
)

// TransportStdio is the only transport the agent runtime currently accepts:
// the server is spawned as a child process and spoken to over stdin/stdout.
const TransportStdio = "stdio"

// ServerConfig describes how to spawn and connect to one MCP tool server.
type ServerConfig struct {
	Type    string            `json:"type" yaml:"type"`
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// Registry maps provider name to a validated server descriptor.
// It is assembled once per session, handed to the agent runtime as is,
// and never mutated afterwards.
type Registry map[string]*ServerConfig

// Names returns the configured provider names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Subset returns a registry narrowed to the named providers.
// Names without a descriptor are ignored.
func (r Registry) Subset(names ...string) Registry {
	sub := make(Registry, len(names))
	for _, name := range names {
		if sc, ok := r[name]; ok {
			sub[name] = sc
		}
	}
	return sub
}

// ConfigError reports a provider that cannot be configured: a missing or
// placeholder credential, or a missing server binary. The Hint tells the
// operator how to fix it.
type ConfigError struct {
	Provider string
	Reason   string
	Hint     string
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s. %s", e.Provider, e.Reason, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}
