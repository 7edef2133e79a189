package agent

import (
	"github.com/effective-security/x/values"

	"github.com/ramki271/Incident-management/mcpcfg"
)

// SubagentConfig describes a specialized agent: a narrower instruction set
// over a subset of the tool servers, invocable as a delegated capability.
type SubagentConfig struct {
	Name         string
	Instructions string
	Model        string
	Servers      mcpcfg.Registry
}

// NewSubagent creates an agent scoped per the subagent config: the
// instructions become the system prompt and the registry is whatever subset
// the config names. The subagent owns its runtime session independently of
// any parent.
func NewSubagent(rt Runtime, cfg SubagentConfig) (*Agent, error) {
	return New(
		WithRuntime(rt),
		WithModel(values.StringsCoalesce(cfg.Model, DefaultModel)),
		WithSystemPrompt(cfg.Instructions),
		WithServers(cfg.Servers),
	)
}
