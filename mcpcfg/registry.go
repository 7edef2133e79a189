package mcpcfg

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/ramki271/Incident-management", "mcpcfg")

type builderFunc func(*Config) (*ServerConfig, error)

// Known providers, in assembly order.
var builders = []struct {
	name  string
	build builderFunc
}{
	{ProviderDatadog, buildDatadog},
	{ProviderGithub, buildGithub},
}

// Build constructs the descriptor for one named provider.
// It returns *ConfigError when the provider is misconfigured.
func Build(cfg *Config, provider string) (*ServerConfig, error) {
	for _, b := range builders {
		if b.name == provider {
			return b.build(cfg)
		}
	}
	return nil, errors.Errorf("unknown provider: %s", provider)
}

// Assemble builds descriptors for every known provider and collects the
// successful ones. Misconfigured providers are skipped with a warning, not an
// error, so the agent session remains constructible with partial
// configuration. An empty registry is valid.
func Assemble(cfg *Config) Registry {
	reg := make(Registry, len(builders))
	for _, b := range builders {
		sc, err := b.build(cfg)
		if err != nil {
			logger.KV(xlog.WARNING,
				"status", "provider_skipped",
				"provider", b.name,
				"reason", err.Error())
			continue
		}
		reg[b.name] = sc
	}
	return reg
}

// VerifyInstalled checks that the Datadog MCP server binary is reachable on
// PATH and prints its resolved location to w.
func VerifyInstalled(w io.Writer) error {
	path, err := exec.LookPath(DefaultDatadogCommand)
	if err != nil {
		fmt.Fprintf(w, "Error: %s not found in PATH\n", DefaultDatadogCommand)
		fmt.Fprintf(w, "Install it with: npm install -g %s\n", DefaultDatadogCommand)
		return errors.WithStack(err)
	}
	fmt.Fprintf(w, "Found %s at: %s\n", DefaultDatadogCommand, path)
	return nil
}
