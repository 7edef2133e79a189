package mcpcfg

import (
	"github.com/effective-security/x/values"
)

const (
	ProviderDatadog = "datadog"

	EnvDatadogAPIKey = "DD_API_KEY"
	EnvDatadogAppKey = "DD_APP_KEY"
	EnvDatadogSite   = "DD_SITE"

	DefaultDatadogSite    = "datadoghq.com"
	DefaultDatadogCommand = "datadog-mcp-server"
)

// buildDatadog builds the Datadog MCP server descriptor.
// The server binary is resolved from PATH when the runtime spawns it.
func buildDatadog(cfg *Config) (*ServerConfig, error) {
	dd := cfg.Datadog

	if isPlaceholder(dd.APIKey) {
		return nil, &ConfigError{
			Provider: ProviderDatadog,
			Reason:   "DD_API_KEY environment variable not set",
			Hint:     "Set it in the .env file or export it.",
		}
	}
	if isPlaceholder(dd.AppKey) {
		return nil, &ConfigError{
			Provider: ProviderDatadog,
			Reason:   "DD_APP_KEY environment variable not set",
			Hint:     "Set it in the .env file or export it.",
		}
	}

	return &ServerConfig{
		Type:    TransportStdio,
		Command: values.StringsCoalesce(dd.Command, DefaultDatadogCommand),
		Env: map[string]string{
			EnvDatadogAPIKey: dd.APIKey,
			EnvDatadogAppKey: dd.AppKey,
			EnvDatadogSite:   values.StringsCoalesce(dd.Site, DefaultDatadogSite),
		},
	}, nil
}
