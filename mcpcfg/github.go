package mcpcfg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/effective-security/x/values"
)

const (
	ProviderGithub = "github"

	EnvGithubToken = "GITHUB_PERSONAL_ACCESS_TOKEN"
)

// DefaultGithubServerPath returns the expected install location of the
// GitHub MCP server binary, installed via
// `go install github.com/github/github-mcp-server/cmd/github-mcp-server@latest`.
func DefaultGithubServerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "go", "bin", "github-mcp-server")
}

// buildGithub builds the GitHub MCP server descriptor.
// Unlike Datadog, the server binary lives at a fixed per-user path and its
// presence is checked up front.
func buildGithub(cfg *Config) (*ServerConfig, error) {
	gh := cfg.Github

	if isPlaceholder(gh.Token) {
		return nil, &ConfigError{
			Provider: ProviderGithub,
			Reason:   "GITHUB_PERSONAL_ACCESS_TOKEN not set",
			Hint:     "Create a token at https://github.com/settings/tokens with scopes: repo, read:org, read:user, workflow.",
		}
	}

	path := values.StringsCoalesce(gh.ServerPath, DefaultGithubServerPath())
	if _, err := os.Stat(path); err != nil {
		return nil, &ConfigError{
			Provider: ProviderGithub,
			Reason:   fmt.Sprintf("GitHub MCP server not found at %s", path),
			Hint:     "Install it with: go install github.com/github/github-mcp-server/cmd/github-mcp-server@latest",
		}
	}

	return &ServerConfig{
		Type:    TransportStdio,
		Command: path,
		Args:    []string{"stdio"},
		Env: map[string]string{
			EnvGithubToken: gh.Token,
		},
	}, nil
}
