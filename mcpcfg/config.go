package mcpcfg

import (
	"os"
	"strings"

	"github.com/effective-security/x/configloader"
	"github.com/joho/godotenv"
)

// DatadogConfig carries credentials for the Datadog MCP server.
type DatadogConfig struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	AppKey string `json:"app_key,omitempty" yaml:"app_key,omitempty"`
	Site   string `json:"site,omitempty" yaml:"site,omitempty"`
	// Command overrides the server binary name resolved from PATH.
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// GithubConfig carries credentials for the GitHub MCP server.
type GithubConfig struct {
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
	// ServerPath overrides the expected install location of the server binary.
	ServerPath string `json:"server_path,omitempty" yaml:"server_path,omitempty"`
}

// Config is the explicit provider configuration consumed by Build and
// Assemble. Load it once at process start; the builders never read the
// environment themselves.
type Config struct {
	Datadog DatadogConfig `json:"datadog" yaml:"datadog"`
	Github  GithubConfig  `json:"github" yaml:"github"`
}

// LoadEnv loads optional .env files into the process environment.
// Missing files are not an error.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ConfigFromEnv snapshots provider credentials from the process environment.
func ConfigFromEnv() *Config {
	return &Config{
		Datadog: DatadogConfig{
			APIKey: os.Getenv(EnvDatadogAPIKey),
			AppKey: os.Getenv(EnvDatadogAppKey),
			Site:   os.Getenv(EnvDatadogSite),
		},
		Github: GithubConfig{
			Token: os.Getenv(EnvGithubToken),
		},
	}
}

// LoadConfig reads provider configuration from a YAML or JSON file,
// expanding ${VAR} references from the environment.
// An empty location falls back to the environment snapshot.
func LoadConfig(file string) (*Config, error) {
	if file == "" {
		return ConfigFromEnv(), nil
	}

	cfg := new(Config)
	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// isPlaceholder reports whether a credential is absent or still carries an
// unedited template value such as "your_datadog_api_key_here".
func isPlaceholder(v string) bool {
	return v == "" ||
		(strings.HasPrefix(v, "your_") && strings.HasSuffix(v, "_here"))
}
