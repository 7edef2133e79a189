// Package mcpcfg builds connection descriptors for external MCP tool servers (Datadog monitoring, GitHub source control) and assembles them into the registry handed to the agent runtime at session start. Misconfigured providers are skipped with a warning so a session remains constructible with partial configuration.
package mcpcfg
