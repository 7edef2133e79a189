// Command incident-agent runs the autonomous incident response agent.
//
// Subcommands:
//
//	verify             check which MCP tool servers are installed and configured
//	query "<prompt>"   run a one-off natural-language query
//	workflow           run the full detect / analyze / fix / PR workflow
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/effective-security/xlog"

	"github.com/ramki271/Incident-management/agent"
	"github.com/ramki271/Incident-management/agent/claude"
	"github.com/ramki271/Incident-management/mcpcfg"
)

const incidentWorkflowPrompt = `You are an intelligent incident response agent with access to both Datadog and GitHub.

Your mission: detect, analyze, and fix incidents.

STEP 1: DETECT
- Check Datadog for any alerting monitors and identify the most critical alert.

STEP 2: ANALYZE
- Understand what the alert is about, which service is affected, and the likely root cause.

STEP 3: INVESTIGATE CODE
- Access the GitHub repository for the affected service and read the relevant code.

STEP 4: FIX
- Propose a concrete fix and open a pull request with it.

Report what you did at every step.`

func main() {
	var (
		model    = flag.String("model", agent.DefaultModel, "model to use")
		cfgFile  = flag.String("cfg", "", "optional MCP provider config file, defaults to environment")
		logLevel = flag.String("log-level", "INFO", "log level: DEBUG|INFO|WARNING|ERROR")
		bypass   = flag.Bool("bypass-permissions", false, "auto-approve every tool invocation, including ones with external side effects")
	)
	flag.Parse()

	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	xlog.SetGlobalLogLevel(parseLevel(*logLevel))

	mcpcfg.LoadEnv()

	if err := run(flag.Args(), *model, *cfgFile, *bypass); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseLevel(s string) xlog.LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return xlog.DEBUG
	case "WARNING":
		return xlog.WARNING
	case "ERROR":
		return xlog.ERROR
	default:
		return xlog.INFO
	}
}

func run(args []string, model, cfgFile string, bypass bool) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command: verify|query|workflow")
	}

	cfg, err := mcpcfg.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	switch cmd := args[0]; cmd {
	case "verify":
		return verify(cfg)
	case "query":
		if len(args) < 2 {
			return fmt.Errorf("usage: incident-agent query \"<prompt>\"")
		}
		return ask(cfg, model, bypass, args[1])
	case "workflow":
		return ask(cfg, model, bypass, incidentWorkflowPrompt)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func verify(cfg *mcpcfg.Config) error {
	_ = mcpcfg.VerifyInstalled(os.Stdout)

	reg := mcpcfg.Assemble(cfg)
	fmt.Printf("Configured MCP servers: %d\n", len(reg))
	for _, name := range reg.Names() {
		sc := reg[name]
		fmt.Printf("  %s: %s (%d env vars)\n", name, sc.Command, len(sc.Env))
	}
	return nil
}

func ask(cfg *mcpcfg.Config, model string, bypass bool, prompt string) error {
	rt, err := claude.New()
	if err != nil {
		return err
	}

	mode := agent.PermissionDefault
	if bypass {
		mode = agent.PermissionBypass
	}

	a, err := agent.New(
		agent.WithRuntime(rt),
		agent.WithModel(model),
		agent.WithPermissionMode(mode),
		agent.WithServers(mcpcfg.Assemble(cfg)),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return agent.Run(ctx, a, func(ctx context.Context, a *agent.Agent) error {
		resp, err := a.Query(ctx, prompt)
		if err != nil {
			return err
		}
		fmt.Println(resp)
		return nil
	})
}
