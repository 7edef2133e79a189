// Package claude implements the agent runtime contract on top of the
// Anthropic Messages API using the official Anthropic SDK.
package claude

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/ramki271/Incident-management/agent"
)

var logger = xlog.NewPackageLogger("github.com/ramki271/Incident-management", "claude")

const TokenEnvVarName = "ANTHROPIC_API_KEY" //nolint:gosec

var (
	ErrMissingToken = errors.New("claude: missing API key, set it in the ANTHROPIC_API_KEY environment variable")
	ErrNotStarted   = errors.New("claude: session not started")
)

type Options struct {
	Token      string
	BaseURL    string
	HttpClient option.HTTPClient
}

type Option func(*Options)

// WithToken passes the Anthropic API token to the client. If not set, the
// token is read from the ANTHROPIC_API_KEY environment variable.
func WithToken(token string) Option {
	return func(opts *Options) {
		opts.Token = token
	}
}

// WithBaseURL overrides the Anthropic API base URL.
func WithBaseURL(baseURL string) Option {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

// WithHTTPClient allows setting a custom HTTP client.
func WithHTTPClient(client option.HTTPClient) Option {
	return func(opts *Options) {
		opts.HttpClient = client
	}
}

// Runtime is an agent.Runtime backed by the Anthropic Messages API.
// It keeps the conversation history for the lifetime of one session, so
// follow-up queries retain context. Spawning the stdio MCP servers is the
// hosted runtime's concern; the registry received at session start is
// surfaced to the model through the system prompt.
type Runtime struct {
	client *anthropic.Client

	mu      sync.Mutex
	session *agent.SessionOptions
	history []anthropic.MessageParam
}

var _ agent.Runtime = (*Runtime)(nil)

// New creates the runtime client.
func New(opts ...Option) (*Runtime, error) {
	options := &Options{
		Token:      os.Getenv(TokenEnvVarName),
		HttpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(options)
	}
	if len(options.Token) == 0 {
		return nil, ErrMissingToken
	}

	sdkOpts := []option.RequestOption{
		option.WithAPIKey(options.Token),
		option.WithMaxRetries(2),
	}
	if options.BaseURL != "" {
		sdkOpts = append(sdkOpts, option.WithBaseURL(options.BaseURL))
	}
	if options.HttpClient != nil {
		sdkOpts = append(sdkOpts, option.WithHTTPClient(options.HttpClient))
	}

	client := anthropic.NewClient(sdkOpts...)
	return &Runtime{client: &client}, nil
}

// Start implements agent.Runtime. The server registry arrives here, once,
// and is not touched by the caller afterwards.
func (r *Runtime) Start(ctx context.Context, opts *agent.SessionOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = opts
	r.history = nil
	logger.KV(xlog.DEBUG,
		"status", "session_started",
		"model", opts.Model,
		"servers", opts.Servers.Names())
	return nil
}

// Close implements agent.Runtime.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	r.history = nil
	return nil
}

// Query implements agent.Runtime. The response is streamed on the returned
// channel as it arrives from the API.
func (r *Runtime) Query(ctx context.Context, prompt string) (<-chan agent.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, ErrNotStarted
	}

	r.history = append(r.history, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(r.session.Model),
		Messages:  append([]anthropic.MessageParam{}, r.history...),
		MaxTokens: r.session.MaxTokens,
	}
	if sys := r.systemPrompt(); sys != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Type: "text",
				Text: sys,
			},
		}
	}

	ch := make(chan agent.Message)
	go r.stream(ctx, params, ch)
	return ch, nil
}

// systemPrompt combines the session instructions with the names of the
// configured tool servers.
func (r *Runtime) systemPrompt() string {
	var sb strings.Builder
	if r.session.SystemPrompt != "" {
		sb.WriteString(r.session.SystemPrompt)
	}
	if len(r.session.Servers) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("Available MCP tool servers: ")
		sb.WriteString(strings.Join(r.session.Servers.Names(), ", "))
	}
	return sb.String()
}

func (r *Runtime) stream(ctx context.Context, params anthropic.MessageNewParams, ch chan<- agent.Message) {
	defer close(ch)

	emit := func(m agent.Message) bool {
		select {
		case ch <- m:
			return true
		case <-ctx.Done():
			return false
		}
	}

	stream := r.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	var content strings.Builder
	var toolName, toolID string
	var toolInput strings.Builder

	for stream.Next() {
		event := stream.Current()

		switch evt := event.AsAny().(type) {
		case anthropic.ContentBlockStartEvent:
			switch block := evt.ContentBlock.AsAny().(type) {
			case anthropic.ToolUseBlock:
				toolName = block.Name
				toolID = block.ID
				toolInput.Reset()
			}
		case anthropic.ContentBlockDeltaEvent:
			switch delta := evt.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				content.WriteString(delta.Text)
				if !emit(agent.Message{Type: agent.MessageText, Text: delta.Text}) {
					return
				}
			case anthropic.InputJSONDelta:
				toolInput.WriteString(delta.PartialJSON)
			}
		case anthropic.ContentBlockStopEvent:
			if toolName != "" {
				msg := agent.Message{
					Type:      agent.MessageToolUse,
					ToolName:  toolName,
					ToolID:    toolID,
					ToolInput: []byte(toolInput.String()),
				}
				toolName, toolID = "", ""
				if !emit(msg) {
					return
				}
			}
		case anthropic.MessageDeltaEvent:
			logger.KV(xlog.DEBUG, "stop_reason", string(evt.Delta.StopReason))
		}
	}

	if err := stream.Err(); err != nil {
		emit(agent.Message{Type: agent.MessageError, Err: err.Error()})
		return
	}

	r.mu.Lock()
	if r.session != nil && content.Len() > 0 {
		r.history = append(r.history, anthropic.NewAssistantMessage(anthropic.NewTextBlock(content.String())))
	}
	r.mu.Unlock()
}
