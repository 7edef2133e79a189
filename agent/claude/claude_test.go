package claude_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramki271/Incident-management/agent"
	"github.com/ramki271/Incident-management/agent/claude"
	"github.com/ramki271/Incident-management/mcpcfg"
)

var streamEvents = []string{
	`event: message_start
data: {"type": "message_start", "message": {"id": "msg_01", "type": "message", "role": "assistant", "content": [], "model": "claude-sonnet-4-20250514", "stop_reason": null, "stop_sequence": null, "usage": {"input_tokens": 25, "output_tokens": 1}}}

`,
	`event: content_block_start
data: {"type": "content_block_start", "index": 0, "content_block": {"type": "text", "text": ""}}

`,
	`event: ping
data: {"type": "ping"}

`,
	`event: content_block_delta
data: {"type": "content_block_delta", "index": 0, "delta": {"type": "text_delta", "text": "Checking "}}

`,
	`event: content_block_delta
data: {"type": "content_block_delta", "index": 0, "delta": {"type": "text_delta", "text": "monitors."}}

`,
	`event: content_block_stop
data: {"type": "content_block_stop", "index": 0}

`,
	`event: content_block_start
data: {"type": "content_block_start", "index": 1, "content_block": {"type": "tool_use", "id": "toolu_01", "name": "list_monitors", "input": {}}}

`,
	`event: content_block_delta
data: {"type": "content_block_delta", "index": 1, "delta": {"type": "input_json_delta", "partial_json": "{\"state\":"}}

`,
	`event: content_block_delta
data: {"type": "content_block_delta", "index": 1, "delta": {"type": "input_json_delta", "partial_json": "\"alert\"}"}}

`,
	`event: content_block_stop
data: {"type": "content_block_stop", "index": 1}

`,
	`event: message_delta
data: {"type": "message_delta", "delta": {"stop_reason": "tool_use", "stop_sequence": null}, "usage": {"output_tokens": 15}}

`,
	`event: message_stop
data: {"type": "message_stop"}

`,
}

func newStreamServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		for _, msg := range streamEvents {
			_, _ = w.Write([]byte(msg))
			w.(http.Flusher).Flush()
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_New_MissingToken(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	_, err := claude.New()
	assert.ErrorIs(t, err, claude.ErrMissingToken)

	_, err = claude.New(claude.WithToken("fakekey"))
	assert.NoError(t, err)
}

func Test_Query_NotStarted(t *testing.T) {
	rt, err := claude.New(claude.WithToken("fakekey"))
	require.NoError(t, err)

	_, err = rt.Query(context.Background(), "anything")
	assert.ErrorIs(t, err, claude.ErrNotStarted)
}

func Test_Stream(t *testing.T) {
	srv := newStreamServer(t)
	rt, err := claude.New(
		claude.WithToken("fakekey"),
		claude.WithBaseURL(srv.URL),
	)
	require.NoError(t, err)

	ctx := context.Background()
	err = rt.Start(ctx, &agent.SessionOptions{
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 1024,
		Servers: mcpcfg.Registry{
			"datadog": &mcpcfg.ServerConfig{Type: mcpcfg.TransportStdio, Command: "datadog-mcp-server"},
		},
	})
	require.NoError(t, err)
	defer rt.Close()

	ch, err := rt.Query(ctx, "Which monitors are alerting?")
	require.NoError(t, err)

	var msgs []agent.Message
	for msg := range ch {
		msgs = append(msgs, msg)
	}
	require.Len(t, msgs, 3)

	assert.Equal(t, agent.MessageText, msgs[0].Type)
	assert.Equal(t, "Checking ", msgs[0].Text)
	assert.Equal(t, agent.MessageText, msgs[1].Type)
	assert.Equal(t, "monitors.", msgs[1].Text)

	assert.Equal(t, agent.MessageToolUse, msgs[2].Type)
	assert.Equal(t, "list_monitors", msgs[2].ToolName)
	assert.Equal(t, "toolu_01", msgs[2].ToolID)
	assert.JSONEq(t, `{"state":"alert"}`, string(msgs[2].ToolInput))
}

func Test_Stream_ViaAgent(t *testing.T) {
	srv := newStreamServer(t)
	rt, err := claude.New(
		claude.WithToken("fakekey"),
		claude.WithBaseURL(srv.URL),
	)
	require.NoError(t, err)

	a, err := agent.New(agent.WithRuntime(rt))
	require.NoError(t, err)

	ctx := context.Background()
	var resp string
	err = agent.Run(ctx, a, func(ctx context.Context, a *agent.Agent) error {
		resp, err = a.Query(ctx, "Which monitors are alerting?")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "Checking monitors.", resp)
}

func Test_Stream_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad request"}}`, http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	rt, err := claude.New(
		claude.WithToken("fakekey"),
		claude.WithBaseURL(srv.URL),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, rt.Start(ctx, &agent.SessionOptions{Model: "claude-sonnet-4-20250514", MaxTokens: 1024}))
	defer rt.Close()

	ch, err := rt.Query(ctx, "anything")
	require.NoError(t, err)

	var last agent.Message
	for msg := range ch {
		last = msg
	}
	assert.Equal(t, agent.MessageError, last.Type)
	assert.NotEmpty(t, last.Err)
}
