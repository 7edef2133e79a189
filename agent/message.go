package agent

import (
	"encoding/json"
)

// MessageType enumerates the closed set of message shapes the runtime can
// emit while streaming a response.
type MessageType string

const (
	// MessageText is a fragment of the assistant's text response.
	MessageText MessageType = "text"
	// MessageToolUse reports that the runtime decided to invoke a tool.
	MessageToolUse MessageType = "tool_use"
	// MessageToolResult carries the payload a tool returned to the runtime.
	MessageToolResult MessageType = "tool_result"
	// MessageError terminates the stream with a runtime failure.
	MessageError MessageType = "error"
)

// Message is one streamed response fragment from the runtime.
// Only the fields for its Type are set.
type Message struct {
	Type MessageType

	// Text fragment, for MessageText.
	Text string

	// Tool invocation, for MessageToolUse.
	ToolName  string
	ToolID    string
	ToolInput json.RawMessage

	// Tool result payload, for MessageToolResult.
	ToolResult string

	// Error text, for MessageError.
	Err string
}
