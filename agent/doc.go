// Package agent wraps one session with the external conversational runtime. The agent hands the assembled MCP server registry to the runtime at session start and thereafter delegates all tool selection and invocation decisions to it; this package only manages the session lifecycle and folds the streamed response into text.
package agent
