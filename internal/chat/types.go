package chat

import "encoding/json"

// Turn is one prior line of the conversation, in the role/content
// shape the upstream assistant consumes.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the assistant's answer. ToolResult is whatever structured
// payload the upstream's tool call produced; the page hands it to the
// browser untouched.
type Reply struct {
	Reply      string          `json:"reply"`
	ToolResult json.RawMessage `json:"tool_result,omitempty"`
}
