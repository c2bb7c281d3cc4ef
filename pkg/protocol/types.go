package protocol

import "encoding/json"

type ToolDefinition struct {
	Name        string          `json:"name"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Annotations map[string]bool `json:"annotations,omitempty"`
}

type CallResult struct {
	Tool   string      `json:"tool"`
	Result interface{} `json:"result,omitempty"`
	Error  *CallError  `json:"error,omitempty"`
}

type CallError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
