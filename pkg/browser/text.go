package browser

import (
	"context"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// TextTool returns the text content of the current page's body.
type TextTool struct {
	agent *BrowserAgentTool
}

// NewTextTool creates a new page text tool.
func NewTextTool(agent *BrowserAgentTool) *TextTool {
	return &TextTool{agent: agent}
}

// Name returns the tool name.
func (t *TextTool) Name() string {
	return "browser_get_text"
}

// Description returns the tool description.
func (t *TextTool) Description() string {
	return "Get the text content of the current page's body, without HTML markup."
}

// Schema returns the tool's JSON schema.
func (t *TextTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute retrieves the body text.
func (t *TextTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	text, err := t.agent.GetPageText()
	if err != nil {
		return "", nil, err
	}
	return text, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *TextTool) IsLoopBreaking() bool {
	return false
}
