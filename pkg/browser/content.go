package browser

import (
	"context"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// ContentTool returns the full serialized HTML of the current page.
type ContentTool struct {
	agent *BrowserAgentTool
}

// NewContentTool creates a new page content tool.
func NewContentTool(agent *BrowserAgentTool) *ContentTool {
	return &ContentTool{agent: agent}
}

// Name returns the tool name.
func (t *ContentTool) Name() string {
	return "browser_get_content"
}

// Description returns the tool description.
func (t *ContentTool) Description() string {
	return "Get the full HTML content of the current page. Useful for inspecting page structure and locating selectors."
}

// Schema returns the tool's JSON schema.
func (t *ContentTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(map[string]interface{}{}, nil)
}

// Execute retrieves the page HTML.
func (t *ContentTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	content, err := t.agent.GetPageContent()
	if err != nil {
		return "", nil, err
	}
	return content, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ContentTool) IsLoopBreaking() bool {
	return false
}
