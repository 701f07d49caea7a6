package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// NavigateTool navigates the browser session to a URL.
type NavigateTool struct {
	agent *BrowserAgentTool
}

// NewNavigateTool creates a new navigate tool.
func NewNavigateTool(agent *BrowserAgentTool) *NavigateTool {
	return &NavigateTool{agent: agent}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "browser_navigate"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate the browser to a URL. Returns a message with the resulting page title on success, or a description of the navigation failure."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "URL to navigate to (must include protocol, e.g., https://example.com)",
			},
		},
		[]string{"url"},
	)
}

// NavigateInput represents the parameters for navigation.
type NavigateInput struct {
	XMLName xml.Name `xml:"arguments"`
	URL     string   `xml:"url"`
}

// Execute navigates to a URL.
func (t *NavigateTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input NavigateInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.URL == "" {
		return "", nil, fmt.Errorf("URL is required")
	}

	result, err := t.agent.GoToURL(input.URL)
	if err != nil {
		return "", nil, err
	}

	return result.String(), nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *NavigateTool) IsLoopBreaking() bool {
	return false
}
