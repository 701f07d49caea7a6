package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// ClickTool clicks an element in the browser session.
type ClickTool struct {
	agent *BrowserAgentTool
}

// NewClickTool creates a new click tool.
func NewClickTool(agent *BrowserAgentTool) *ClickTool {
	return &ClickTool{agent: agent}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "browser_click"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click an element identified by a CSS selector. Waits for the element to become actionable before clicking, bounded by the session's action timeout."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the element to click (e.g., 'button.submit', '#login-btn')",
			},
		},
		[]string{"selector"},
	)
}

// ClickInput represents the parameters for clicking.
type ClickInput struct {
	XMLName  xml.Name `xml:"arguments"`
	Selector string   `xml:"selector"`
}

// Execute clicks the element.
func (t *ClickTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input ClickInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", nil, fmt.Errorf("selector is required")
	}

	result, err := t.agent.ClickElement(input.Selector)
	if err != nil {
		return "", nil, err
	}

	return result.String(), nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ClickTool) IsLoopBreaking() bool {
	return false
}
