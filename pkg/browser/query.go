package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// QueryTool finds elements matching a CSS selector and reports their
// tags, text and attributes.
type QueryTool struct {
	agent *BrowserAgentTool
}

// NewQueryTool creates a new element query tool.
func NewQueryTool(agent *BrowserAgentTool) *QueryTool {
	return &QueryTool{agent: agent}
}

// Name returns the tool name.
func (t *QueryTool) Name() string {
	return "browser_query_elements"
}

// Description returns the tool description.
func (t *QueryTool) Description() string {
	return "Find all elements matching a CSS selector and report each element's tag name, inner text, and attributes, in DOM order."
}

// Schema returns the tool's JSON schema.
func (t *QueryTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector to match (e.g., 'a', '#main-content', '.product-title')",
			},
		},
		[]string{"selector"},
	)
}

// QueryInput represents the parameters for an element query.
type QueryInput struct {
	XMLName  xml.Name `xml:"arguments"`
	Selector string   `xml:"selector"`
}

// Execute queries elements by selector.
func (t *QueryTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input QueryInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", nil, fmt.Errorf("selector is required")
	}

	result, err := t.agent.GetElementsBySelector(input.Selector)
	if err != nil {
		return "", nil, err
	}

	return result.String(), nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *QueryTool) IsLoopBreaking() bool {
	return false
}
