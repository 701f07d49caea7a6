package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// FillTool fills a form input in the browser session.
type FillTool struct {
	agent *BrowserAgentTool
}

// NewFillTool creates a new fill tool.
func NewFillTool(agent *BrowserAgentTool) *FillTool {
	return &FillTool{agent: agent}
}

// Name returns the tool name.
func (t *FillTool) Name() string {
	return "browser_fill"
}

// Description returns the tool description.
func (t *FillTool) Description() string {
	return "Fill a form input identified by a CSS selector with a value. Waits for the element to become actionable, bounded by the session's action timeout."
}

// Schema returns the tool's JSON schema.
func (t *FillTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{
				"type":        "string",
				"description": "CSS selector for the input field (e.g., 'input[name=\"q\"]', '#email')",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "Text value to enter into the field. An empty value clears the field.",
			},
		},
		[]string{"selector"},
	)
}

// FillInput represents the parameters for filling a form field.
type FillInput struct {
	XMLName  xml.Name `xml:"arguments"`
	Selector string   `xml:"selector"`
	Value    string   `xml:"value"`
}

// Execute fills the form input.
func (t *FillTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input FillInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Selector == "" {
		return "", nil, fmt.Errorf("selector is required")
	}
	// Note: value can be empty (clears the field)

	result, err := t.agent.FillForm(input.Selector, input.Value)
	if err != nil {
		return "", nil, err
	}

	return result.String(), nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *FillTool) IsLoopBreaking() bool {
	return false
}
