package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/webagent/pkg/agent/tools"
)

// ExtractTool returns a cleaned, readable rendering of the current page.
type ExtractTool struct {
	agent *BrowserAgentTool
}

// NewExtractTool creates a new content extraction tool.
func NewExtractTool(agent *BrowserAgentTool) *ExtractTool {
	return &ExtractTool{agent: agent}
}

// Name returns the tool name.
func (t *ExtractTool) Name() string {
	return "browser_extract_content"
}

// Description returns the tool description.
func (t *ExtractTool) Description() string {
	return "Extract readable content from the current page with scripts, styles and markup noise removed. Output is length-capped for LLM consumption."
}

// Schema returns the tool's JSON schema.
func (t *ExtractTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"max_length": map[string]interface{}{
				"type":        "integer",
				"description": fmt.Sprintf("Maximum content length in characters. Default: %d", DefaultMaxContentLength),
			},
		},
		nil,
	)
}

// ExtractInput represents the parameters for content extraction.
type ExtractInput struct {
	XMLName   xml.Name `xml:"arguments"`
	MaxLength int      `xml:"max_length"`
}

// Execute extracts readable content from the page.
func (t *ExtractTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input ExtractInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	content, err := t.agent.ExtractContent(input.MaxLength)
	if err != nil {
		return "", nil, err
	}

	return content, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ExtractTool) IsLoopBreaking() bool {
	return false
}
