package browser

import (
	"context"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(t *testing.T) *BrowserAgentTool {
	t.Helper()
	agent, err := New(Options{})
	require.NoError(t, err)
	return agent
}

func TestNavigateTool_Name(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))
	assert.Equal(t, "browser_navigate", tool.Name())
}

func TestNavigateTool_Schema(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))
	schema := tool.Schema()

	assert.Contains(t, schema, "properties")
	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "url")

	required := schema["required"].([]string)
	assert.Contains(t, required, "url")
}

func TestNavigateTool_Execute_MissingURL(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))

	argsXML, err := xml.Marshal(NavigateInput{})
	require.NoError(t, err)

	_, _, err = tool.Execute(context.Background(), argsXML)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "URL is required")
}

func TestNavigateTool_Execute_Uninitialized(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))

	argsXML, err := xml.Marshal(NavigateInput{URL: "https://example.com"})
	require.NoError(t, err)

	_, _, err = tool.Execute(context.Background(), argsXML)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestNavigateTool_Execute_InvalidXML(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))

	_, _, err := tool.Execute(context.Background(), []byte("<arguments><url>unclosed"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameters")
}

func TestNavigateTool_IsLoopBreaking(t *testing.T) {
	tool := NewNavigateTool(newTestAgent(t))
	assert.False(t, tool.IsLoopBreaking())
}
