package browser

import (
	"context"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillTool_Name(t *testing.T) {
	tool := NewFillTool(newTestAgent(t))
	assert.Equal(t, "browser_fill", tool.Name())
}

func TestFillTool_Schema(t *testing.T) {
	tool := NewFillTool(newTestAgent(t))
	schema := tool.Schema()

	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "selector")
	assert.Contains(t, props, "value")

	// Value is not required: an empty value clears the field.
	required := schema["required"].([]string)
	assert.Equal(t, []string{"selector"}, required)
}

func TestFillTool_Execute_MissingSelector(t *testing.T) {
	tool := NewFillTool(newTestAgent(t))

	argsXML, err := xml.Marshal(FillInput{Value: "hello"})
	require.NoError(t, err)

	_, _, err = tool.Execute(context.Background(), argsXML)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "selector is required")
}

func TestFillTool_Execute_Uninitialized(t *testing.T) {
	tool := NewFillTool(newTestAgent(t))

	argsXML, err := xml.Marshal(FillInput{Selector: "#q", Value: "hello"})
	require.NoError(t, err)

	_, _, err = tool.Execute(context.Background(), argsXML)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestClickTool_Execute_MissingSelector(t *testing.T) {
	tool := NewClickTool(newTestAgent(t))

	argsXML, err := xml.Marshal(ClickInput{})
	require.NoError(t, err)

	_, _, err = tool.Execute(context.Background(), argsXML)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "selector is required")
}

func TestClickTool_Name(t *testing.T) {
	tool := NewClickTool(newTestAgent(t))
	assert.Equal(t, "browser_click", tool.Name())
}
