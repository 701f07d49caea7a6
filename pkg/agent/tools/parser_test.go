package tools

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCall_Basic(t *testing.T) {
	text := `I'll navigate there now.
<tool>
<server_name>local</server_name>
<tool_name>browser_navigate</tool_name>
<arguments>
  <url>https://example.com</url>
</arguments>
</tool>`

	call, remaining, err := ParseToolCall(text)
	require.NoError(t, err)

	assert.Equal(t, "browser_navigate", call.ToolName)
	assert.Equal(t, "local", call.ServerName)
	assert.Equal(t, "I'll navigate there now.", remaining)

	var input struct {
		XMLName xml.Name `xml:"arguments"`
		URL     string   `xml:"url"`
	}
	require.NoError(t, UnmarshalXMLWithFallback(call.GetArgumentsXML(), &input))
	assert.Equal(t, "https://example.com", input.URL)
}

func TestParseToolCall_DefaultsServerName(t *testing.T) {
	text := `<tool><tool_name>browser_click</tool_name><arguments><selector>#go</selector></arguments></tool>`

	call, _, err := ParseToolCall(text)
	require.NoError(t, err)
	assert.Equal(t, "local", call.ServerName)
}

func TestParseToolCall_NoToolCall(t *testing.T) {
	_, _, err := ParseToolCall("just some prose")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no tool call found")
}

func TestParseToolCall_MissingToolName(t *testing.T) {
	_, _, err := ParseToolCall("<tool><arguments></arguments></tool>")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tool_name is required")
}

func TestHasToolCall(t *testing.T) {
	assert.True(t, HasToolCall("<tool><tool_name>x</tool_name></tool>"))
	assert.False(t, HasToolCall("no tools here"))
}

func TestUnmarshalXMLWithFallback_BareAmpersand(t *testing.T) {
	// LLMs frequently emit unescaped & in URLs.
	raw := []byte("<arguments><url>https://example.com/?a=1&b=2</url></arguments>")

	var input struct {
		XMLName xml.Name `xml:"arguments"`
		URL     string   `xml:"url"`
	}
	require.NoError(t, UnmarshalXMLWithFallback(raw, &input))
	assert.Equal(t, "https://example.com/?a=1&b=2", input.URL)
}

func TestUnmarshalXMLWithFallback_PreservesEntities(t *testing.T) {
	raw := []byte("<arguments><value>fish &amp; chips &lt;fresh&gt;</value></arguments>")

	var input struct {
		XMLName xml.Name `xml:"arguments"`
		Value   string   `xml:"value"`
	}
	require.NoError(t, UnmarshalXMLWithFallback(raw, &input))
	assert.Equal(t, "fish & chips <fresh>", input.Value)
}

func TestBaseToolSchema(t *testing.T) {
	schema := BaseToolSchema(
		map[string]interface{}{
			"selector": map[string]interface{}{"type": "string"},
		},
		[]string{"selector"},
	)

	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema, "properties")
	assert.Equal(t, []string{"selector"}, schema["required"])
}

func TestBaseToolSchema_NoRequired(t *testing.T) {
	schema := BaseToolSchema(map[string]interface{}{}, nil)
	assert.NotContains(t, schema, "required")
}
