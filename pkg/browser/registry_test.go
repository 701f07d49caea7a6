package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTools(t *testing.T) {
	agent := newTestAgent(t)
	registered := RegisterTools(agent)

	require.Len(t, registered, 7)

	names := make(map[string]bool)
	for _, tool := range registered {
		assert.NotEmpty(t, tool.Name())
		assert.NotEmpty(t, tool.Description())
		assert.NotNil(t, tool.Schema())
		assert.False(t, tool.IsLoopBreaking())

		assert.False(t, names[tool.Name()], "duplicate tool name %q", tool.Name())
		names[tool.Name()] = true
	}

	for _, want := range []string{
		"browser_navigate",
		"browser_get_content",
		"browser_get_text",
		"browser_query_elements",
		"browser_click",
		"browser_fill",
		"browser_extract_content",
	} {
		assert.True(t, names[want], "missing tool %q", want)
	}
}
