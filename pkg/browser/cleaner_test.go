package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHTML_StripsNoise(t *testing.T) {
	raw := `<html>
<head>
<title>Docs</title>
<style>body { color: red; }</style>
<script>alert("nope")</script>
</head>
<body>
<nav>Menu</nav>
<article>
<h1>Welcome</h1>
<p>First paragraph.</p>
<script>trackPageView()</script>
<p>Second paragraph.</p>
</article>
<noscript>Enable JS</noscript>
</body>
</html>`

	cleaned, err := cleanHTML(raw, 10000)
	require.NoError(t, err)

	assert.Equal(t, "Docs", cleaned.Title)
	assert.False(t, cleaned.Truncated)

	assert.Contains(t, cleaned.Text, "Welcome")
	assert.Contains(t, cleaned.Text, "First paragraph.")
	assert.Contains(t, cleaned.Text, "Second paragraph.")

	assert.NotContains(t, cleaned.Text, "color: red")
	assert.NotContains(t, cleaned.Text, "alert")
	assert.NotContains(t, cleaned.Text, "trackPageView")
	assert.NotContains(t, cleaned.Text, "Enable JS")
}

func TestCleanHTML_BlockElementsBreakLines(t *testing.T) {
	raw := `<body><p>one</p><p>two</p><div>three</div></body>`

	cleaned, err := cleanHTML(raw, 10000)
	require.NoError(t, err)

	lines := strings.Split(cleaned.Text, "\n")
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestCleanHTML_Truncation(t *testing.T) {
	raw := "<body><p>" + strings.Repeat("x", 500) + "</p></body>"

	cleaned, err := cleanHTML(raw, 100)
	require.NoError(t, err)

	assert.True(t, cleaned.Truncated)
	assert.LessOrEqual(t, len(cleaned.Text), 100)
}

func TestCleanHTML_NoTitle(t *testing.T) {
	cleaned, err := cleanHTML("<body><p>hello</p></body>", 100)
	require.NoError(t, err)
	assert.Equal(t, "", cleaned.Title)
	assert.Equal(t, "hello", cleaned.Text)
}
