package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatElementReport(t *testing.T) {
	elements := []ElementInfo{
		{
			Tag:  "A",
			Text: "Home",
			Attributes: map[string]string{
				"href":  "/",
				"class": "nav-link",
			},
		},
		{
			Tag:        "A",
			Text:       "About",
			Attributes: map[string]string{"href": "/about"},
		},
	}

	report := formatElementReport("a", elements)

	assert.True(t, strings.HasPrefix(report, "Found 2 elements with selector 'a':\n"))
	assert.Contains(t, report, "--- Element 1 ---\nTag: A\nText: Home\n")
	assert.Contains(t, report, "--- Element 2 ---\nTag: A\nText: About\n")
	assert.Equal(t, 2, strings.Count(report, "--- Element "))

	// Attribute keys are sorted for stable output.
	assert.Contains(t, report, `Attributes: {class="nav-link", href="/"}`)
}

func TestFormatElementReport_IndicesAreOneBased(t *testing.T) {
	elements := make([]ElementInfo, 3)
	for i := range elements {
		elements[i] = ElementInfo{Tag: "LI", Attributes: map[string]string{}}
	}

	report := formatElementReport("li", elements)
	assert.Contains(t, report, "--- Element 1 ---")
	assert.Contains(t, report, "--- Element 3 ---")
	assert.NotContains(t, report, "--- Element 0 ---")
}

func TestFormatAttributes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  string
	}{
		{
			name:  "empty map",
			attrs: map[string]string{},
			want:  "{}",
		},
		{
			name:  "nil map",
			attrs: nil,
			want:  "{}",
		},
		{
			name:  "single attribute",
			attrs: map[string]string{"id": "main"},
			want:  `{id="main"}`,
		},
		{
			name:  "sorted keys",
			attrs: map[string]string{"type": "text", "name": "q", "id": "search"},
			want:  `{id="search", name="q", type="text"}`,
		},
		{
			name:  "value with quotes escaped",
			attrs: map[string]string{"data-label": `say "hi"`},
			want:  `{data-label="say \"hi\""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAttributes(tt.attrs))
		})
	}
}
