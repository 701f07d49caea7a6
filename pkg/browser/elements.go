package browser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// attributesScript collects an element's attributes into a name→value map.
const attributesScript = `el => {
	const attrs = {};
	for (const attr of el.attributes) {
		attrs[attr.name] = attr.value;
	}
	return attrs;
}`

// describeElement introspects a matched element: upper-cased tag name,
// trimmed inner text, and the full attribute mapping.
func describeElement(element playwright.ElementHandle) (ElementInfo, error) {
	text, err := element.InnerText()
	if err != nil {
		return ElementInfo{}, fmt.Errorf("failed to read element text: %w", err)
	}

	tag, err := element.Evaluate("el => el.tagName")
	if err != nil {
		return ElementInfo{}, fmt.Errorf("failed to read element tag: %w", err)
	}

	rawAttrs, err := element.Evaluate(attributesScript)
	if err != nil {
		return ElementInfo{}, fmt.Errorf("failed to read element attributes: %w", err)
	}

	attrs := make(map[string]string)
	if m, ok := rawAttrs.(map[string]interface{}); ok {
		for name, value := range m {
			attrs[name] = fmt.Sprint(value)
		}
	}

	return ElementInfo{
		Tag:        fmt.Sprint(tag),
		Text:       strings.TrimSpace(text),
		Attributes: attrs,
	}, nil
}

// formatElementReport renders matched elements as a human-readable report:
// a count header, then one block per element in DOM order with 1-based
// indices.
func formatElementReport(selector string, elements []ElementInfo) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Found %d elements with selector '%s':\n", len(elements), selector)

	for i, element := range elements {
		fmt.Fprintf(&builder, "--- Element %d ---\n", i+1)
		fmt.Fprintf(&builder, "Tag: %s\n", element.Tag)
		fmt.Fprintf(&builder, "Text: %s\n", element.Text)
		fmt.Fprintf(&builder, "Attributes: %s\n\n", formatAttributes(element.Attributes))
	}

	return builder.String()
}

// formatAttributes renders an attribute map with sorted keys so reports
// are stable across runs.
func formatAttributes(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "{}"
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%q", name, attrs[name]))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}
