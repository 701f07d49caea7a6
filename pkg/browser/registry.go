package browser

import (
	"github.com/entrhq/webagent/pkg/agent/tools"
)

// RegisterTools returns the full set of browser tools bound to the given
// agent instance. All tools share the same underlying session; callers
// should invoke one tool at a time.
func RegisterTools(agent *BrowserAgentTool) []tools.Tool {
	return []tools.Tool{
		NewNavigateTool(agent),
		NewContentTool(agent),
		NewTextTool(agent),
		NewQueryTool(agent),
		NewClickTool(agent),
		NewFillTool(agent),
		NewExtractTool(agent),
	}
}
