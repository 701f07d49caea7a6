package browser

// Options configures a BrowserAgentTool instance.
type Options struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// ActionTimeout bounds the actionable wait on click/fill operations
	// (in milliseconds). Zero means DefaultActionTimeout.
	ActionTimeout float64

	// NavigationTimeout bounds page navigation (in milliseconds).
	// Zero means DefaultNavigationTimeout.
	NavigationTimeout float64

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// AllowedHosts optionally restricts navigation to hosts matching any
	// of these glob patterns. Empty means all hosts are allowed.
	AllowedHosts []string

	// DeniedHosts blocks navigation to matching hosts. Denied patterns
	// take precedence over allowed ones.
	DeniedHosts []string
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// ElementInfo describes a single element matched by a CSS selector query:
// its tag name (upper-cased, per DOM convention), trimmed inner text, and
// attribute name to value mapping.
type ElementInfo struct {
	Tag        string
	Text       string
	Attributes map[string]string
}

// Default values for browser operations
const (
	// DefaultActionTimeout is the actionable-wait bound for click and
	// fill, in milliseconds.
	DefaultActionTimeout = 5000.0

	// DefaultNavigationTimeout bounds page loads, in milliseconds.
	DefaultNavigationTimeout = 30000.0

	// DefaultMaxContentLength caps extracted readable content.
	DefaultMaxContentLength = 10000

	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)

// withDefaults fills zero-valued options with package defaults.
func (o Options) withDefaults() Options {
	if o.ActionTimeout == 0 {
		o.ActionTimeout = DefaultActionTimeout
	}
	if o.NavigationTimeout == 0 {
		o.NavigationTimeout = DefaultNavigationTimeout
	}
	if o.Viewport == nil {
		o.Viewport = &Viewport{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		}
	}
	return o
}
