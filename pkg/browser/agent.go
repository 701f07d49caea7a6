package browser

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/entrhq/webagent/pkg/logging"
	"github.com/entrhq/webagent/pkg/security"
)

// State tracks the lifecycle of a BrowserAgentTool.
type State int

const (
	// StateUninitialized is the state before Initialize is called.
	StateUninitialized State = iota

	// StateReady means the browser is launched and actions may be invoked.
	StateReady

	// StateClosed means Cleanup has run; the instance cannot be reused.
	StateClosed
)

var (
	// ErrNotInitialized is returned when an action is invoked before Initialize.
	ErrNotInitialized = errors.New("browser session not initialized: call Initialize first")

	// ErrClosed is returned when an action is invoked after Cleanup, or when
	// Initialize is called on a closed instance.
	ErrClosed = errors.New("browser session closed")

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	ErrAlreadyInitialized = errors.New("browser session already initialized")
)

// BrowserAgentTool is a single-session browser facade for AI agents. It owns
// exactly one browser process and one page, created by Initialize and released
// by Cleanup. Action methods return human-readable results suitable for
// feeding back to an LLM; engine failures on navigate, query, click and fill
// are captured as Failure results rather than raised.
//
// Callers must serialize action calls: one action in flight per instance.
type BrowserAgentTool struct {
	mu    sync.Mutex
	state State
	opts  Options

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	allowlist *security.HostAllowlist
	log       *logging.Logger
}

// New creates a BrowserAgentTool in the Uninitialized state. No browser
// resources are acquired until Initialize.
func New(opts Options) (*BrowserAgentTool, error) {
	opts = opts.withDefaults()

	allowlist, err := security.NewHostAllowlist(opts.AllowedHosts, opts.DeniedHosts)
	if err != nil {
		return nil, fmt.Errorf("invalid host patterns: %w", err)
	}

	// Fallback logger on error is usable; file logging is best effort.
	log, _ := logging.NewLogger("browser")

	return &BrowserAgentTool{
		state:     StateUninitialized,
		opts:      opts,
		allowlist: allowlist,
		log:       log,
	}, nil
}

// State returns the current lifecycle state.
func (b *BrowserAgentTool) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Initialize launches the headless browser and opens a single page.
// It must be called once before any action method. A closed instance
// cannot be re-initialized; create a fresh one instead.
func (b *BrowserAgentTool) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateReady:
		return ErrAlreadyInitialized
	case StateClosed:
		return ErrClosed
	}

	// Install and run the driver quietly so output doesn't interleave
	// with the host agent's stream.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &b.opts.Headless,
	}
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  b.opts.Viewport.Width,
			Height: b.opts.Viewport.Height,
		},
	}
	context, err := browser.NewContext(contextOpts)
	if err != nil {
		browser.Close()
		pw.Stop()
		return fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		pw.Stop()
		return fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(b.opts.NavigationTimeout)

	b.pw = pw
	b.browser = browser
	b.context = context
	b.page = page
	b.state = StateReady

	b.log.Infof("browser session initialized (headless=%v)", b.opts.Headless)
	return nil
}

// Cleanup releases the page, context, browser and driver in dependency
// order. It is safe to call multiple times and on a never-initialized
// instance; handles that were never acquired are skipped.
func (b *BrowserAgentTool) Cleanup() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateClosed {
		return nil
	}
	b.state = StateClosed

	if b.page != nil {
		_ = b.page.Close() // Ignore errors, continue cleanup
		b.page = nil
	}
	if b.context != nil {
		_ = b.context.Close()
		b.context = nil
	}
	if b.browser != nil {
		_ = b.browser.Close()
		b.browser = nil
	}
	if b.pw != nil {
		err := b.pw.Stop()
		b.pw = nil
		if err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
	}

	b.log.Infof("browser session closed")
	return nil
}

// ready returns the page handle, or an explicit illegal-state error when the
// session is not in the Ready state.
func (b *BrowserAgentTool) ready() (playwright.Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateUninitialized:
		return nil, ErrNotInitialized
	case StateClosed:
		return nil, ErrClosed
	}
	return b.page, nil
}

// GoToURL navigates the page to url. Engine failures (unreachable host,
// invalid URL, timeout) become Failure results; the returned error is
// non-nil only for illegal-state misuse.
func (b *BrowserAgentTool) GoToURL(url string) (*Result, error) {
	page, err := b.ready()
	if err != nil {
		return nil, err
	}

	if err := b.allowlist.Check(url); err != nil {
		b.log.Warnf("navigation blocked: %v", err)
		return failure(fmt.Sprintf("Failed to navigate to %s. Error: %v", url, err), err), nil
	}

	b.log.Infof("navigating to %s", url)
	gotoOpts := playwright.PageGotoOptions{
		Timeout: &b.opts.NavigationTimeout,
	}
	if _, err := page.Goto(url, gotoOpts); err != nil {
		b.log.Warnf("navigation to %s failed: %v", url, err)
		return failure(fmt.Sprintf("Failed to navigate to %s. Error: %v", url, err), err), nil
	}

	title, err := page.Title()
	if err != nil {
		return failure(fmt.Sprintf("Failed to navigate to %s. Error: %v", url, err), err), nil
	}

	b.log.Infof("navigated to %s (title %q)", url, title)
	return success(fmt.Sprintf("Successfully navigated to %s. The current page title is: '%s'", url, title)), nil
}

// GetPageContent returns the full serialized HTML of the current page.
// Engine errors propagate to the caller.
func (b *BrowserAgentTool) GetPageContent() (string, error) {
	page, err := b.ready()
	if err != nil {
		return "", err
	}

	content, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("failed to get page content: %w", err)
	}
	return content, nil
}

// GetPageText returns the text content of the document body.
// Engine errors propagate to the caller.
func (b *BrowserAgentTool) GetPageText() (string, error) {
	page, err := b.ready()
	if err != nil {
		return "", err
	}

	body, err := page.QuerySelector("body")
	if err != nil {
		return "", fmt.Errorf("body query failed: %w", err)
	}
	if body == nil {
		return "", fmt.Errorf("no body element found")
	}

	text, err := body.TextContent()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return text, nil
}

// GetElementsBySelector finds all elements matching the CSS selector and
// returns a formatted report of their tags, text and attributes, in DOM
// order. Zero matches is an Empty result, not a failure.
func (b *BrowserAgentTool) GetElementsBySelector(selector string) (*Result, error) {
	page, err := b.ready()
	if err != nil {
		return nil, err
	}

	elements, err := page.QuerySelectorAll(selector)
	if err != nil {
		return failure(fmt.Sprintf("An error occurred while getting elements: %v", err), err), nil
	}
	if len(elements) == 0 {
		return empty(fmt.Sprintf("No elements found with selector: '%s'", selector)), nil
	}

	infos := make([]ElementInfo, 0, len(elements))
	for _, element := range elements {
		info, err := describeElement(element)
		if err != nil {
			return failure(fmt.Sprintf("An error occurred while getting elements: %v", err), err), nil
		}
		infos = append(infos, info)
	}

	return success(formatElementReport(selector, infos)), nil
}

// ClickElement waits for the element matching selector to become actionable
// (bounded by the configured action timeout) and clicks it.
func (b *BrowserAgentTool) ClickElement(selector string) (*Result, error) {
	page, err := b.ready()
	if err != nil {
		return nil, err
	}

	b.log.Infof("clicking element %q", selector)
	clickOpts := playwright.PageClickOptions{
		Timeout: &b.opts.ActionTimeout,
	}
	if err := page.Click(selector, clickOpts); err != nil {
		b.log.Warnf("click on %q failed: %v", selector, err)
		return failure(fmt.Sprintf("Failed to click the element with selector '%s'. Error: %v", selector, err), err), nil
	}

	return success(fmt.Sprintf("Successfully clicked the element with selector '%s'.", selector)), nil
}

// FillForm waits for the input matching selector to become actionable
// (bounded by the configured action timeout) and sets its value.
func (b *BrowserAgentTool) FillForm(selector, value string) (*Result, error) {
	page, err := b.ready()
	if err != nil {
		return nil, err
	}

	b.log.Infof("filling element %q (%d characters)", selector, len(value))
	fillOpts := playwright.PageFillOptions{
		Timeout: &b.opts.ActionTimeout,
	}
	if err := page.Fill(selector, value, fillOpts); err != nil {
		b.log.Warnf("fill on %q failed: %v", selector, err)
		return failure(fmt.Sprintf("Failed to fill the element with selector '%s'. Error: %v", selector, err), err), nil
	}

	return success(fmt.Sprintf("Successfully filled the element with selector '%s'.", selector)), nil
}

// ExtractContent returns a cleaned rendering of the current page: scripts,
// styles and other noise stripped, capped at maxLength characters (zero
// means DefaultMaxContentLength). Engine errors propagate to the caller.
func (b *BrowserAgentTool) ExtractContent(maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultMaxContentLength
	}

	content, err := b.GetPageContent()
	if err != nil {
		return "", err
	}

	cleaned, err := cleanHTML(content, maxLength)
	if err != nil {
		return "", fmt.Errorf("failed to clean page content: %w", err)
	}

	var out string
	if cleaned.Title != "" {
		out = fmt.Sprintf("Title: %s\n\n", cleaned.Title)
	}
	out += cleaned.Text
	if cleaned.Truncated {
		out += fmt.Sprintf("\n\n[Content truncated at %d characters]", maxLength)
	}
	return out, nil
}
