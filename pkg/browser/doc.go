// Package browser provides browser action tools for AI agents through
// Playwright.
//
// The package is built around BrowserAgentTool, a facade over exactly one
// browser process and one page. An agent drives it through six actions:
// navigate, get content, get text, query elements, click, and fill. Each
// action returns a human-readable string suitable for feeding back to an
// LLM; navigation, query, click and fill capture engine failures as
// Failure results instead of raising them, so an agent always receives a
// message it can reason about.
//
// # Lifecycle
//
// A BrowserAgentTool moves through three states:
//
//  1. Uninitialized: created by New; no browser resources held
//  2. Ready: Initialize launched the headless browser and opened a page
//  3. Closed: Cleanup released the page, context, browser and driver
//
// Cleanup is idempotent and safe to call on a never-initialized instance.
// A closed instance cannot be reused; create a fresh one. Callers should
// defer Cleanup immediately after a successful Initialize so the browser
// process never leaks.
//
// # Results
//
// Actions whose failures are part of normal agent flow return a *Result
// tagged Success, Empty or Failure. Empty marks a selector query with
// zero matches, which is a valid outcome rather than an error. The
// Result's String is the exact message an agent sees, so callers may
// dispatch on Kind without parsing text. Illegal-state misuse (action
// before Initialize, action after Cleanup) is reported through the
// separate error return.
//
// # Example
//
//	agent, err := browser.New(browser.Options{Headless: true})
//	if err != nil {
//		return err
//	}
//	if err := agent.Initialize(); err != nil {
//		return err
//	}
//	defer agent.Cleanup()
//
//	result, err := agent.GoToURL("https://example.com")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result) // Successfully navigated to https://example.com. ...
package browser
