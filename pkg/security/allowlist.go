// Package security provides navigation access control for browser sessions.
package security

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// HostAllowlist restricts which hosts a browser session may navigate to,
// using glob patterns (e.g. "*.example.com"). Denied patterns take
// precedence over allowed ones; an empty allowed list permits every host
// not explicitly denied.
type HostAllowlist struct {
	allowed []glob.Glob
	denied  []glob.Glob
}

// NewHostAllowlist compiles the given host patterns. Patterns use glob
// syntax with '.' as a separator so "*.example.com" does not match
// "evil-example.com".
func NewHostAllowlist(allowed, denied []string) (*HostAllowlist, error) {
	list := &HostAllowlist{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid allowed host pattern '%s': %w", pattern, err)
		}
		list.allowed = append(list.allowed, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid denied host pattern '%s': %w", pattern, err)
		}
		list.denied = append(list.denied, g)
	}

	return list, nil
}

// Check returns nil if navigation to rawURL is permitted, or an error
// describing why it is blocked. Schemes without a host component
// (about:, data:) are always permitted; they never leave the browser.
func (l *HostAllowlist) Check(rawURL string) error {
	if len(l.allowed) == 0 && len(l.denied) == 0 {
		return nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("cannot parse URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	for _, pattern := range l.denied {
		if pattern.Match(host) {
			return fmt.Errorf("host %q is denied by the navigation policy", host)
		}
	}

	if len(l.allowed) == 0 {
		return nil
	}

	for _, pattern := range l.allowed {
		if pattern.Match(host) {
			return nil
		}
	}

	return fmt.Errorf("host %q is not in the allowed hosts list", host)
}
