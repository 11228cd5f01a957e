// Package contacts provides the terminal stand-ins for the platform
// permission prompt and contact picker.
package contacts

import (
	"context"
	"fmt"
	"sync"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// PolicyGate answers permission requests from the configured policy.
// Under the prompt policy the user is asked until they grant once.
type PolicyGate struct {
	policy domain.PermissionPolicy
	asker  ports.PermissionAsker

	mu      sync.Mutex
	granted map[domain.Permission]bool
}

// NewPolicyGate builds a gate. asker may be nil when the policy never prompts.
func NewPolicyGate(policy domain.PermissionPolicy, asker ports.PermissionAsker) *PolicyGate {
	if policy == "" {
		policy = domain.PolicyPrompt
	}
	return &PolicyGate{
		policy:  policy,
		asker:   asker,
		granted: make(map[domain.Permission]bool),
	}
}

// Request implements ports.PermissionGate.
func (g *PolicyGate) Request(ctx context.Context, permission domain.Permission) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	switch g.policy {
	case domain.PolicyGrant:
		return true, nil
	case domain.PolicyDeny:
		return false, nil
	case domain.PolicyPrompt:
	default:
		return false, fmt.Errorf("unknown permission policy %q", g.policy)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.granted[permission] {
		return true, nil
	}
	if g.asker == nil {
		return false, fmt.Errorf("no prompt available to ask for %s", permission)
	}
	ok, err := g.asker.AskPermission(permission, rationale(permission))
	if err != nil {
		return false, fmt.Errorf("ask %s permission: %w", permission, err)
	}
	if ok {
		g.granted[permission] = true
	}
	return ok, nil
}

func rationale(permission domain.Permission) string {
	switch permission {
	case domain.PermissionReadContacts:
		return "findphone needs to read your address book to load a number."
	default:
		return fmt.Sprintf("findphone needs the %s permission.", permission)
	}
}

var _ ports.PermissionGate = (*PolicyGate)(nil)
