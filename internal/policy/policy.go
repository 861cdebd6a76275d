// Package policy decides which callers may perform which actions on a realtor
// profile. Rules are registered per capability on a Gate; a capability with
// no rule is always denied.
package policy

import (
	"realtors/internal/config"
	"realtors/pkg/domain"
	"sync"
)

// Capability names a guarded action.
type Capability string

const (
	// UpdateRealtor guards profile edits.
	UpdateRealtor Capability = "update-realtor"
	// DeleteRealtor guards profile removal.
	DeleteRealtor Capability = "delete-realtor"
)

// Rule decides a single capability for a caller and the profile it targets.
type Rule func(caller domain.Identity, realtor domain.Realtor) bool

// Policy is the read side of a Gate.
type Policy interface {
	Allows(caller domain.Identity, capability Capability, realtor domain.Realtor) bool
}

// Ensure Gate implements Policy.
var _ Policy = (*Gate)(nil)

// Gate is a registry of capability rules. It is safe for concurrent use.
type Gate struct {
	mu    sync.RWMutex
	rules map[Capability]Rule
}

// NewGate returns a gate with no rules, which therefore denies everything.
func NewGate() *Gate {
	return &Gate{rules: make(map[Capability]Rule)}
}

// Define registers (or replaces) the rule for capability.
func (g *Gate) Define(capability Capability, rule Rule) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.rules[capability] = rule
}

// Allows evaluates the rule registered for capability.
func (g *Gate) Allows(caller domain.Identity, capability Capability, realtor domain.Realtor) bool {
	g.mu.RLock()
	rule, ok := g.rules[capability]
	g.mu.RUnlock()
	if !ok {
		return false
	}

	return rule(caller, realtor)
}

// Options lists which identity roles carry elevated and admin privileges.
type Options struct {
	ElevatedRoles []domain.Role
	AdminRoles    []domain.Role
}

// NewOptions maps the policy section of the config onto Options.
func NewOptions(cfg *config.Config) Options {
	toRoles := func(in []string) []domain.Role {
		out := make([]domain.Role, 0, len(in))
		for _, r := range in {
			out = append(out, domain.Role(r))
		}

		return out
	}

	return Options{
		ElevatedRoles: toRoles(cfg.Policy.ElevatedRoles),
		AdminRoles:    toRoles(cfg.Policy.AdminRoles),
	}
}

// NewDefault returns the directory's gate:
//
//	update-realtor: owner or elevated
//	delete-realtor: owner, elevated or admin
func NewDefault(opts Options) *Gate {
	isOwner := func(caller domain.Identity, realtor domain.Realtor) bool {
		return !caller.IsZero() && realtor.IsOwnedBy(caller.ID)
	}
	hasAny := func(caller domain.Identity, roles []domain.Role) bool {
		return !caller.IsZero() && caller.HasRole(roles...)
	}

	g := NewGate()
	g.Define(UpdateRealtor, func(caller domain.Identity, realtor domain.Realtor) bool {
		return isOwner(caller, realtor) || hasAny(caller, opts.ElevatedRoles)
	})
	g.Define(DeleteRealtor, func(caller domain.Identity, realtor domain.Realtor) bool {
		return isOwner(caller, realtor) ||
			hasAny(caller, opts.ElevatedRoles) ||
			hasAny(caller, opts.AdminRoles)
	})

	return g
}
