package policy_test

import (
	"realtors/internal/policy"
	"realtors/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDefaultGate(t *testing.T) {
	gate := policy.NewDefault(policy.Options{
		ElevatedRoles: []domain.Role{domain.RoleElevated},
		AdminRoles:    []domain.Role{domain.RoleAdmin},
	})

	ownerID := domain.UserID(uuid.New())
	realtor := domain.Realtor{ID: 1, UserID: ownerID, Phone: "555-123-4567"}

	owner := domain.Identity{ID: ownerID}
	stranger := domain.Identity{ID: domain.UserID(uuid.New())}
	elevated := domain.Identity{ID: domain.UserID(uuid.New()), Roles: []domain.Role{domain.RoleElevated}}
	admin := domain.Identity{ID: domain.UserID(uuid.New()), Roles: []domain.Role{domain.RoleAdmin}}
	anonymousWithRole := domain.Identity{Roles: []domain.Role{domain.RoleAdmin}}

	tests := []struct {
		name       string
		caller     domain.Identity
		capability policy.Capability
		want       bool
	}{
		{"owner updates", owner, policy.UpdateRealtor, true},
		{"owner deletes", owner, policy.DeleteRealtor, true},
		{"stranger cannot update", stranger, policy.UpdateRealtor, false},
		{"stranger cannot delete", stranger, policy.DeleteRealtor, false},
		{"elevated updates", elevated, policy.UpdateRealtor, true},
		{"elevated deletes", elevated, policy.DeleteRealtor, true},
		{"admin cannot update", admin, policy.UpdateRealtor, false},
		{"admin deletes", admin, policy.DeleteRealtor, true},
		{"anonymous never passes", anonymousWithRole, policy.DeleteRealtor, false},
		{"unknown capability denies", owner, policy.Capability("publish-realtor"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, gate.Allows(tt.caller, tt.capability, realtor))
		})
	}
}

func TestGate_Define(t *testing.T) {
	gate := policy.NewGate()
	caller := domain.Identity{ID: domain.UserID(uuid.New())}

	require.False(t, gate.Allows(caller, policy.UpdateRealtor, domain.Realtor{}))

	gate.Define(policy.UpdateRealtor, func(domain.Identity, domain.Realtor) bool { return true })
	require.True(t, gate.Allows(caller, policy.UpdateRealtor, domain.Realtor{}))

	gate.Define(policy.UpdateRealtor, func(domain.Identity, domain.Realtor) bool { return false })
	require.False(t, gate.Allows(caller, policy.UpdateRealtor, domain.Realtor{}))
}

func TestDefaultGate_CustomRoles(t *testing.T) {
	gate := policy.NewDefault(policy.Options{
		ElevatedRoles: []domain.Role{"moderator"},
		AdminRoles:    []domain.Role{"superuser"},
	})
	realtor := domain.Realtor{UserID: domain.UserID(uuid.New())}

	moderator := domain.Identity{ID: domain.UserID(uuid.New()), Roles: []domain.Role{"moderator"}}
	elevated := domain.Identity{ID: domain.UserID(uuid.New()), Roles: []domain.Role{domain.RoleElevated}}

	require.True(t, gate.Allows(moderator, policy.UpdateRealtor, realtor))
	require.False(t, gate.Allows(elevated, policy.UpdateRealtor, realtor))
}
