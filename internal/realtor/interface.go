package realtor

import (
	"context"
	"realtors/internal/policy"
	"realtors/pkg/domain"
)

// Manager creates, changes and removes realtor profiles. A nil (or zero)
// caller is anonymous and is rejected by every operation.
//
//go:generate mockgen -package mockrealtor -source=interface.go -destination=mock/mockrealtor.go *
type Manager interface {
	Create(ctx context.Context, caller *domain.Identity, input domain.RealtorInput) (domain.RealtorID, error)
	Update(ctx context.Context, caller *domain.Identity, id domain.RealtorID, input domain.RealtorInput) error
	Delete(ctx context.Context, caller *domain.Identity, id domain.RealtorID) error
	// Authorize loads the profile and checks capability without changing anything.
	Authorize(ctx context.Context,
		caller *domain.Identity,
		id domain.RealtorID,
		capability policy.Capability) (*domain.Realtor, error)
}
