package directory

import (
	"context"
	"realtors/pkg/domain"
)

//go:generate mockgen -package mockdirectory -source=interface.go -destination=mock/mockdirectory.go *
type Listing interface {
	// List returns one page of the directory. sortBy and order are free-form
	// caller input; unsupported values fall back to defaults instead of failing.
	// caller may be nil for anonymous reads.
	List(ctx context.Context, caller *domain.Identity, sortBy, order string, page int) (*domain.RealtorPage, error)
	// Show returns a single profile joined with its owner.
	Show(ctx context.Context, id domain.RealtorID) (*domain.RealtorView, error)
}
