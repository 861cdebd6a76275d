package storage

import (
	"context"
	"realtors/pkg/domain"
)

// RealtorSortField enumerates the columns the directory can be ordered by.
// Only these values ever reach a query; free-form sort input is mapped onto
// them by the listing service.
type RealtorSortField int

const (
	// SortName orders by the owner's display name.
	SortName RealtorSortField = iota
	// SortEmail orders by the owner's email.
	SortEmail
	// SortPhone orders by the profile phone string.
	SortPhone
	// SortID orders by the profile id.
	SortID
	// SortCreatedAt orders by profile creation time.
	SortCreatedAt
)

// RealtorQuery selects one window of the joined directory view. Results are
// always ordered by SortBy in the requested direction, then by realtor id
// ascending, so windows are stable across calls.
type RealtorQuery struct {
	SortBy RealtorSortField
	Desc   bool
	Limit  uint
	Offset uint
}

// RealtorUpdates lists the profile fields that may be changed. Only non-nil
// fields are written.
type RealtorUpdates struct {
	Phone *string
}

// RealtorStorage defines persistence operations for realtor profiles.
// Lookups return nil (and no error) when the profile does not exist.
type RealtorStorage interface {
	// StoreRealtor inserts a profile and returns the stored row including
	// generated fields. A second profile for the same user fails with an error
	// matching ErrUniqueViolation.
	StoreRealtor(ctx context.Context, realtor domain.Realtor) (*domain.Realtor, error)
	// RealtorByID fetches a profile by id.
	RealtorByID(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error)
	// LockRealtorByID fetches a profile by id and locks the row until the
	// surrounding transaction ends.
	LockRealtorByID(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error)
	// RealtorByUserID fetches the profile owned by the given user using the
	// unique owner index.
	RealtorByUserID(ctx context.Context, userID domain.UserID) (*domain.Realtor, error)
	// UpdateRealtor applies the given updates and returns the updated row.
	UpdateRealtor(ctx context.Context, id domain.RealtorID, updates RealtorUpdates) (*domain.Realtor, error)
	// DeleteRealtor removes a profile and returns the deleted row.
	DeleteRealtor(ctx context.Context, id domain.RealtorID) (*domain.Realtor, error)
	// RealtorViewByID returns the joined projection of a single profile.
	RealtorViewByID(ctx context.Context, id domain.RealtorID) (*domain.RealtorView, error)
	// ListRealtors returns one window of the joined, sorted directory.
	ListRealtors(ctx context.Context, query RealtorQuery) ([]domain.RealtorView, error)
	// CountRealtors returns the number of profiles in the directory.
	CountRealtors(ctx context.Context) (int64, error)
}

// UserStorage maintains the local mirror of external identities.
type UserStorage interface {
	// UpsertUser inserts the identity or refreshes its name and email.
	UpsertUser(ctx context.Context, identity domain.Identity) error
	// UserByID fetches a mirrored identity, or nil.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// AssetStorage persists the property → image → thumbnail relation.
type AssetStorage interface {
	StoreProperty(ctx context.Context, property domain.Property) (*domain.Property, error)
	StoreImage(ctx context.Context, image domain.Image) (*domain.Image, error)
	// ImagesByProperty returns the images of a property ordered by id.
	ImagesByProperty(ctx context.Context, propertyID domain.PropertyID) ([]domain.Image, error)
	// StoreThumbnail attaches a thumbnail to an image. An image holds at most
	// one thumbnail; a second one fails with an error matching ErrUniqueViolation.
	StoreThumbnail(ctx context.Context, thumbnail domain.Thumbnail) (*domain.Thumbnail, error)
	ThumbnailByImage(ctx context.Context, imageID domain.ImageID) (*domain.Thumbnail, error)
}
