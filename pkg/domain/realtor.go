package domain

import "time"

// RealtorID uniquely identifies a realtor profile. Profiles are numbered in
// insertion order, which also makes the id a stable tie-breaker for sorting.
type RealtorID int64

// Realtor is a realtor's stored contact record, linked to exactly one identity.
type Realtor struct {
	// ID is the unique identifier of the profile.
	ID RealtorID `json:"id"`
	// Phone is the contact number, stored verbatim as submitted.
	Phone string `json:"phone"`
	// UserID references the identity owning this profile.
	UserID UserID `json:"userId"`

	// CreatedAt is the time when the profile was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the profile was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the profile belongs to the given user.
func (r Realtor) IsOwnedBy(userID UserID) bool { return r.UserID == userID }

// RealtorInput is the complete set of caller-writable profile fields.
// Anything a caller submits beyond these fields is never persisted.
type RealtorInput struct {
	Phone string
}

// RealtorView is the directory projection of a profile joined with its owner.
// No identity fields other than name and email are exposed.
type RealtorView struct {
	ID        RealtorID `json:"id"`
	Phone     string    `json:"phone"`
	UserID    UserID    `json:"userId"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
}

// RealtorPage is one page of the sorted directory.
type RealtorPage struct {
	Items []RealtorView
	// Page is the 1-indexed page number that was served.
	Page int
	// PageSize is the fixed number of items per page.
	PageSize int
	// Total is the number of profiles in the whole directory.
	Total int64
	// LastPage is the highest page holding at least one item (1 for an empty directory).
	LastPage int
	// SortBy and Order are the effective sort parameters after whitelisting.
	SortBy string
	Order  string
	// CallerHasProfile is true when the authenticated caller already owns a profile.
	CallerHasProfile bool
}

// Highlights is the aggregate "home page highlights" view kept in the cache.
type Highlights struct {
	Realtors    []RealtorView `json:"realtors"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
