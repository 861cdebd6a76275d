package directory

import (
	"math"
	"realtors/pkg/storage"
	"strings"
)

// PageSize is the fixed number of profiles per directory page.
const PageSize = 5

// MaxPage is the highest page whose offset still fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

const (
	// DefaultSortBy is used when the requested sort field is not supported.
	DefaultSortBy = "name"
	OrderAsc      = "asc"
	OrderDesc     = "desc"
)

// sortFields is the whitelist of sortable fields. Table qualified aliases are
// accepted for compatibility with older links.
var sortFields = map[string]storage.RealtorSortField{ //nolint: gochecknoglobals
	"name":           storage.SortName,
	"users.name":     storage.SortName,
	"email":          storage.SortEmail,
	"users.email":    storage.SortEmail,
	"phone":          storage.SortPhone,
	"realtors.phone": storage.SortPhone,
	"id":             storage.SortID,
	"realtors.id":    storage.SortID,
}

var sortNames = map[storage.RealtorSortField]string{ //nolint: gochecknoglobals
	storage.SortName:  "name",
	storage.SortEmail: "email",
	storage.SortPhone: "phone",
	storage.SortID:    "id",
}

// ResolveSort maps raw sort input onto a whitelisted field and direction.
// An unsupported field resets both field and direction to name ascending.
// An unsupported direction on a supported field becomes ascending.
func ResolveSort(sortBy, order string) (storage.RealtorSortField, string, bool) {
	field, ok := sortFields[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return storage.SortName, OrderAsc, false
	}

	if strings.EqualFold(strings.TrimSpace(order), OrderDesc) {
		return field, OrderDesc, true
	}

	return field, OrderAsc, false
}

// ClampPage returns page limited to [1, MaxPage].
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}

	return page
}

// Offset returns the number of profiles preceding page. Out of range pages are
// clamped first, so the result is never negative.
func Offset(page int) int {
	return (ClampPage(page) - 1) * PageSize
}

// LastPage returns the highest page that holds at least one profile, and 1 for
// an empty directory.
func LastPage(total int64) int {
	if total <= 0 {
		return 1
	}

	return int((total + PageSize - 1) / PageSize)
}
