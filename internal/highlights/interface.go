package highlights

import (
	"context"
	"realtors/pkg/domain"
)

//go:generate mockgen -package mockhighlights -source=interface.go -destination=mock/mockhighlights.go *
type Highlights interface {
	// Get serves the view from the cache, computing and storing it on a miss.
	Get(ctx context.Context) (*domain.Highlights, error)
	// Refresh recomputes the view and stores it regardless of the cached value.
	Refresh(ctx context.Context) (*domain.Highlights, error)
}
