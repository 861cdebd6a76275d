package domain

import "time"

// PropertyID uniquely identifies a property listing.
type PropertyID int64

// ImageID uniquely identifies a property photo.
type ImageID int64

// ThumbnailID uniquely identifies a photo thumbnail.
type ThumbnailID int64

// Property is the minimal record images hang off.
type Property struct {
	ID        PropertyID `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Image is a property photo. Every image belongs to exactly one property.
type Image struct {
	ID         ImageID    `json:"id"`
	PropertyID PropertyID `json:"propertyId"`
	Path       string     `json:"path"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Thumbnail is the optional downscaled rendition of exactly one image.
type Thumbnail struct {
	ID        ThumbnailID `json:"id"`
	ImageID   ImageID     `json:"imageId"`
	Path      string      `json:"path"`
	CreatedAt time.Time   `json:"createdAt"`
}
