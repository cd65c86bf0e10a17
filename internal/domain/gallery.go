package domain

// GalleryCategory classifies a gallery photo.
type GalleryCategory string

// Gallery categories.
const (
	GalleryWorkshop     GalleryCategory = "workshop"
	GalleryEvent        GalleryCategory = "event"
	GalleryPresentation GalleryCategory = "presentation"
	GallerySocial       GalleryCategory = "social"
	GalleryCompetition  GalleryCategory = "competition"
)

// GalleryItem is a single photo in the chapter gallery. Items are add/delete
// only; there is no update operation.
// swagger:model GalleryItem
type GalleryItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Image    string          `json:"image"`
	Category GalleryCategory `json:"category"`
	Date     string          `json:"date"`
}

// GalleryFilter selects gallery items by category; "all" bypasses.
type GalleryFilter struct {
	Category string
}
