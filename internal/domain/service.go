package domain

import "context"

// DashboardStats are the counters shown on the admin dashboard.
// swagger:model DashboardStats
type DashboardStats struct {
	Members           int `json:"members"`
	Events            int `json:"events"`
	BlogPosts         int `json:"blogPosts"`
	GalleryImages     int `json:"galleryImages"`
	FormSubmissions   int `json:"formSubmissions"`
	UpcomingEvents    int `json:"upcomingEvents"`
	CompletedEvents   int `json:"completedEvents"`
	UnreadSubmissions int `json:"unreadSubmissions"`
	Topics            int `json:"topics"`
}

// CatalogService owns the in-memory catalog: CRUD per entity kind with
// server-assigned ids and derived fields, write-through persistence, and the
// pure derived views the site renders. Mutations never fail on an unknown id;
// update and delete are silent no-ops in that case.
type CatalogService interface {
	// Events
	Events(ctx context.Context) []*Event
	EventByID(ctx context.Context, id string) (*Event, error)
	FilterEvents(ctx context.Context, f EventFilter) []*Event
	RelatedEvents(ctx context.Context, id string) []*Event
	AddEvent(ctx context.Context, e *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) error
	DeleteEvent(ctx context.Context, id string) error

	// Members
	Members(ctx context.Context) []*Member
	MemberByID(ctx context.Context, id string) (*Member, error)
	MemberBySlug(ctx context.Context, slug string) (*Member, error)
	FilterMembers(ctx context.Context, f MemberFilter) []*Member
	MemberStats(ctx context.Context) MemberStats
	AddMember(ctx context.Context, m *Member) (*Member, error)
	UpdateMember(ctx context.Context, id string, patch MemberPatch) error
	DeleteMember(ctx context.Context, id string) error

	// Blog
	BlogPosts(ctx context.Context) []*BlogPost
	BlogPostByID(ctx context.Context, id string) (*BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
	FilterBlogPosts(ctx context.Context, f BlogPostFilter) []*BlogPost
	BlogTags(ctx context.Context) []string
	RelatedPosts(ctx context.Context, id string) []*BlogPost
	AddBlogPost(ctx context.Context, b *BlogPost) (*BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, patch BlogPostPatch) error
	DeleteBlogPost(ctx context.Context, id string) error

	// Gallery
	Gallery(ctx context.Context) []*GalleryItem
	FilterGallery(ctx context.Context, f GalleryFilter) []*GalleryItem
	GalleryCategories(ctx context.Context) []string
	AddGalleryItem(ctx context.Context, g *GalleryItem) (*GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	// Form submissions (no delete; status is the only updatable field)
	Submissions(ctx context.Context) []*FormSubmission
	AddSubmission(ctx context.Context, s *FormSubmission) (*FormSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, id string, status SubmissionStatus) error

	// Admin dashboard
	Stats(ctx context.Context) DashboardStats

	// Subscribe registers a callback invoked with a fresh snapshot after
	// every successful mutation.
	Subscribe(fn func(*Catalog))
}
