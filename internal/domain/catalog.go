package domain

import (
	"context"
	"errors"
)

// Sentinel errors shared across services and delivery.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Catalog is the full aggregate of all chapter collections. It is loaded and
// persisted as one unit; collection-level invariants (unique ids, derived
// slugs) are enforced by the catalog service, not by storage.
// swagger:model Catalog
type Catalog struct {
	Events          []*Event          `json:"events"`
	Members         []*Member         `json:"members"`
	BlogPosts       []*BlogPost       `json:"blogPosts"`
	Gallery         []*GalleryItem    `json:"gallery"`
	FormSubmissions []*FormSubmission `json:"formSubmissions"`
}

// Clone returns a deep copy of the catalog. Snapshots handed to callers and
// subscribers are clones so the service-owned catalog is never aliased.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Events:          make([]*Event, len(c.Events)),
		Members:         make([]*Member, len(c.Members)),
		BlogPosts:       make([]*BlogPost, len(c.BlogPosts)),
		Gallery:         make([]*GalleryItem, len(c.Gallery)),
		FormSubmissions: make([]*FormSubmission, len(c.FormSubmissions)),
	}
	for i, e := range c.Events {
		ev := *e
		out.Events[i] = &ev
	}
	for i, m := range c.Members {
		mem := *m
		mem.Skills = append([]string(nil), m.Skills...)
		out.Members[i] = &mem
	}
	for i, p := range c.BlogPosts {
		post := *p
		post.Tags = append([]string(nil), p.Tags...)
		out.BlogPosts[i] = &post
	}
	for i, g := range c.Gallery {
		item := *g
		out.Gallery[i] = &item
	}
	for i, s := range c.FormSubmissions {
		sub := *s
		out.FormSubmissions[i] = &sub
	}
	return out
}

// CatalogStore persists the catalog as a single blob. Load never fails hard on
// a missing or corrupt blob; implementations fall back to the seed catalog.
type CatalogStore interface {
	Load(ctx context.Context) (*Catalog, error)
	Save(ctx context.Context, catalog *Catalog) error
}
