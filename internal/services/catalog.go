package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chapterhub/internal/domain"
)

// dateLayout is the calendar-day format used by every entity date field.
const dateLayout = "2006-01-02"

type catalogService struct {
	store domain.CatalogStore

	mu          sync.RWMutex
	catalog     *domain.Catalog
	subscribers []func(*domain.Catalog)
}

// NewCatalogService loads the catalog from the store (seed data when nothing
// is persisted yet) and returns the service owning it. All mutations write
// the whole catalog back through the store before returning.
func NewCatalogService(ctx context.Context, store domain.CatalogStore) (domain.CatalogService, error) {
	catalog, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &catalogService{store: store, catalog: catalog}, nil
}

func (s *catalogService) Subscribe(fn func(*domain.Catalog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// mutate applies fn to the catalog under the write lock, persists the result,
// and notifies subscribers with a snapshot. The in-memory catalog keeps the
// applied change even when persistence fails; the error reports the failed
// write-through.
func (s *catalogService) mutate(ctx context.Context, fn func(c *domain.Catalog)) error {
	s.mu.Lock()
	fn(s.catalog)
	snapshot := s.catalog.Clone()
	subscribers := append(([]func(*domain.Catalog))(nil), s.subscribers...)
	s.mu.Unlock()

	if err := s.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	for _, fn := range subscribers {
		fn(snapshot)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

func today() string {
	return time.Now().Format(dateLayout)
}

// memberSlug derives a member slug: lowercased name with whitespace runs
// collapsed to single hyphens.
func memberSlug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// postSlug derives a blog post slug: lowercased title, whitespace to hyphens,
// then everything outside [a-z0-9-] stripped.
func postSlug(title string) string {
	joined := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	var b strings.Builder
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// uniqueSlug appends a numeric suffix until the slug is not taken.
func uniqueSlug(base string, taken func(string) bool) string {
	slug := base
	for n := 2; taken(slug); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}

func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// matchesExact reports whether want selects got; "" and "all" select
// everything.
func matchesExact(want, got string) bool {
	return want == "" || want == "all" || want == got
}

func yearOf(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}

// ---- Events ----

func (s *catalogService) Events(_ context.Context) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone().Events
}

func (s *catalogService) EventByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.catalog.Events {
		if e.ID == id {
			ev := *e
			return &ev, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) FilterEvents(_ context.Context, f domain.EventFilter) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.Event{}
	for _, e := range s.catalog.Events {
		if !matchesSearch(f.Search, e.Title, e.Description, e.Location) {
			continue
		}
		if !matchesExact(f.Type, string(e.Type)) {
			continue
		}
		if !matchesExact(f.Status, string(e.Status)) {
			continue
		}
		if !matchesExact(f.Year, yearOf(e.Date)) {
			continue
		}
		ev := *e
		out = append(out, &ev)
	}
	return out
}

// RelatedEvents returns up to three other events sharing the type or the
// organizer, in catalog order. An unknown id yields an empty result.
func (s *catalogService) RelatedEvents(_ context.Context, id string) []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ref *domain.Event
	for _, e := range s.catalog.Events {
		if e.ID == id {
			ref = e
			break
		}
	}
	out := []*domain.Event{}
	if ref == nil {
		return out
	}
	for _, e := range s.catalog.Events {
		if len(out) == 3 {
			break
		}
		if e.ID == ref.ID {
			continue
		}
		if e.Type == ref.Type || e.Organizer == ref.Organizer {
			ev := *e
			out = append(out, &ev)
		}
	}
	return out
}

func (s *catalogService) AddEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	ev := *e
	ev.ID = newID()
	if ev.Date == "" {
		ev.Date = today()
	}
	err := s.mutate(ctx, func(c *domain.Catalog) {
		stored := ev
		c.Events = append(c.Events, &stored)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *catalogService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		for _, e := range c.Events {
			if e.ID == id {
				patch.Apply(e)
				return
			}
		}
	})
}

func (s *catalogService) DeleteEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		c.Events = deleteByID(c.Events, id, func(e *domain.Event) string { return e.ID })
	})
}

// ---- Members ----

func (s *catalogService) Members(_ context.Context) []*domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone().Members
}

func (s *catalogService) MemberByID(_ context.Context, id string) (*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.catalog.Members {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) MemberBySlug(_ context.Context, slug string) (*domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.catalog.Members {
		if m.Slug == slug {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) FilterMembers(_ context.Context, f domain.MemberFilter) []*domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.Member{}
	for _, m := range s.catalog.Members {
		if !matchesSearch(f.Search, m.Name, m.Role, m.Department) {
			continue
		}
		if !matchesExact(f.Team, string(m.Team)) {
			continue
		}
		if !matchesExact(f.Year, m.Year) {
			continue
		}
		if !matchesExact(f.Status, string(m.Status)) {
			continue
		}
		out = append(out, cloneMember(m))
	}
	return out
}

func (s *catalogService) MemberStats(_ context.Context) domain.MemberStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.MemberStats{Total: len(s.catalog.Members)}
	teams := map[domain.Team]struct{}{}
	for _, m := range s.catalog.Members {
		switch m.Status {
		case domain.MemberActive:
			stats.Active++
		case domain.MemberAlumni:
			stats.Alumni++
		}
		teams[m.Team] = struct{}{}
	}
	stats.Teams = len(teams)
	return stats
}

func (s *catalogService) AddMember(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	mem := *m
	mem.Skills = append([]string(nil), m.Skills...)
	mem.ID = newID()
	if mem.JoinDate == "" {
		mem.JoinDate = today()
	}
	err := s.mutate(ctx, func(c *domain.Catalog) {
		mem.Slug = uniqueSlug(memberSlug(mem.Name), func(slug string) bool {
			for _, other := range c.Members {
				if other.Slug == slug {
					return true
				}
			}
			return false
		})
		c.Members = append(c.Members, cloneMember(&mem))
	})
	if err != nil {
		return nil, err
	}
	return &mem, nil
}

func (s *catalogService) UpdateMember(ctx context.Context, id string, patch domain.MemberPatch) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		for _, m := range c.Members {
			if m.ID == id {
				patch.Apply(m)
				return
			}
		}
	})
}

func (s *catalogService) DeleteMember(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		c.Members = deleteByID(c.Members, id, func(m *domain.Member) string { return m.ID })
	})
}

// ---- Blog ----

func (s *catalogService) BlogPosts(_ context.Context) []*domain.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone().BlogPosts
}

func (s *catalogService) BlogPostByID(_ context.Context, id string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.catalog.BlogPosts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) BlogPostBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.catalog.BlogPosts {
		if p.Slug == slug {
			return clonePost(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *catalogService) FilterBlogPosts(_ context.Context, f domain.BlogPostFilter) []*domain.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.BlogPost{}
	for _, p := range s.catalog.BlogPosts {
		if !matchesSearch(f.Search, p.Title, p.Excerpt, p.Author) {
			continue
		}
		if f.Tag != "" && f.Tag != "all" && !containsTag(p.Tags, f.Tag) {
			continue
		}
		out = append(out, clonePost(p))
	}
	return out
}

// BlogTags enumerates the distinct tags across all posts, "all" first, in
// post-iteration order.
func (s *catalogService) BlogTags(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tags := []string{"all"}
	seen := map[string]struct{}{}
	for _, p := range s.catalog.BlogPosts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// RelatedPosts returns up to three other posts by the same author or sharing
// any tag, in catalog order.
func (s *catalogService) RelatedPosts(_ context.Context, id string) []*domain.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ref *domain.BlogPost
	for _, p := range s.catalog.BlogPosts {
		if p.ID == id {
			ref = p
			break
		}
	}
	out := []*domain.BlogPost{}
	if ref == nil {
		return out
	}
	for _, p := range s.catalog.BlogPosts {
		if len(out) == 3 {
			break
		}
		if p.ID == ref.ID {
			continue
		}
		if p.Author == ref.Author || sharesTag(p.Tags, ref.Tags) {
			out = append(out, clonePost(p))
		}
	}
	return out
}

func (s *catalogService) AddBlogPost(ctx context.Context, b *domain.BlogPost) (*domain.BlogPost, error) {
	post := *b
	post.Tags = append([]string(nil), b.Tags...)
	post.ID = newID()
	if post.Date == "" {
		post.Date = today()
	}
	err := s.mutate(ctx, func(c *domain.Catalog) {
		post.Slug = uniqueSlug(postSlug(post.Title), func(slug string) bool {
			for _, other := range c.BlogPosts {
				if other.Slug == slug {
					return true
				}
			}
			return false
		})
		c.BlogPosts = append(c.BlogPosts, clonePost(&post))
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *catalogService) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPostPatch) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		for _, p := range c.BlogPosts {
			if p.ID == id {
				patch.Apply(p)
				return
			}
		}
	})
}

func (s *catalogService) DeleteBlogPost(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		c.BlogPosts = deleteByID(c.BlogPosts, id, func(p *domain.BlogPost) string { return p.ID })
	})
}

// ---- Gallery ----

func (s *catalogService) Gallery(_ context.Context) []*domain.GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone().Gallery
}

func (s *catalogService) FilterGallery(_ context.Context, f domain.GalleryFilter) []*domain.GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.GalleryItem{}
	for _, g := range s.catalog.Gallery {
		if !matchesExact(f.Category, string(g.Category)) {
			continue
		}
		item := *g
		out = append(out, &item)
	}
	return out
}

// GalleryCategories enumerates the distinct categories, "all" first.
func (s *catalogService) GalleryCategories(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := []string{"all"}
	seen := map[domain.GalleryCategory]struct{}{}
	for _, g := range s.catalog.Gallery {
		if _, ok := seen[g.Category]; ok {
			continue
		}
		seen[g.Category] = struct{}{}
		categories = append(categories, string(g.Category))
	}
	return categories
}

func (s *catalogService) AddGalleryItem(ctx context.Context, g *domain.GalleryItem) (*domain.GalleryItem, error) {
	item := *g
	item.ID = newID()
	if item.Date == "" {
		item.Date = today()
	}
	err := s.mutate(ctx, func(c *domain.Catalog) {
		stored := item
		c.Gallery = append(c.Gallery, &stored)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *catalogService) DeleteGalleryItem(ctx context.Context, id string) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		c.Gallery = deleteByID(c.Gallery, id, func(g *domain.GalleryItem) string { return g.ID })
	})
}

// ---- Form submissions ----

func (s *catalogService) Submissions(_ context.Context) []*domain.FormSubmission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Clone().FormSubmissions
}

// AddSubmission stores a new form submission. Status always starts unread,
// whatever the caller supplied.
func (s *catalogService) AddSubmission(ctx context.Context, sub *domain.FormSubmission) (*domain.FormSubmission, error) {
	stored := *sub
	stored.ID = newID()
	stored.Status = domain.SubmissionUnread
	if stored.Date == "" {
		stored.Date = today()
	}
	err := s.mutate(ctx, func(c *domain.Catalog) {
		rec := stored
		c.FormSubmissions = append(c.FormSubmissions, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *catalogService) UpdateSubmissionStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	return s.mutate(ctx, func(c *domain.Catalog) {
		for _, sub := range c.FormSubmissions {
			if sub.ID == id {
				sub.Status = status
				return
			}
		}
	})
}

// ---- Dashboard ----

func (s *catalogService) Stats(_ context.Context) domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.DashboardStats{
		Members:         len(s.catalog.Members),
		Events:          len(s.catalog.Events),
		BlogPosts:       len(s.catalog.BlogPosts),
		GalleryImages:   len(s.catalog.Gallery),
		FormSubmissions: len(s.catalog.FormSubmissions),
	}
	for _, e := range s.catalog.Events {
		switch e.Status {
		case domain.EventUpcoming:
			stats.UpcomingEvents++
		case domain.EventCompleted:
			stats.CompletedEvents++
		}
	}
	for _, sub := range s.catalog.FormSubmissions {
		if sub.Status == domain.SubmissionUnread {
			stats.UnreadSubmissions++
		}
	}
	tags := map[string]struct{}{}
	for _, p := range s.catalog.BlogPosts {
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
	}
	stats.Topics = len(tags)
	return stats
}

// ---- helpers ----

func deleteByID[T any](items []*T, id string, idOf func(*T) string) []*T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

func cloneMember(m *domain.Member) *domain.Member {
	mem := *m
	mem.Skills = append([]string(nil), m.Skills...)
	return &mem
}

func clonePost(p *domain.BlogPost) *domain.BlogPost {
	post := *p
	post.Tags = append([]string(nil), p.Tags...)
	return &post
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func sharesTag(a, b []string) bool {
	for _, t := range a {
		if containsTag(b, t) {
			return true
		}
	}
	return false
}
