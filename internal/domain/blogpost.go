package domain

// BlogPost represents a published article. Slug is derived from Title on
// create and is unique among posts.
// swagger:model BlogPost
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Slug     string   `json:"slug"`
	Featured bool     `json:"featured"`
}

// BlogPostPatch is a shallow-merge update for a blog post. Nil fields are
// unchanged. Slug is not patchable; it is fixed at create time.
type BlogPostPatch struct {
	Title    *string  `json:"title"`
	Excerpt  *string  `json:"excerpt"`
	Content  *string  `json:"content"`
	Author   *string  `json:"author"`
	Date     *string  `json:"date"`
	Image    *string  `json:"image"`
	Tags     []string `json:"tags"`
	Featured *bool    `json:"featured"`
}

// Apply merges the patch onto b, field by field.
func (p BlogPostPatch) Apply(b *BlogPost) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Excerpt != nil {
		b.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Image != nil {
		b.Image = *p.Image
	}
	if p.Tags != nil {
		b.Tags = append([]string(nil), p.Tags...)
	}
	if p.Featured != nil {
		b.Featured = *p.Featured
	}
}

// BlogPostFilter selects posts. Search matches title, excerpt, and author
// case-insensitively; Tag must appear in the post's tags. "all" bypasses.
type BlogPostFilter struct {
	Search string
	Tag    string
}
