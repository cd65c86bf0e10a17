package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
	"chapterhub/internal/services"
)

// BlogController serves the public blog pages and the admin post CRUD.
type BlogController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewBlogController(logger *slog.Logger, catalog domain.CatalogService) *BlogController {
	return &BlogController{Logger: logger, Catalog: catalog}
}

// ListPostsResponse is the data payload for GET /blog.
type ListPostsResponse struct {
	Posts      []*domain.BlogPost     `json:"posts"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List blog posts
// @Description Lists posts filtered by search (title/excerpt/author substring) and tag; AND-combined, "all" bypasses.
// @Tags blog
// @Produce json
// @Param search query string false "Case-insensitive substring"
// @Param tag query string false "Tag or all"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains posts and pagination"
// @Router /blog [get]
func (c *BlogController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := c.Catalog.FilterBlogPosts(r.Context(), domain.BlogPostFilter{
		Search: q.Get("search"),
		Tag:    q.Get("tag"),
	})
	page, meta := helpers.Page(filtered, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListPostsResponse{Posts: page, Pagination: meta})
}

// Tags godoc
// @Summary List blog tags
// @Description The distinct tags across all posts, with the "all" pseudo-tag first, for filter controls.
// @Tags blog
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the tag list"
// @Router /blog/tags [get]
func (c *BlogController) Tags(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.BlogTags(r.Context()))
}

// PostResponse is the data payload for GET /blog/slug/{slug}: the post plus
// its reading-time estimate and related posts.
type PostResponse struct {
	Post        *domain.BlogPost   `json:"post"`
	ReadingTime int                `json:"readingTime"`
	Related     []*domain.BlogPost `json:"related"`
}

// GetBySlug godoc
// @Summary Get a blog post by slug
// @Description Returns the post with its reading-time estimate (200 words per minute, rounded up) and up to three related posts.
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} helpers.APIResponse "data contains post, readingTime, and related"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /blog/slug/{slug} [get]
func (c *BlogController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := c.Catalog.BlogPostBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, PostResponse{
		Post:        post,
		ReadingTime: services.ReadingTime(post.Content),
		Related:     c.Catalog.RelatedPosts(r.Context(), post.ID),
	})
}

// CreatePostRequest is the request body for POST /admin/blog. The id, slug,
// and (when empty) date are server-assigned.
type CreatePostRequest struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
}

// Validate implements Validator.
func (c CreatePostRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// Create godoc
// @Summary Publish a blog post
// @Description Publishes a post. The slug is derived from the title (lowercase, hyphens, [a-z0-9-] only); collisions get a numeric suffix.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body CreatePostRequest true "Post data"
// @Success 201 {object} helpers.APIResponse "data contains the created post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/blog [post]
func (c *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post, err := c.Catalog.AddBlogPost(r.Context(), &domain.BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Image:    req.Image,
		Tags:     req.Tags,
		Featured: req.Featured,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Update a blog post
// @Description Shallow-merges the supplied fields; unknown id is a no-op. The slug never changes after creation.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Param patch body domain.BlogPostPatch true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/blog/{postID} [patch]
func (c *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.BlogPostPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	if err := c.Catalog.UpdateBlogPost(r.Context(), r.PathValue("postID"), patch); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// Delete godoc
// @Summary Delete a blog post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/blog/{postID} [delete]
func (c *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Catalog.DeleteBlogPost(r.Context(), r.PathValue("postID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
