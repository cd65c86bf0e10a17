package controllers

import (
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// GalleryController serves the public gallery and the admin add/delete.
// Gallery items have no update operation.
type GalleryController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewGalleryController(logger *slog.Logger, catalog domain.CatalogService) *GalleryController {
	return &GalleryController{Logger: logger, Catalog: catalog}
}

// ListGalleryResponse is the data payload for GET /gallery.
type ListGalleryResponse struct {
	Items      []*domain.GalleryItem  `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List gallery photos
// @Tags gallery
// @Produce json
// @Param category query string false "workshop|event|presentation|social|competition|all"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Router /gallery [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	filtered := c.Catalog.FilterGallery(r.Context(), domain.GalleryFilter{
		Category: r.URL.Query().Get("category"),
	})
	page, meta := helpers.Page(filtered, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListGalleryResponse{Items: page, Pagination: meta})
}

// Categories godoc
// @Summary List gallery categories
// @Description The distinct categories in use, with the "all" pseudo-category first.
// @Tags gallery
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the category list"
// @Router /gallery/categories [get]
func (c *GalleryController) Categories(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.GalleryCategories(r.Context()))
}

// CreateGalleryItemRequest is the request body for POST /admin/gallery.
type CreateGalleryItemRequest struct {
	Title    string                 `json:"title"`
	Image    string                 `json:"image"`
	Category domain.GalleryCategory `json:"category"`
	Date     string                 `json:"date"`
}

// Validate implements Validator.
func (c CreateGalleryItemRequest) Validate() []string {
	var errs []string
	if c.Image == "" {
		errs = append(errs, "image is required")
	}
	return errs
}

// Create godoc
// @Summary Add a gallery photo
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body CreateGalleryItemRequest true "Photo data"
// @Success 201 {object} helpers.APIResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/gallery [post]
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGalleryItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Catalog.AddGalleryItem(r.Context(), &domain.GalleryItem{
		Title:    req.Title,
		Image:    req.Image,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// Delete godoc
// @Summary Remove a gallery photo
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Item ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/gallery/{itemID} [delete]
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Catalog.DeleteGalleryItem(r.Context(), r.PathValue("itemID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
