package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// MemberController serves the public member directory and the admin member CRUD.
type MemberController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewMemberController(logger *slog.Logger, catalog domain.CatalogService) *MemberController {
	return &MemberController{Logger: logger, Catalog: catalog}
}

// ListMembersResponse is the data payload for GET /members.
type ListMembersResponse struct {
	Members    []*domain.Member       `json:"members"`
	Stats      domain.MemberStats     `json:"stats"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List members
// @Description Lists members filtered by search (name/role/department substring), team, year, and status; AND-combined, "all" bypasses. Includes directory stats.
// @Tags members
// @Produce json
// @Param search query string false "Case-insensitive substring"
// @Param team query string false "management|technical|marketing|design|all"
// @Param year query string false "Graduation year or all"
// @Param status query string false "active|alumni|inactive|all"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains members, stats, and pagination"
// @Router /members [get]
func (c *MemberController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := c.Catalog.FilterMembers(r.Context(), domain.MemberFilter{
		Search: q.Get("search"),
		Team:   q.Get("team"),
		Year:   q.Get("year"),
		Status: q.Get("status"),
	})
	page, meta := helpers.Page(filtered, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListMembersResponse{
		Members:    page,
		Stats:      c.Catalog.MemberStats(r.Context()),
		Pagination: meta,
	})
}

// GetBySlug godoc
// @Summary Get a member profile by slug
// @Tags members
// @Produce json
// @Param slug path string true "Member slug"
// @Success 200 {object} helpers.APIResponse "data contains the member"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /members/slug/{slug} [get]
func (c *MemberController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	member, err := c.Catalog.MemberBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "member not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, member)
}

// CreateMemberRequest is the request body for POST /admin/members. The id,
// slug, and (when empty) joinDate are server-assigned.
type CreateMemberRequest struct {
	Name       string              `json:"name"`
	Role       string              `json:"role"`
	Department string              `json:"department"`
	Year       string              `json:"year"`
	Team       domain.Team         `json:"team"`
	Status     domain.MemberStatus `json:"status"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	LinkedIn   string              `json:"linkedin"`
	GitHub     string              `json:"github"`
	Bio        string              `json:"bio"`
	Skills     []string            `json:"skills"`
	Image      string              `json:"image"`
	JoinDate   string              `json:"joinDate"`
}

// Validate implements Validator.
func (c CreateMemberRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// Create godoc
// @Summary Add a member
// @Description Adds a member. The slug is derived from the name; a colliding slug gets a numeric suffix.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body CreateMemberRequest true "Member data"
// @Success 201 {object} helpers.APIResponse "data contains the created member"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/members [post]
func (c *MemberController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	member, err := c.Catalog.AddMember(r.Context(), &domain.Member{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Year:       req.Year,
		Team:       req.Team,
		Status:     req.Status,
		Email:      req.Email,
		Phone:      req.Phone,
		LinkedIn:   req.LinkedIn,
		GitHub:     req.GitHub,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Image:      req.Image,
		JoinDate:   req.JoinDate,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, member)
}

// Update godoc
// @Summary Update a member
// @Description Shallow-merges the supplied fields; unknown id is a no-op. The slug never changes after creation.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Member ID"
// @Param patch body domain.MemberPatch true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/members/{memberID} [patch]
func (c *MemberController) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.MemberPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	if err := c.Catalog.UpdateMember(r.Context(), r.PathValue("memberID"), patch); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// Delete godoc
// @Summary Remove a member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param memberID path string true "Member ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/members/{memberID} [delete]
func (c *MemberController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Catalog.DeleteMember(r.Context(), r.PathValue("memberID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
