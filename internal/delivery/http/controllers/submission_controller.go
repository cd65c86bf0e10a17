package controllers

import (
	"log/slog"
	"net/http"

	"chapterhub/internal/adapters/email"
	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// SubmissionController accepts the public contact and join forms and serves
// the admin review endpoints. Submissions cannot be deleted; the review
// status is the only thing an admin can change.
type SubmissionController struct {
	Logger   *slog.Logger
	Catalog  domain.CatalogService
	Notifier *email.SubmissionNotifier
}

func NewSubmissionController(logger *slog.Logger, catalog domain.CatalogService, notifier *email.SubmissionNotifier) *SubmissionController {
	return &SubmissionController{Logger: logger, Catalog: catalog, Notifier: notifier}
}

// CreateSubmissionRequest is the request body for POST /submissions.
// Subject/Message are for contact forms, Department/Year/Reason for join
// requests.
type CreateSubmissionRequest struct {
	Type       domain.SubmissionType `json:"type"`
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Subject    string                `json:"subject"`
	Message    string                `json:"message"`
	Department string                `json:"department"`
	Year       string                `json:"year"`
	Reason     string                `json:"reason"`
}

// Validate implements Validator.
func (c CreateSubmissionRequest) Validate() []string {
	var errs []string
	if c.Type != domain.SubmissionContact && c.Type != domain.SubmissionJoin {
		errs = append(errs, "type must be contact or join")
	}
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// Create godoc
// @Summary Submit a contact or join form
// @Description Stores the submission with status unread and notifies the chapter inbox. The notification is fire-and-forget; a mail failure does not fail the submission.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body CreateSubmissionRequest true "Form data"
// @Success 201 {object} helpers.APIResponse "data contains the stored submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /submissions [post]
func (c *SubmissionController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubmissionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := c.Catalog.AddSubmission(r.Context(), &domain.FormSubmission{
		Type:       req.Type,
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
		Department: req.Department,
		Year:       req.Year,
		Reason:     req.Reason,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	go func(stored domain.FormSubmission) {
		if err := c.Notifier.Notify(&stored); err != nil {
			c.Logger.Warn("submission notification failed", "submission_id", stored.ID, "err", err)
		}
	}(*sub)
	helpers.WriteJSONSuccess(w, http.StatusCreated, sub)
}

// ListSubmissionsResponse is the data payload for GET /admin/submissions.
type ListSubmissionsResponse struct {
	Submissions []*domain.FormSubmission `json:"submissions"`
	Pagination  helpers.PaginationMeta   `json:"pagination"`
}

// List godoc
// @Summary List form submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains submissions and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/submissions [get]
func (c *SubmissionController) List(w http.ResponseWriter, r *http.Request) {
	page, meta := helpers.Page(c.Catalog.Submissions(r.Context()), helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListSubmissionsResponse{Submissions: page, Pagination: meta})
}

// UpdateSubmissionRequest is the request body for PATCH /admin/submissions/{submissionID}.
type UpdateSubmissionRequest struct {
	Status domain.SubmissionStatus `json:"status"`
}

// Validate implements Validator.
func (u UpdateSubmissionRequest) Validate() []string {
	var errs []string
	if u.Status != domain.SubmissionUnread && u.Status != domain.SubmissionReviewed {
		errs = append(errs, "status must be unread or reviewed")
	}
	return errs
}

// UpdateStatus godoc
// @Summary Update a submission's review status
// @Description Status is the only mutable field of a submission; an unknown id is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submissionID path string true "Submission ID"
// @Param body body UpdateSubmissionRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/submissions/{submissionID} [patch]
func (c *SubmissionController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateSubmissionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Catalog.UpdateSubmissionStatus(r.Context(), r.PathValue("submissionID"), req.Status); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}
