package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"
)

// EventController serves the public event pages and the admin event CRUD.
type EventController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
}

func NewEventController(logger *slog.Logger, catalog domain.CatalogService) *EventController {
	return &EventController{Logger: logger, Catalog: catalog}
}

// ListEventsResponse is the data payload for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List events
// @Description Lists events filtered by search (title/description/location substring), type, status, and year. "all" or an absent parameter bypasses a filter; all filters are AND-combined.
// @Tags events
// @Produce json
// @Param search query string false "Case-insensitive substring"
// @Param type query string false "workshop|webinar|competition|celebration|presentation|all"
// @Param status query string false "upcoming|completed|cancelled|all"
// @Param year query string false "Four-digit year or all"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := c.Catalog.FilterEvents(r.Context(), domain.EventFilter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Year:   q.Get("year"),
	})
	page, meta := helpers.Page(filtered, helpers.ParsePagination(r))
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Events: page, Pagination: meta})
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	event, err := c.Catalog.EventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Related godoc
// @Summary Related events
// @Description Up to three other events sharing the type or organizer, in catalog order.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains related events"
// @Router /events/{eventID}/related [get]
func (c *EventController) Related(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Catalog.RelatedEvents(r.Context(), r.PathValue("eventID")))
}

// CreateEventRequest is the request body for POST /admin/events. The id is
// always server-assigned; a supplied one is ignored.
type CreateEventRequest struct {
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Date             string             `json:"date"`
	Time             string             `json:"time"`
	Location         string             `json:"location"`
	Type             domain.EventType   `json:"type"`
	Status           domain.EventStatus `json:"status"`
	Image            string             `json:"image"`
	RegistrationLink string             `json:"registrationLink"`
	Organizer        string             `json:"organizer"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// Create godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Catalog.AddEvent(r.Context(), &domain.Event{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		Time:             req.Time,
		Location:         req.Location,
		Type:             req.Type,
		Status:           req.Status,
		Image:            req.Image,
		RegistrationLink: req.RegistrationLink,
		Organizer:        req.Organizer,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// StatusResponse is the generic data payload for update and delete endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// Update godoc
// @Summary Update an event
// @Description Shallow-merges the supplied fields onto the event. Omitted fields are unchanged; an unknown id is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param patch body domain.EventPatch true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/events/{eventID} [patch]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	if err := c.Catalog.UpdateEvent(r.Context(), r.PathValue("eventID"), patch); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "updated"})
}

// Delete godoc
// @Summary Delete an event
// @Description Removes the event. Deleting an already-deleted id succeeds.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Catalog.DeleteEvent(r.Context(), r.PathValue("eventID")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
