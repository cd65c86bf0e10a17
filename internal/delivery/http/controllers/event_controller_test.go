package controllers

import (
	"context"
	"net/http"
	"testing"

	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventFixture() *domain.Catalog {
	return &domain.Catalog{
		Events: []*domain.Event{
			{ID: "1", Title: "AI Workshop", Date: "2024-03-15", Type: domain.EventWorkshop, Status: domain.EventCompleted, Organizer: "Technical Team"},
			{ID: "2", Title: "Robotics Competition", Date: "2025-04-20", Type: domain.EventCompetition, Status: domain.EventUpcoming, Organizer: "Technical Team"},
			{ID: "3", Title: "Design Webinar", Date: "2025-06-01", Type: domain.EventWebinar, Status: domain.EventUpcoming, Organizer: "Design Team"},
		},
	}
}

func TestEventList(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, eventFixture()))

	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"unfiltered", "/events", []string{"1", "2", "3"}},
		{"search", "/events?search=robotics", []string{"2"}},
		{"status filter", "/events?status=upcoming", []string{"2", "3"}},
		{"year filter", "/events?year=2024", []string{"1"}},
		{"all sentinel", "/events?type=all&status=all", []string{"1", "2", "3"}},
		{"combined", "/events?search=e&status=upcoming&type=webinar", []string{"3"}},
		{"pagination", "/events?page=2&page_size=2", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, c.List, http.MethodGet, tt.target, nil, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ListEventsResponse
			decodeData(t, env, &resp)
			ids := make([]string, 0, len(resp.Events))
			for _, e := range resp.Events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEventList_PaginationTotalCountsFiltered(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, eventFixture()))

	rec, env := doRequest(t, c.List, http.MethodGet, "/events?status=upcoming&page_size=1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListEventsResponse
	decodeData(t, env, &resp)
	assert.Len(t, resp.Events, 1)
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestEventGet(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, eventFixture()))

	rec, env := doRequest(t, c.Get, http.MethodGet, "/events/1", nil, map[string]string{"eventID": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var event domain.Event
	decodeData(t, env, &event)
	assert.Equal(t, "AI Workshop", event.Title)

	rec, env = doRequest(t, c.Get, http.MethodGet, "/events/liquid", nil, map[string]string{"eventID": "liquid"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, env.Error.Code)
}

func TestEventRelated(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, eventFixture()))

	rec, env := doRequest(t, c.Related, http.MethodGet, "/events/1/related", nil, map[string]string{"eventID": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var related []*domain.Event
	decodeData(t, env, &related)
	require.Len(t, related, 1)
	assert.Equal(t, "2", related[0].ID, "shared organizer")
}

func TestEventCreate(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, nil))

	rec, env := doRequest(t, c.Create, http.MethodPost, "/admin/events", CreateEventRequest{
		Title:  "Hack Night",
		Type:   domain.EventWorkshop,
		Status: domain.EventUpcoming,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var event domain.Event
	decodeData(t, env, &event)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Hack Night", event.Title)
	assert.NotEmpty(t, event.Date, "missing date defaults to today")
}

func TestEventCreate_RequiresTitle(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, nil))

	rec, env := doRequest(t, c.Create, http.MethodPost, "/admin/events", CreateEventRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
}

func TestEventCreate_RejectsUnknownFields(t *testing.T) {
	c := NewEventController(testLogger, newCatalog(t, nil))

	rec, env := doRequest(t, c.Create, http.MethodPost, "/admin/events",
		map[string]any{"title": "x", "surprise": true}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}

func TestEventUpdate(t *testing.T) {
	catalog := newCatalog(t, eventFixture())
	c := NewEventController(testLogger, catalog)

	location := "Main Hall"
	rec, env := doRequest(t, c.Update, http.MethodPatch, "/admin/events/1",
		domain.EventPatch{Location: &location}, map[string]string{"eventID": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	decodeData(t, env, &status)
	assert.Equal(t, "updated", status.Status)

	updated, err := catalog.EventByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Main Hall", updated.Location)
	assert.Equal(t, "AI Workshop", updated.Title, "unpatched fields survive")
}

func TestEventDelete(t *testing.T) {
	catalog := newCatalog(t, eventFixture())
	c := NewEventController(testLogger, catalog)

	rec, _ := doRequest(t, c.Delete, http.MethodDelete, "/admin/events/1", nil, map[string]string{"eventID": "1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, catalog.Events(context.Background()), 2)

	// Unknown id still answers 200.
	rec, _ = doRequest(t, c.Delete, http.MethodDelete, "/admin/events/1", nil, map[string]string{"eventID": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
