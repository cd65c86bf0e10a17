package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"chapterhub/internal/adapters/email"
	"chapterhub/internal/delivery/http/helpers"
	"chapterhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanMailer reports each send on a channel so tests can wait for the
// fire-and-forget notification goroutine.
type chanMailer struct {
	sent chan string
}

func (m *chanMailer) Send(to, subject, html, text string) error {
	m.sent <- subject
	return nil
}

func newSubmissionController(t *testing.T, catalog domain.CatalogService) (*SubmissionController, *chanMailer) {
	t.Helper()
	mailer := &chanMailer{sent: make(chan string, 1)}
	notifier := email.NewSubmissionNotifier(mailer, "chapter@ieee.org")
	return NewSubmissionController(testLogger, catalog, notifier), mailer
}

func TestSubmissionCreate_Contact(t *testing.T) {
	catalog := newCatalog(t, nil)
	c, mailer := newSubmissionController(t, catalog)

	rec, env := doRequest(t, c.Create, http.MethodPost, "/submissions", CreateSubmissionRequest{
		Type:    domain.SubmissionContact,
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Do you run beginner workshops?",
		// Join-only fields left empty on purpose.
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sub domain.FormSubmission
	decodeData(t, env, &sub)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, domain.SubmissionUnread, sub.Status, "new submissions always start unread")
	assert.Empty(t, sub.Department)

	select {
	case subject := <-mailer.sent:
		assert.Contains(t, subject, "contact submission from Visitor")
	case <-time.After(time.Second):
		t.Fatal("notification was never sent")
	}
}

func TestSubmissionCreate_Join(t *testing.T) {
	catalog := newCatalog(t, nil)
	c, _ := newSubmissionController(t, catalog)

	rec, env := doRequest(t, c.Create, http.MethodPost, "/submissions", CreateSubmissionRequest{
		Type:       domain.SubmissionJoin,
		Name:       "Student",
		Email:      "student@example.com",
		Department: "Computer Engineering",
		Year:       "2027",
		Reason:     "I want to build things.",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var sub domain.FormSubmission
	decodeData(t, env, &sub)
	assert.Equal(t, domain.SubmissionJoin, sub.Type)
	assert.Equal(t, "Computer Engineering", sub.Department)
	assert.Empty(t, sub.Subject)
}

func TestSubmissionCreate_Validation(t *testing.T) {
	catalog := newCatalog(t, nil)
	c, _ := newSubmissionController(t, catalog)

	tests := []struct {
		name string
		body CreateSubmissionRequest
	}{
		{"unknown type", CreateSubmissionRequest{Type: "spam", Name: "x", Email: "x@x"}},
		{"missing name", CreateSubmissionRequest{Type: domain.SubmissionContact, Email: "x@x"}},
		{"missing email", CreateSubmissionRequest{Type: domain.SubmissionJoin, Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, c.Create, http.MethodPost, "/submissions", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
		})
	}
	assert.Empty(t, catalog.Submissions(context.Background()), "rejected submissions are not stored")
}

func TestSubmissionList(t *testing.T) {
	catalog := newCatalog(t, &domain.Catalog{
		FormSubmissions: []*domain.FormSubmission{
			{ID: "1", Type: domain.SubmissionContact, Name: "A", Status: domain.SubmissionUnread},
			{ID: "2", Type: domain.SubmissionJoin, Name: "B", Status: domain.SubmissionReviewed},
		},
	})
	c, _ := newSubmissionController(t, catalog)

	rec, env := doRequest(t, c.List, http.MethodGet, "/admin/submissions", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListSubmissionsResponse
	decodeData(t, env, &resp)
	assert.Len(t, resp.Submissions, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestSubmissionUpdateStatus(t *testing.T) {
	catalog := newCatalog(t, &domain.Catalog{
		FormSubmissions: []*domain.FormSubmission{
			{ID: "1", Type: domain.SubmissionContact, Name: "A", Status: domain.SubmissionUnread},
		},
	})
	c, _ := newSubmissionController(t, catalog)

	rec, _ := doRequest(t, c.UpdateStatus, http.MethodPatch, "/admin/submissions/1",
		UpdateSubmissionRequest{Status: domain.SubmissionReviewed}, map[string]string{"submissionID": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	subs := catalog.Submissions(context.Background())
	require.Len(t, subs, 1)
	assert.Equal(t, domain.SubmissionReviewed, subs[0].Status)
}

func TestSubmissionUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	c, _ := newSubmissionController(t, newCatalog(t, nil))

	rec, env := doRequest(t, c.UpdateStatus, http.MethodPatch, "/admin/submissions/1",
		UpdateSubmissionRequest{Status: "archived"}, map[string]string{"submissionID": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}
