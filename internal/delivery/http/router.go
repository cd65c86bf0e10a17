package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"chapterhub/internal/delivery/http/controllers"
	"chapterhub/internal/delivery/http/middleware"
	"chapterhub/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Events      *controllers.EventController
	Members     *controllers.MemberController
	Blog        *controllers.BlogController
	Gallery     *controllers.GalleryController
	Submissions *controllers.SubmissionController
	Dashboard   *controllers.DashboardController
}

// NewRouter initializes the HTTP router with all application routes. Public
// read routes and the forms endpoint are open; everything under /admin is
// behind the gate.
func NewRouter(c Controllers, gate domain.AdminGate, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(gate, logger)

	// Public site
	mux.HandleFunc("GET /events", c.Events.List)
	mux.HandleFunc("GET /events/{eventID}", c.Events.Get)
	mux.HandleFunc("GET /events/{eventID}/related", c.Events.Related)
	mux.HandleFunc("GET /members", c.Members.List)
	mux.HandleFunc("GET /members/slug/{slug}", c.Members.GetBySlug)
	mux.HandleFunc("GET /blog", c.Blog.List)
	mux.HandleFunc("GET /blog/tags", c.Blog.Tags)
	mux.HandleFunc("GET /blog/slug/{slug}", c.Blog.GetBySlug)
	mux.HandleFunc("GET /gallery", c.Gallery.List)
	mux.HandleFunc("GET /gallery/categories", c.Gallery.Categories)
	mux.HandleFunc("POST /submissions", c.Submissions.Create)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", c.Auth.Logout)

	// Admin
	mux.HandleFunc("GET /admin/stats", admin(c.Dashboard.Stats))
	mux.HandleFunc("POST /admin/events", admin(c.Events.Create))
	mux.HandleFunc("PATCH /admin/events/{eventID}", admin(c.Events.Update))
	mux.HandleFunc("DELETE /admin/events/{eventID}", admin(c.Events.Delete))
	mux.HandleFunc("POST /admin/members", admin(c.Members.Create))
	mux.HandleFunc("PATCH /admin/members/{memberID}", admin(c.Members.Update))
	mux.HandleFunc("DELETE /admin/members/{memberID}", admin(c.Members.Delete))
	mux.HandleFunc("POST /admin/blog", admin(c.Blog.Create))
	mux.HandleFunc("PATCH /admin/blog/{postID}", admin(c.Blog.Update))
	mux.HandleFunc("DELETE /admin/blog/{postID}", admin(c.Blog.Delete))
	mux.HandleFunc("POST /admin/gallery", admin(c.Gallery.Create))
	mux.HandleFunc("DELETE /admin/gallery/{itemID}", admin(c.Gallery.Delete))
	mux.HandleFunc("GET /admin/submissions", admin(c.Submissions.List))
	mux.HandleFunc("PATCH /admin/submissions/{submissionID}", admin(c.Submissions.UpdateStatus))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
