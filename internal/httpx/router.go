// internal/httpx/router.go
package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartielabs/heartie-backend/internal/handler"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Activity  *handler.ActivityHandler
	Calendar  *handler.CalendarHandler
	Campaign  *handler.CampaignHandler
	Goal      *handler.GoalHandler
	Template  *handler.TemplateHandler
	Analytics *handler.AnalyticsHandler
	Mw        *handler.Middleware
}

func NewRouter(log *slog.Logger, h Handlers) http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestID)
	mux.Use(Logger(log))
	mux.Use(Metrics)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/auth/register", h.Auth.Register)
	mux.Post("/auth/login", h.Auth.Login)

	mux.Group(func(r chi.Router) {
		r.Use(h.Mw.RequireAuth)

		r.Get("/activities", h.Activity.List)
		r.Post("/activities", h.Activity.Create)
		r.Post("/activities/reorder", h.Activity.Reorder)
		r.Get("/activities/{id}", h.Activity.Get)
		r.Put("/activities/{id}", h.Activity.Update)
		r.Delete("/activities/{id}", h.Activity.Delete)
		r.Post("/activities/{id}/move", h.Activity.Move)

		r.Get("/calendar/week", h.Calendar.Week)
		r.Get("/calendar/month", h.Calendar.Month)

		r.Get("/campaigns", h.Campaign.List)
		r.Post("/campaigns", h.Campaign.Create)
		r.Get("/campaigns/{id}", h.Campaign.Get)
		r.Put("/campaigns/{id}", h.Campaign.Update)
		r.Delete("/campaigns/{id}", h.Campaign.Delete)

		r.Get("/goals", h.Goal.List)
		r.Post("/goals", h.Goal.Create)
		r.Get("/goals/{id}", h.Goal.Get)
		r.Put("/goals/{id}", h.Goal.Update)
		r.Delete("/goals/{id}", h.Goal.Delete)

		r.Get("/templates", h.Template.List)
		r.Post("/templates", h.Template.Create)
		r.Delete("/templates/{id}", h.Template.Delete)
		r.Post("/templates/{id}/preview", h.Template.Preview)
		r.Post("/templates/{id}/use", h.Template.Use)

		r.Get("/analytics/summary", h.Analytics.Summary)
	})

	return mux
}
