// cmd/server/main.go
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/heartielabs/heartie-backend/internal/config"
	"github.com/heartielabs/heartie-backend/internal/db"
	"github.com/heartielabs/heartie-backend/internal/handler"
	"github.com/heartielabs/heartie-backend/internal/httpx"
	"github.com/heartielabs/heartie-backend/internal/queue"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	conn, err := db.Connect(cfg)
	if err != nil {
		logger.Error("database unavailable", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	activityRepo := &repository.ActivityRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	goalRepo := &repository.GoalRepository{DB: conn}
	templateRepo := &repository.TemplateRepository{DB: conn}
	userRepo := &repository.UserRepository{DB: conn}

	q := queue.NewInMemoryQueue()

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	activityService := service.NewActivityService(activityRepo, campaignRepo, q, logger)
	queue.StartReminderSubscriber(q, activityService, nil)
	campaignService := &service.CampaignService{CampaignRepo: campaignRepo}
	goalService := &service.GoalService{GoalRepo: goalRepo}
	templateService := &service.TemplateService{
		TemplateRepo: templateRepo,
		UserRepo:     userRepo,
		Activities:   activityService,
	}
	analyticsService := &service.AnalyticsService{ActivityRepo: activityRepo}

	r := httpx.NewRouter(logger, httpx.Handlers{
		Auth:      &handler.AuthHandler{AuthService: authService},
		Activity:  &handler.ActivityHandler{Service: activityService},
		Calendar:  &handler.CalendarHandler{Service: activityService},
		Campaign:  &handler.CampaignHandler{Service: campaignService},
		Goal:      &handler.GoalHandler{Service: goalService},
		Template:  &handler.TemplateHandler{Service: templateService},
		Analytics: &handler.AnalyticsHandler{Service: analyticsService},
		Mw:        &handler.Middleware{Auth: authService},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
