// cmd/seeder/main.go
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartielabs/heartie-backend/internal/config"
	"github.com/heartielabs/heartie-backend/internal/db"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id SERIAL PRIMARY KEY,
        email TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        business_name TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS activities (
        id SERIAL PRIMARY KEY,
        user_id INT NOT NULL,
        date DATE NOT NULL,
        position INT NOT NULL DEFAULT 0,
        title TEXT NOT NULL,
        content TEXT NOT NULL DEFAULT '',
        funnel_stage TEXT NOT NULL,
        channel TEXT NOT NULL,
        activity_type TEXT NOT NULL DEFAULT '',
        content_pillar TEXT NOT NULL DEFAULT '',
        status TEXT NOT NULL DEFAULT 'idea',
        goal_id INT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ
    )`,
	`CREATE INDEX IF NOT EXISTS idx_activities_user_date ON activities (user_id, date, position)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
        id SERIAL PRIMARY KEY,
        user_id INT NOT NULL,
        name TEXT NOT NULL,
        start_date DATE NOT NULL,
        end_date DATE NOT NULL,
        color TEXT NOT NULL DEFAULT '#7c9885',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ
    )`,
	`CREATE TABLE IF NOT EXISTS goals (
        id SERIAL PRIMARY KEY,
        user_id INT NOT NULL,
        horizon TEXT NOT NULL,
        period TEXT NOT NULL,
        title TEXT NOT NULL,
        description TEXT NOT NULL DEFAULT '',
        target INT NOT NULL DEFAULT 0,
        current INT NOT NULL DEFAULT 0,
        status TEXT NOT NULL DEFAULT 'active',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ
    )`,
	`CREATE TABLE IF NOT EXISTS templates (
        id SERIAL PRIMARY KEY,
        user_id INT NOT NULL DEFAULT 0,
        name TEXT NOT NULL,
        funnel_stage TEXT NOT NULL,
        channel TEXT NOT NULL,
        body TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// Built-in template library (user_id 0).
var builtinTemplates = []model.Template{
	{Name: "Founder introduction", FunnelStage: model.StageAwareness, Channel: "linkedin",
		Body: "Hi, I'm the founder of {business_name}. Here's why we started..."},
	{Name: "Customer spotlight", FunnelStage: model.StageConsideration, Channel: "instagram",
		Body: "Meet {customer_name}, who used {business_name} to {result}."},
	{Name: "Limited-time offer", FunnelStage: model.StageConversion, Channel: "email",
		Body: "For this week only, {business_name} is offering {offer}. Ends {deadline}!"},
	{Name: "Thank-you note", FunnelStage: model.StageRetention, Channel: "email",
		Body: "Thank you for being part of the {business_name} journey. {personal_note}"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}
	cfg := config.Load()

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			log.Fatalf("failed to apply schema: %v", err)
		}
	}
	fmt.Println("Schema applied")

	userRepo := &repository.UserRepository{DB: conn}
	activityRepo := &repository.ActivityRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	goalRepo := &repository.GoalRepository{DB: conn}
	templateRepo := &repository.TemplateRepository{DB: conn}

	var builtinCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM templates WHERE user_id = 0`).Scan(&builtinCount); err != nil {
		log.Fatal(err)
	}
	if builtinCount == 0 {
		for _, t := range builtinTemplates {
			tpl := t
			if err := templateRepo.Create(&tpl); err != nil {
				log.Fatalf("failed to seed template %q: %v", t.Name, err)
			}
		}
		fmt.Printf("Seeded: %d built-in templates\n", len(builtinTemplates))
	}

	if _, err := userRepo.GetByEmail("demo@heartie.app"); err == nil {
		fmt.Println("Demo user already present, skipping demo data")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("heartie-demo"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	demo := &model.User{
		Email:        "demo@heartie.app",
		PasswordHash: string(hash),
		BusinessName: "Heartie Demo Studio",
	}
	if err := userRepo.Create(demo); err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}

	for _, a := range schedule.SeedActivities(demo.ID) {
		if err := activityRepo.Create(&a); err != nil {
			log.Fatalf("failed to seed activity %q: %v", a.Title, err)
		}
	}
	for _, c := range schedule.SeedCampaigns(demo.ID) {
		if err := campaignRepo.Create(&c); err != nil {
			log.Fatalf("failed to seed campaign %q: %v", c.Name, err)
		}
	}

	goals := []model.Goal{
		{UserID: demo.ID, Horizon: model.GoalHorizonAnnual, Period: "2026", Title: "Grow the mailing list to 5000", Target: 5000, Current: 1200},
		{UserID: demo.ID, Horizon: model.GoalHorizonQuarterly, Period: "2026-Q1", Title: "Publish 24 pieces of content", Target: 24, Current: 6},
		{UserID: demo.ID, Horizon: model.GoalHorizonWeekly, Period: "2026-W01", Title: "Post 3 times on LinkedIn", Target: 3},
	}
	for _, g := range goals {
		goal := g
		if err := goalRepo.Create(&goal); err != nil {
			log.Fatalf("failed to seed goal %q: %v", g.Title, err)
		}
	}

	fmt.Println("Database seeding completed successfully!")
}
