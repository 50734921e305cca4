package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"task-manager-backend/internal/auth"
	"task-manager-backend/internal/config"
	"task-manager-backend/internal/database"
	"task-manager-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	printTokens := flag.Bool("tokens", true, "print a bearer token for every seeded user")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)
	logrus.Info("Loading seed data from YAML files")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := LoadDir(cfg.SeedDataDir)
	if err != nil {
		logrus.Fatalf("Failed to read seed data: %v", err)
	}

	result, err := Apply(context.Background(), db, data, time.Now())
	if err != nil {
		logrus.Fatalf("Failed to load seed data: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"users_created": result.UsersCreated,
		"teams_created": result.TeamsCreated,
		"tasks_created": result.TasksCreated,
	}).Info("Seed data loaded")

	if !*printTokens {
		return
	}
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatalf("Failed to initialize auth: %v", err)
	}
	for _, email := range result.Order {
		token, err := authService.GenerateJWT(result.Users[email])
		if err != nil {
			logrus.Fatalf("Failed to sign token for %s: %v", email, err)
		}
		fmt.Printf("%-32s %s\n", email, token)
	}
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
