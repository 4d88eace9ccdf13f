package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"restaurant/cmd"
	"restaurant/internal/adapters/out/postgres/counterrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustMigrate(db)

	app := cmd.NewCompositionRoot(configs, db)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if configs.RunJobs {
		jobManager := app.CreateJobManager(logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	logger.Info("Application started", "db_host", configs.DBHost, "run_jobs", configs.RunJobs)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Application stopping")
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		ActiveOrdersTTL: durationVariable("ACTIVE_ORDERS_TTL", queries.DefaultSnapshotTTL),
		ReportRowCap:    int64Variable("REPORT_ROW_CAP", queries.DefaultReportRowCap),
		RunJobs:         boolVariable("RUN_JOBS", true),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func int64Variable(key string, fallback int64) int64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func boolVariable(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&counterrepo.DailyCounterDTO{},
		&menurepo.MenuItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}
