// @title Hydration tracker API
// @version 1.0
// @description API for tracking water and beverage intake with daily, weekly and monthly statistics
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/limbo/hydration/internal/api"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/cleanup"
	"github.com/limbo/hydration/pkg/config"
	jwtservice "github.com/limbo/hydration/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setupLogger(cfg.GetStringOr("LOG_LEVEL", "info"))

	defaultLoc, err := service.LoadLocation(cfg.GetString("DEFAULT_TIMEZONE"), time.UTC)
	if err != nil {
		log.Fatal("invalid DEFAULT_TIMEZONE: " + err.Error())
	}

	pool := repository.NewPool(&repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	})
	defer cleanup.CleanUp()

	logsRepo := repository.NewBeverageLogsRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepoWithConn(pool)),
		HydrationService: service.NewHydrationService(logsRepo),
		ProfileService:   service.NewProfileService(profilesRepo),
		StatsService:     service.NewStatsService(logsRepo, profilesRepo),
		ReminderService:  service.NewReminderService(repository.NewRemindersRepoWithConn(pool)),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	},
		api.WithDefaultLocation(defaultLoc),
		api.WithRequestTimeout(cfg.GetDuration("REQUEST_TIMEOUT", 10*time.Second)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
