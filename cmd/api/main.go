// @title Habbit API
// @description Habit tracker with XP, skill levels and a character
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

	"github.com/limbo/habbit/internal/api"
	"github.com/limbo/habbit/internal/repository"
	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/cleanup"
	"github.com/limbo/habbit/pkg/config"
	jwtservice "github.com/limbo/habbit/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
		SSLMode:  cfg.Postgres.SSLMode,
	}
	store := repository.NewStore(repository.NewPool(&dbCfg))

	services := &api.ServicesList{
		UserService:       service.NewUserService(store),
		CompletionService: service.NewCompletionService(store),
		SkillsService:     service.NewSkillsService(store),
		HabitsService:     service.NewHabitsService(store),
		CharacterService:  service.NewCharacterService(store),
		Health:            store,
	}
	if cfg.JWTSecret != "" {
		services.JwtService = jwtservice.New(cfg.JWTSecret, cfg.JWTTTL)
	}
	serv := api.New(services,
		api.WithAuth(cfg.AuthEnabled),
		api.WithDefaultUser(cfg.DefaultUserID),
		api.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	slog.Info("starting api", slog.Bool("auth_enabled", cfg.AuthEnabled))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
