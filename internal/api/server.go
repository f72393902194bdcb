package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	_ "github.com/limbo/habbit/docs"
	"github.com/limbo/habbit/internal/service"
	"github.com/limbo/habbit/pkg/entity"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultShutdownTimeout = 10 * time.Second

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	completionService service.CompletionServiceI
	skillsService     service.SkillsServiceI
	habitsService     service.HabitsServiceI
	characterService  service.CharacterServiceI
	health            service.HealthCheckerI
	jwtService        JWTServiceI

	authEnabled     bool
	defaultUserID   uuid.UUID
	clock           func() time.Time
	shutdownTimeout time.Duration
}

type ServicesList struct {
	UserService       service.UserServiceI
	CompletionService service.CompletionServiceI
	SkillsService     service.SkillsServiceI
	HabitsService     service.HabitsServiceI
	CharacterService  service.CharacterServiceI
	Health            service.HealthCheckerI
	// Optional while auth is disabled. Without it no tokens are issued
	JwtService JWTServiceI
}

type Option func(*Server)

// WithAuth switches bearer token authorization on. JwtService must be set
func WithAuth(enabled bool) Option {
	return func(s *Server) {
		s.authEnabled = enabled
	}
}

// WithDefaultUser sets the user every request runs as while auth is disabled
func WithDefaultUser(uid uuid.UUID) Option {
	return func(s *Server) {
		s.defaultUserID = uid
	}
}

// WithClock replaces the source of "today" for completion handlers
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	if servicesOptions == nil {
		log.Fatal("api server: services list is nil")
	}
	if servicesOptions.UserService == nil || servicesOptions.CompletionService == nil ||
		servicesOptions.SkillsService == nil || servicesOptions.HabitsService == nil ||
		servicesOptions.CharacterService == nil || servicesOptions.Health == nil {
		log.Fatal("api server: every service must be provided")
	}
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		completionService: servicesOptions.CompletionService,
		skillsService:     servicesOptions.SkillsService,
		habitsService:     servicesOptions.HabitsService,
		characterService:  servicesOptions.CharacterService,
		health:            servicesOptions.Health,
		jwtService:        servicesOptions.JwtService,
		clock:             time.Now,
		shutdownTimeout:   defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.authEnabled && s.jwtService == nil {
		log.Fatal("api server: auth is enabled without jwt service")
	}
	if !s.authEnabled && s.defaultUserID == uuid.Nil {
		log.Fatal("api server: default user is required while auth is disabled")
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", s.HealthCheck)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			if s.authEnabled {
				r.Use(s.AuthMiddleware)
			} else {
				r.Use(s.DefaultUserMiddleware)
			}
			r.Use(s.LoggerExtensionMiddleware)

			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/skills", s.GetSkills)
			r.Post("/skills", s.CreateSkill)
			r.Get("/skills/{id}", s.GetSkill)
			r.Put("/skills/{id}", s.UpdateSkill)
			r.Delete("/skills/{id}", s.DeleteSkill)

			r.Get("/habits", s.GetHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/completions", s.GetCompletions)
			r.Get("/habits/{id}", s.GetHabit)
			r.Put("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Get("/habits/{id}/completions", s.GetHabitCompletions)
			r.Post("/habits/{id}/complete", s.CompleteHabit)
			r.Delete("/habits/{id}/complete", s.UncompleteHabit)

			r.Get("/character", s.GetCharacter)
			r.Put("/character", s.UpdateCharacter)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then drains in-flight requests
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		slog.Info("api server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) today() string {
	return s.clock().UTC().Format(entity.DateLayout)
}
