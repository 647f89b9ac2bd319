package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/limbo/hydration/docs"
	"github.com/limbo/hydration/internal/service"
)

const (
	defaultRequestTimeout = 10 * time.Second
	shutdownTimeout       = 10 * time.Second
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	hydrationService service.HydrationServiceI
	profileService   service.ProfileServiceI
	statsService     service.StatsServiceI
	reminderService  service.ReminderServiceI
	jwtService       JWTServiceI

	defaultLocation *time.Location
	requestTimeout  time.Duration
}

type ServicesList struct {
	UserService      service.UserServiceI
	HydrationService service.HydrationServiceI
	ProfileService   service.ProfileServiceI
	StatsService     service.StatsServiceI
	ReminderService  service.ReminderServiceI
	JwtService       JWTServiceI
}

type Option func(*Server)

// WithDefaultLocation sets the timezone used when a request carries no tz parameter.
func WithDefaultLocation(loc *time.Location) Option {
	return func(s *Server) {
		if loc != nil {
			s.defaultLocation = loc
		}
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.requestTimeout = timeout
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		hydrationService: servicesOptions.HydrationService,
		profileService:   servicesOptions.ProfileService,
		statsService:     servicesOptions.StatsService,
		reminderService:  servicesOptions.ReminderService,
		jwtService:       servicesOptions.JwtService,
		defaultLocation:  time.UTC,
		requestTimeout:   defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Get("/beverages", s.ListBeverages)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)

			r.Post("/logs", s.AppendLog)
			r.Get("/logs", s.ListLogs)

			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.SaveProfile)
			r.Get("/profile/recommendation", s.RecommendGoal)

			r.Get("/stats", s.GetStatistics)
			r.Get("/progress", s.GetProgress)

			r.Get("/reminders", s.GetReminders)
			r.Put("/reminders", s.SaveReminders)
			r.Get("/reminders/schedule", s.GetReminderSchedule)
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(s.mx, "hydration-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
