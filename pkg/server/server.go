package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	handlers "github.com/isteps/burnout-risk/pkg/handlers/risk"
	burnoutmiddleware "github.com/isteps/burnout-risk/pkg/server/middleware"
	"github.com/isteps/burnout-risk/pkg/services/insights"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Insights insights.Service
	// Location is the calendar the from/to query params are read in.
	Location *time.Location
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func ConfigureRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	riskHandler := handlers.NewHandler(deps.Insights, deps.Location)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(burnoutmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/health", riskHandler.Health)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users/{user}", func(r chi.Router) {
			r.Post("/steps", riskHandler.IngestSteps)
			r.Delete("/steps", riskHandler.DeleteSteps)
			r.Get("/stats", riskHandler.GetStats)
			r.Get("/risk", riskHandler.GetRisk)
			r.Get("/weekly", riskHandler.GetWeekly)
			r.Get("/series", riskHandler.GetSeries)
			r.Get("/trend", riskHandler.GetTrend)
			r.Get("/activity", riskHandler.GetActivity)
		})
	})

	return router
}

func (w *WebAPI) Handler() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		w.logger.Info().Str("signal", sig.String()).Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
