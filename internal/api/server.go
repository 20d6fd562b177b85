// Package api assembles and runs the HTTP report server.
package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rshade/carbon-mrv/internal/api/handlers"
	"github.com/rshade/carbon-mrv/internal/api/middleware"
	"github.com/rshade/carbon-mrv/internal/api/models"
	"github.com/rshade/carbon-mrv/internal/emissions"
	"github.com/rshade/carbon-mrv/internal/report"
)

// Server is the HTTP report server.
type Server struct {
	addr   string
	router *gin.Engine
	logger zerolog.Logger
}

// NewServer builds a server listening on addr. CORS policy is read from the
// environment.
func NewServer(addr string, logger zerolog.Logger) (*Server, error) {
	corsCfg, err := middleware.ParseCORSConfig(logger)
	if err != nil {
		return nil, err
	}
	return &Server{
		addr:   addr,
		router: NewRouter(logger, corsCfg),
		logger: logger,
	}, nil
}

// NewRouter assembles the gin router with all routes and middleware.
func NewRouter(logger zerolog.Logger, corsCfg middleware.CORSConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(corsCfg))

	builder := report.NewBuilder(logger)
	reportHandler := handlers.NewReportHandler(builder,
		func(sector string) { reportsTotal.WithLabelValues(sector).Inc() },
		func(code string) { reportErrorsTotal.WithLabelValues(code).Inc() },
	)
	factorsHandler := handlers.NewFactorsHandler(emissions.DefaultFactors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.POST("/report", reportHandler.CreateReport)
	v1.GET("/factors", factorsHandler.GetFactors)

	return router
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("shutdown failed")
		}
		close(shutdownDone)
	}()

	s.logger.Info().Str("addr", s.addr).Msg("starting report server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	return nil
}
