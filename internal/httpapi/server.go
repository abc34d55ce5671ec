// ABOUTME: HTTP transport for the workout actions, built on gin.
// ABOUTME: Serves until its context is cancelled, then shuts down gracefully.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/lift/internal/actions"
	"github.com/harperreed/lift/internal/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server serves the JSON API.
type Server struct {
	engine *gin.Engine
	svc    *actions.Service
	issuer *auth.Issuer
	logger *zap.Logger
}

// New builds a Server whose /api routes require a bearer token from issuer.
func New(svc *actions.Service, issuer *auth.Issuer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine: gin.New(),
		svc:    svc,
		issuer: issuer,
		logger: logger.Named("http"),
	}
	s.routes()
	return s
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	s.engine.Use(requestID(), s.accessLog(), s.recovery())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.Use(s.authRequired())
	{
		api.GET("/workouts", s.listWorkouts)
		api.POST("/workouts", s.createWorkout)
		api.GET("/workouts/:id", s.getWorkout)
		api.PUT("/workouts/:id", s.updateWorkout)
		api.DELETE("/workouts/:id", s.deleteWorkout)
		api.POST("/workouts/:id/exercises", s.addExercise)

		api.DELETE("/workout-exercises/:id", s.removeExercise)
		api.POST("/workout-exercises/:id/sets", s.addSet)

		api.PATCH("/sets/:id", s.updateSet)
		api.DELETE("/sets/:id", s.removeSet)

		api.GET("/exercises", s.listExercises)
		api.DELETE("/exercises/:id", s.forgetExercise)
	}
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
