// ABOUTME: CLI command for running the HTTP JSON API.
// ABOUTME: Callers authenticate with bearer tokens issued by 'lift token'.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/auth"
	"github.com/harperreed/lift/internal/httpapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the JSON API over HTTP.

Every /api request needs an Authorization: Bearer <token> header. Tokens are
signed with LIFT_JWT_SECRET (or jwt_secret in the config file) and carry the
user they act for; create one with 'lift token <user>'.

ENDPOINTS:

  GET    /healthz
  POST   /api/workouts                  GET /api/workouts?date=&limit=
  GET    /api/workouts/:id              PUT|DELETE /api/workouts/:id
  POST   /api/workouts/:id/exercises    DELETE /api/workout-exercises/:id
  POST   /api/workout-exercises/:id/sets
  PATCH  /api/sets/:id                  DELETE /api/sets/:id
  GET    /api/exercises?q=&limit=       DELETE /api/exercises/:id`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("no JWT secret configured (set LIFT_JWT_SECRET or jwt_secret in config)")
		}
		ttl, err := cfg.GetTokenTTL()
		if err != nil {
			return err
		}
		issuer, err := auth.NewIssuer(cfg.JWTSecret, ttl)
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = cfg.GetAddr()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("http api listening", zap.String("addr", addr))
		return httpapi.New(svc, issuer, logger).Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: config addr or :8080)")
	rootCmd.AddCommand(serveCmd)
}
