// ABOUTME: CLI command for minting API bearer tokens.
// ABOUTME: Signs a token for a user with the configured JWT secret.
package main

import (
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/auth"
	"github.com/spf13/cobra"
)

var tokenTTL string

var tokenCmd = &cobra.Command{
	Use:   "token [user]",
	Short: "Create an API token",
	Long: `Print a signed bearer token for the HTTP API.

The token acts for the given user, or for the local user when none is given.

EXAMPLES:

  lift token                     # token for the local user
  lift token alice --ttl 24h     # token for alice, valid one day`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("no JWT secret configured (set LIFT_JWT_SECRET or jwt_secret in config)")
		}

		if tokenTTL != "" {
			cfg.TokenTTL = tokenTTL
		}
		ttl, err := cfg.GetTokenTTL()
		if err != nil {
			return err
		}
		issuer, err := auth.NewIssuer(cfg.JWTSecret, ttl)
		if err != nil {
			return err
		}

		var user string
		if len(args) == 1 {
			user = args[0]
		} else if user, err = localUser(); err != nil {
			return err
		}

		token, err := issuer.Issue(user)
		if err != nil {
			return fmt.Errorf("failed to issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenTTL, "ttl", "", "token lifetime, e.g. 24h (default: config token_ttl or 72h)")
	rootCmd.AddCommand(tokenCmd)
}
