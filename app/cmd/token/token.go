package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ribgsilva/wp-notes-api/platform/auth"
	"github.com/ribgsilva/wp-notes-api/platform/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the token command, used to hand bearer tokens to desktop clients.
func Command(log *zap.SugaredLogger) *cobra.Command {
	var (
		user   uint64
		roles  []string
		expiry string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage bearer tokens",
	}

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issues a bearer token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == 0 {
				return errors.New("--user is required")
			}
			for _, r := range roles {
				if !auth.KnownRole(r) {
					return fmt.Errorf("unknown role %q", r)
				}
			}

			secret := env.OrDefault(log, "AUTH_SECRET_KEY", "")
			if secret == "" {
				return errors.New("AUTH_SECRET_KEY is not set")
			}

			tm := auth.NewTokenManager(auth.TokenConfig{
				SecretKey: secret,
				Issuer:    env.OrDefault(log, "AUTH_ISSUER", auth.DefaultTokenIssuer),
				Expiry:    env.DurationDefault(log, "AUTH_EXPIRY", expiry),
			})

			token, err := tm.Generate(user, roles)
			if err != nil {
				return err
			}
			cmd.Println(token)
			return nil
		},
	}
	issue.Flags().Uint64Var(&user, "user", 0, "id of the user the token belongs to")
	issue.Flags().StringSliceVar(&roles, "role", []string{"administrator"}, "roles of the user ("+strings.Join([]string{"administrator", "editor", "author", "contributor", "subscriber"}, ", ")+")")
	issue.Flags().StringVar(&expiry, "expiry", "720h", "token lifetime")

	cmd.AddCommand(issue)
	return cmd
}
