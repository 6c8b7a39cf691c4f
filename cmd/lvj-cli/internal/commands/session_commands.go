package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var errServerSessions = errors.New("with SKIP_DB the API server issues dev sessions at startup, read the tokens from its log")

// requireDatabase refuses session commands that would only touch the CLI's own in-memory store.
func requireDatabase(env *environment) error {
	if err := env.load(); err != nil {
		return err
	}
	if env.cfg.Features.SkipDBEnabled() {
		return errServerSessions
	}
	return nil
}

func initSessionCommands(rootCmd *cobra.Command, env *environment) {
	var sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Issue and revoke API session tokens",
	}

	var issueCmd = &cobra.Command{
		Use:   "issue",
		Short: "Issue a session token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if err := requireDatabase(env); err != nil {
				return err
			}

			services, storage, err := env.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStorage(storage, env.log)

			if ttl == 0 {
				ttl = env.cfg.Auth.SessionTTL
			}

			session, err := services.Auth.IssueSession(cmd.Context(), email, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue session for %s: %w", email, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "token:   %s\n", session.Token)
			fmt.Fprintf(out, "user:    %s\n", session.UserID)
			fmt.Fprintf(out, "expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}
	issueCmd.Flags().StringP("email", "", "", "Email of the user the session belongs to")
	issueCmd.Flags().DurationP("ttl", "", 0, "Session lifetime (defaults to auth.session_ttl)")
	_ = issueCmd.MarkFlagRequired("email")
	sessionCmd.AddCommand(issueCmd)

	var revokeCmd = &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, _ := cmd.Flags().GetString("token")
			if err := requireDatabase(env); err != nil {
				return err
			}

			services, storage, err := env.services(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStorage(storage, env.log)

			if err := services.Auth.RevokeSession(cmd.Context(), token); err != nil {
				return fmt.Errorf("failed to revoke session: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Session revoked")
			return nil
		},
	}
	revokeCmd.Flags().StringP("token", "", "", "Session token to revoke")
	_ = revokeCmd.MarkFlagRequired("token")
	sessionCmd.AddCommand(revokeCmd)

	rootCmd.AddCommand(sessionCmd)
}
