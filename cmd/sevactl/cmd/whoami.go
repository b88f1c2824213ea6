package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/profile"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/spf13/cobra"
)

func newWhoamiCmd() *cobra.Command {
	var (
		token, role, apiURL string
		timeout             time.Duration
	)

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Load the profile a dashboard would show for a session",
		Long: `Run the same profile bootstrap the dashboards run and print the resulting
view model as JSON. The role selects which dashboard view is built.

Examples:
  sevactl whoami --token abc --role volunteer
  sevactl whoami --token abc --role ngo --api-url https://api.example.org`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = os.Getenv("API_BASE_URL")
			}
			if apiURL == "" {
				return fmt.Errorf("no API origin: pass --api-url or set API_BASE_URL")
			}

			required, ok := domain.ParseRole(role)
			if !ok {
				return fmt.Errorf("unknown role %q: want volunteer or ngo", role)
			}

			client := apiclient.New(apiURL, timeout)
			sessions := session.Static{Token: token, Role: required}

			var (
				state  bootstrap.State
				view   any
				target string
				err    error
			)
			switch required {
			case domain.RoleVolunteer:
				out := bootstrap.New(required, sessions, client, profile.MapVolunteer).Run(cmd.Context())
				state, target, err = out.State, out.Redirect(), out.Err
				if out.View != nil {
					view = out.View
				}
			default:
				out := bootstrap.New(required, sessions, client, profile.MapNGO).Run(cmd.Context())
				state, target, err = out.State, out.Redirect(), out.Err
				if out.View != nil {
					view = out.View
				}
			}

			if state != bootstrap.Ready {
				return fmt.Errorf("bootstrap ended in %s (redirect %s): %w", state, target, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleVolunteer), "dashboard role (volunteer or ngo)")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "API origin (defaults to API_BASE_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "profile request timeout")
	return cmd
}
