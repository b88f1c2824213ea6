package cmd

import (
	"fmt"

	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/gate"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/spf13/cobra"
)

func newGateCmd() *cobra.Command {
	var token, role, require string

	cmd := &cobra.Command{
		Use:   "gate",
		Short: "Show the gate decision for a session",
		Long: `Evaluate the session gate without touching the network.

Examples:
  sevactl gate --token abc --role volunteer --require volunteer   # allow
  sevactl gate --role ngo --require volunteer                     # redirect_to_login (no token)
  sevactl gate --token abc --role ngo --require volunteer         # redirect_to_home`,
		RunE: func(cmd *cobra.Command, args []string) error {
			required, err := parseRequired(require)
			if err != nil {
				return err
			}

			decision := gate.Evaluate(session.Session{Token: token, Role: domain.Role(role)}, required)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "decision: %s\n", decision)
			if target := decision.Target(); target != "" {
				fmt.Fprintf(out, "redirect: %s\n", target)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "stored session token")
	cmd.Flags().StringVar(&role, "role", "", "stored session role")
	cmd.Flags().StringVar(&require, "require", "", "role the view requires (volunteer, ngo, or empty for any)")
	return cmd
}

// parseRequired accepts a known role or the empty string.
func parseRequired(s string) (domain.Role, error) {
	if s == "" {
		return domain.RoleNone, nil
	}
	role, ok := domain.ParseRole(s)
	if !ok {
		return domain.RoleNone, fmt.Errorf("unknown role %q: want volunteer or ngo", s)
	}
	return role, nil
}
