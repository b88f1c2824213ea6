package cmd

import (
	"fmt"

	"github.com/nfrund/sevahub/cmd/sevactl/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newNewModuleCmd() *cobra.Command {
	var name, root string

	cmd := &cobra.Command{
		Use:   "new-module",
		Short: "Scaffold a new guarded module",
		Long: `Create internal/modules/<name> with a module and handler, and register the
module in internal/app/modules.go. Run from the repository root.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := scaffold.Generate(afero.NewOsFs(), root, name); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created module '%s' in internal/modules/%s/\n", name, name)
			fmt.Fprintf(out, "Registered %s.New in internal/app/modules.go\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "The name of the new module (e.g., 'events')")
	cmd.Flags().StringVar(&root, "root", ".", "repository root")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
