// Package commands wires the Quill CLI.
package commands

import (
	"github.com/quillgen/quill"
	"github.com/quillgen/quill/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the Quill CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "CRUD scaffolding for bundle-structured applications",
		Long: `Quill generates the full CRUD surface for an entity from a small
descriptor file: a controller class, a functional test, view templates,
and a routing declaration, all written into your bundle tree.

Start with 'quill init', describe an entity with 'quill generate entity',
then 'quill generate crud' builds everything around it.`,
		Version: quill.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
