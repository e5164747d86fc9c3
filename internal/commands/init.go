package commands

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/quillgen/quill/internal/gen"
	"github.com/quillgen/quill/internal/output"
	"github.com/spf13/cobra"
)

// InitCmd creates the 'init' command, which lays down a quill.yml and the
// bundle skeleton the generators write into.
func InitCmd() *cobra.Command {
	var bundleName, namespace, bundlePath, format string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a Quill project in the current directory",
		Long: `Creates quill.yml and the bundle directory skeleton:
• src/<Bundle>/Controller, Resources/views, Resources/config/routing
• app/entities for descriptor files

Example:
  quill init --bundle BlogBundle --namespace Blog`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			if _, err := os.Stat(filepath.Join(dir, "quill.yml")); err == nil {
				output.Error("quill.yml already exists in " + dir)
				os.Exit(1)
			}

			if bundlePath == "" {
				bundlePath = path.Join("src", bundleName)
			}

			config := fmt.Sprintf(`bundle:
    name: %s
    namespace: %s
    path: %s

defaults:
    format: %s
`, bundleName, namespace, bundlePath, format)

			root := filepath.Join(dir, bundlePath)
			ops := []gen.Operation{
				&gen.WriteFileOp{Path: filepath.Join(dir, "quill.yml"), Content: []byte(config), Mode: 0644},
				&gen.EnsureDirOp{Path: filepath.Join(root, "Controller"), Mode: 0755},
				&gen.EnsureDirOp{Path: filepath.Join(root, "Resources", "views"), Mode: 0755},
				&gen.EnsureDirOp{Path: filepath.Join(root, "Resources", "config", "routing"), Mode: 0755},
				&gen.EnsureDirOp{Path: filepath.Join(root, "Tests"), Mode: 0755},
				&gen.EnsureDirOp{Path: filepath.Join(dir, "app", "entities"), Mode: 0755},
			}

			if err := gen.Execute(context.Background(), ops, gen.ExecuteOptions{
				DryRun: dryRun,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				return
			}

			output.Success("Created Quill project")
			output.Info("Next steps:")
			output.Step("quill generate entity Blog.Post title:string body:text")
			output.Step("quill generate crud Blog.Post --with-write")
		},
	}

	cmd.Flags().StringVar(&bundleName, "bundle", "AppBundle", "Bundle name")
	cmd.Flags().StringVar(&namespace, "namespace", "App", "Source namespace of the bundle")
	cmd.Flags().StringVar(&bundlePath, "path", "", "Bundle directory (default src/<bundle>)")
	cmd.Flags().StringVar(&format, "format", "yaml", "Default routing format (yaml, xml, php, annotation)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without writing files")

	return cmd
}
