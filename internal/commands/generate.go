package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quillgen/quill/internal/bundle"
	"github.com/quillgen/quill/internal/gen"
	"github.com/quillgen/quill/internal/generators/crud"
	"github.com/quillgen/quill/internal/generators/entity"
	"github.com/quillgen/quill/internal/output"
	"github.com/quillgen/quill/internal/schema"
	"github.com/spf13/cobra"
)

// GenerateCmd creates the 'generate' command group.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate code from entity descriptors",
	}

	cmd.AddCommand(generateEntityCmd())
	cmd.AddCommand(generateCrudCmd())

	return cmd
}

func generateEntityCmd() *cobra.Command {
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "entity [name] [field:type[:primary]...]",
		Short: "Create an entity descriptor from field specifications",
		Long: `Creates an entity descriptor file under app/entities/.

An 'id' primary key is added automatically when the fields declare none.

Examples:
  quill generate entity Blog.Post title:string body:text
  quill generate entity Account number:string:primary balance:decimal`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			name := args[0]

			fields, err := parseFields(args[1:])
			if err != nil {
				output.Error(fmt.Sprintf("Invalid field specification: %v", err))
				os.Exit(1)
			}

			ops, err := entity.New().Generate(entity.Options{Name: name, Fields: fields})
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := gen.Execute(context.Background(), ops, gen.ExecuteOptions{
				DryRun: dryRun,
				Force:  force,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				return
			}

			output.Success(fmt.Sprintf("Created entity: %s", name))
			output.Info("Next step:")
			output.Step(fmt.Sprintf("quill generate crud %s --with-write", name))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without creating files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing descriptor")

	return cmd
}

func generateCrudCmd() *cobra.Command {
	var routePrefix, format, controllerDir, entityFile string
	var withWrite, dryRun, force, skip, diff bool

	cmd := &cobra.Command{
		Use:   "crud [entity]",
		Short: "Generate controller, views, test, and routing for an entity",
		Long: `Generates the CRUD surface for one entity: a controller class, a
functional test, view templates, and a routing declaration.

Without --with-write only the read side (index, show) is generated.
Views, the test, and the routing file are rewritten on every run; the
controller is never replaced unless --force, --skip, or --diff says so.

Examples:
  quill generate crud Blog.Post
  quill generate crud Blog.Post --with-write --format annotation
  quill generate crud Blog.Post --route-prefix /posts --diff`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			name := args[0]

			resolver, err := gen.NewResolver(force, skip, diff)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			resolving := force || skip || diff

			cfg, err := bundle.Load(".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			descriptorPath := entityFile
			if descriptorPath == "" {
				descriptorPath, err = schema.FindDescriptorFile(name)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
			}

			desc, err := schema.Parse(descriptorPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if desc.Name != name {
				output.Error(fmt.Sprintf("descriptor %s declares entity '%s', not '%s'", descriptorPath, desc.Name, name))
				os.Exit(1)
			}

			if format == "" {
				format = cfg.DefaultFormat
			}
			if routePrefix == "" {
				routePrefix = defaultRoutePrefix(name)
			}
			routePrefix = trimRoutePrefix(routePrefix)

			output.Verbose(fmt.Sprintf("Bundle: %s (%s)", cfg.Bundle.Name, cfg.Bundle.Path))
			output.Verbose(fmt.Sprintf("Descriptor: %s", descriptorPath))

			opts := crud.Options{
				Bundle:         &cfg.Bundle,
				Entity:         desc,
				Format:         format,
				RoutePrefix:    routePrefix,
				WriteActions:   withWrite,
				ControllerDir:  controllerDir,
				ForceOverwrite: resolving,
			}

			ops, err := crud.New().Generate(opts)
			if err != nil {
				if errors.Is(err, crud.ErrControllerExists) {
					output.Error(err.Error())
					output.Info("\nTip: Use --force to overwrite, --skip to keep it, or --diff to review changes")
					os.Exit(1)
				}
				output.Error(err.Error())
				os.Exit(1)
			}

			execForce := false
			if resolving {
				ops, execForce, err = resolveControllerConflict(ops, resolver)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				if ops == nil {
					output.Info("Generation cancelled")
					return
				}
			}

			if err := gen.Execute(ctx, ops, gen.ExecuteOptions{
				DryRun: dryRun,
				Force:  execForce,
				Writer: cmd.OutOrStdout(),
			}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "\n✓ Dry-run complete. Run without --dry-run to create files.")
				return
			}

			output.Success(fmt.Sprintf("Generated CRUD for %s", name))
			if !withWrite {
				output.Info("Read-only actions generated. Re-run with --with-write for new/edit/delete.")
			}
		},
	}

	cmd.Flags().StringVar(&routePrefix, "route-prefix", "", "URL prefix for generated routes (default derived from the entity name)")
	cmd.Flags().StringVar(&format, "format", "", "Routing format: yaml, xml, php, annotation (default from quill.yml)")
	cmd.Flags().BoolVar(&withWrite, "with-write", false, "Also generate new, edit, and delete actions")
	cmd.Flags().StringVar(&controllerDir, "controller-dir", "", "Controller sub-directory inside the bundle (default Controller)")
	cmd.Flags().StringVar(&entityFile, "entity-file", "", "Descriptor file path (default app/entities/<name>.quill.yml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without creating files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing controller without asking")
	cmd.Flags().BoolVar(&skip, "skip", false, "Keep an existing controller, still refreshing views, test, and routing")
	cmd.Flags().BoolVar(&diff, "diff", false, "Show a diff against an existing controller and ask")

	return cmd
}

// resolveControllerConflict applies the conflict flags to the staged
// operations. The controller is the only create-only file, so resolution
// touches just its op: overwrite keeps it and forces execution, skip drops
// it, cancel returns nil ops. Files that do not exist yet need no
// resolution.
func resolveControllerConflict(ops []gen.Operation, resolver *gen.Resolver) ([]gen.Operation, bool, error) {
	idx := -1
	var write *gen.WriteFileOp
	for i, op := range ops {
		if w, ok := op.(*gen.WriteFileOp); ok {
			idx = i
			write = w
			break
		}
	}
	if write == nil {
		return ops, false, nil
	}

	existing, err := os.ReadFile(write.Path)
	if os.IsNotExist(err) {
		return ops, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", write.Path, err)
	}

	resolution, err := resolver.Resolve(write.Path, existing, write.Content)
	if err != nil {
		return nil, false, err
	}

	switch resolution {
	case gen.ResolutionOverwrite:
		return ops, true, nil
	case gen.ResolutionSkip:
		output.Info(fmt.Sprintf("Keeping existing %s", write.Path))
		return append(ops[:idx:idx], ops[idx+1:]...), false, nil
	default:
		return nil, false, nil
	}
}
