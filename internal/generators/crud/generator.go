// Package crud generates the CRUD artifact family for one entity: a
// controller class, a controller test, view templates, and a routing
// declaration, written into a bundle tree.
package crud

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/quillgen/quill/internal/bundle"
	"github.com/quillgen/quill/internal/gen"
	"github.com/quillgen/quill/internal/output"
	"github.com/quillgen/quill/internal/schema"
)

//go:embed templates
var templatesFS embed.FS

// ErrControllerExists is returned when the target controller file is
// already occupied. Nothing has been written when it is returned. Match
// with errors.Is.
var ErrControllerExists = errors.New("controller already exists")

// Options configures one generation run. Created per invocation and never
// mutated by the generator.
type Options struct {
	Bundle *bundle.Bundle
	Entity *schema.Descriptor

	// Format is the requested routing format; unrecognized values fall
	// back to yaml.
	Format string

	RoutePrefix string

	// WriteActions extends the planned action set from [index show] to the
	// full [index show new edit delete].
	WriteActions bool

	// ControllerDir is the controller sub-directory inside the bundle;
	// "" means DefaultControllerDir.
	ControllerDir string

	// ForceOverwrite skips the controller collision check, replacing an
	// existing controller. Views and tests are overwritten regardless.
	ForceOverwrite bool
}

// Generator is the CRUD generation pipeline.
type Generator struct {
	renderer *gen.Renderer
}

// New creates a CRUD generator.
func New() *Generator {
	return &Generator{renderer: gen.NewRenderer()}
}

// Generate validates the entity, plans the action set, resolves output
// paths, and returns the ordered operations that realize the run. No file
// is touched here; rendering happens in memory and writes are staged as
// operations for gen.Execute.
//
// Operation order is load-bearing: the view directory is ensured before any
// view is staged, and the form partial precedes the new view that includes
// it. The controller operation is create-only; every other file operation
// overwrites silently, which is why re-running against a half-generated
// tree succeeds once the stale controller is removed.
func (g *Generator) Generate(opts Options) ([]gen.Operation, error) {
	if err := schema.Validate(opts.Entity); err != nil {
		return nil, err
	}

	actions := PlanActions(opts.WriteActions)
	record := RecordActions(actions)
	format := NormalizeFormat(opts.Format)

	controllerDir := opts.ControllerDir
	if controllerDir == "" {
		controllerDir = DefaultControllerDir
	}

	paths := ResolvePaths(opts.Bundle.Path, opts.Entity.Name, controllerDir, format)

	output.Verbose(fmt.Sprintf("Actions: %v (record: %v), format: %s", actions, record, format))
	output.Verbose(fmt.Sprintf("Controller: %s", paths.Controller))

	if !opts.ForceOverwrite {
		if _, err := os.Stat(paths.Controller); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrControllerExists, paths.Controller)
		}
	}

	entity := opts.Entity
	class := entity.ClassName()
	singular := gen.LowerFirst(class)
	plural := gen.LowerFirst(schema.Pluralize(class))
	routeName := RouteNamePrefix(opts.RoutePrefix)
	viewPath := viewPathOf(opts.Bundle.Path, paths)

	var ops []gen.Operation

	controller, err := g.renderer.RenderFS(templatesFS, "templates/controller.php.tmpl", controllerData{
		BundleName:      opts.Bundle.Name,
		BundleNamespace: opts.Bundle.Namespace,
		EntityName:      entity.Name,
		EntityClass:     class,
		EntityNamespace: entity.Namespace(),
		EntitySingular:  singular,
		EntityPlural:    plural,
		RoutePrefix:     opts.RoutePrefix,
		RouteNamePrefix: routeName,
		ViewPath:        viewPath,
		Annotation:      format == FormatAnnotation,
		HasShow:         hasAction(actions, ActionShow),
		HasNew:          hasAction(actions, ActionNew),
		HasEdit:         hasAction(actions, ActionEdit),
		HasDelete:       hasAction(actions, ActionDelete),
	})
	if err != nil {
		return nil, fmt.Errorf("generating controller: %w", err)
	}
	ops = append(ops, &gen.WriteFileOp{Path: paths.Controller, Content: controller, Mode: 0644})

	ops = append(ops, &gen.EnsureDirOp{Path: paths.ViewDir, Mode: 0755})

	index, err := g.renderer.RenderFS(templatesFS, "templates/views/index.html.twig.tmpl", indexViewData{
		EntityClass:     class,
		EntitySingular:  singular,
		EntityPlural:    plural,
		Fields:          entity.DisplayFields(),
		IdentifierField: "id",
		RouteNamePrefix: routeName,
		RecordActions:   record,
		HasNew:          hasAction(actions, ActionNew),
	})
	if err != nil {
		return nil, fmt.Errorf("generating index view: %w", err)
	}
	ops = append(ops, &gen.OverwriteFileOp{Path: paths.View("index"), Content: index, Mode: 0644})

	if hasAction(actions, ActionShow) {
		show, err := g.renderer.RenderFS(templatesFS, "templates/views/show.html.twig.tmpl", showViewData{
			EntityClass:     class,
			EntitySingular:  singular,
			Fields:          entity.DisplayFields(),
			RouteNamePrefix: routeName,
			HasEdit:         hasAction(actions, ActionEdit),
			HasDelete:       hasAction(actions, ActionDelete),
		})
		if err != nil {
			return nil, fmt.Errorf("generating show view: %w", err)
		}
		ops = append(ops, &gen.OverwriteFileOp{Path: paths.View("show"), Content: show, Mode: 0644})
	}

	if hasAction(actions, ActionNew) {
		// The form partial must exist before the new view that includes it.
		form, err := g.renderer.RenderFS(templatesFS, "templates/views/form.html.twig.tmpl", formViewData{
			EntityClass:    class,
			EntitySingular: singular,
		})
		if err != nil {
			return nil, fmt.Errorf("generating form view: %w", err)
		}
		ops = append(ops, &gen.OverwriteFileOp{Path: paths.View("form"), Content: form, Mode: 0644})

		newView, err := g.renderer.RenderFS(templatesFS, "templates/views/new.html.twig.tmpl", newViewData{
			EntityClass:     class,
			EntitySingular:  singular,
			RouteNamePrefix: routeName,
			FormTemplateDir: paths.FormTemplateDir,
		})
		if err != nil {
			return nil, fmt.Errorf("generating new view: %w", err)
		}
		ops = append(ops, &gen.OverwriteFileOp{Path: paths.View("new"), Content: newView, Mode: 0644})
	}

	if hasAction(actions, ActionEdit) {
		edit, err := g.renderer.RenderFS(templatesFS, "templates/views/edit.html.twig.tmpl", editViewData{
			EntityClass:     class,
			EntitySingular:  singular,
			RouteNamePrefix: routeName,
			FormTemplateDir: paths.FormTemplateDir,
			HasDelete:       hasAction(actions, ActionDelete),
		})
		if err != nil {
			return nil, fmt.Errorf("generating edit view: %w", err)
		}
		ops = append(ops, &gen.OverwriteFileOp{Path: paths.View("edit"), Content: edit, Mode: 0644})
	}

	test, err := g.renderer.RenderFS(templatesFS, "templates/tests/test.php.tmpl", testData{
		BundleNamespace: opts.Bundle.Namespace,
		EntityClass:     class,
		EntityNamespace: entity.Namespace(),
		EntitySingular:  singular,
		RoutePrefix:     opts.RoutePrefix,
		HasNew:          hasAction(actions, ActionNew),
		HasEdit:         hasAction(actions, ActionEdit),
		HasDelete:       hasAction(actions, ActionDelete),
	})
	if err != nil {
		return nil, fmt.Errorf("generating test class: %w", err)
	}
	ops = append(ops, &gen.OverwriteFileOp{Path: paths.Test, Content: test, Mode: 0644})

	if format.HasRoutingFile() {
		routing, err := g.renderer.RenderFS(templatesFS, "templates/config/routing."+format.String()+".tmpl", routingData{
			BundleName:      opts.Bundle.Name,
			ControllerPath:  strings.ReplaceAll(entity.Name, ".", "/"),
			RoutePrefix:     opts.RoutePrefix,
			RouteNamePrefix: routeName,
			HasNew:          hasAction(actions, ActionNew),
			HasEdit:         hasAction(actions, ActionEdit),
			HasDelete:       hasAction(actions, ActionDelete),
		})
		if err != nil {
			return nil, fmt.Errorf("generating routing config: %w", err)
		}
		ops = append(ops, &gen.OverwriteFileOp{Path: paths.Routing, Content: routing, Mode: 0644})
	}

	return ops, nil
}

// viewPathOf returns the view directory relative to Resources/views, the
// form controllers reference views by.
func viewPathOf(bundleRoot string, paths OutputPaths) string {
	prefix := bundleRoot + "/Resources/views/"
	return strings.TrimPrefix(paths.ViewDir, prefix)
}
