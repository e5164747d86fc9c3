package crud

import "github.com/quillgen/quill/internal/schema"

// Render contexts are one struct per skeleton, enumerating exactly the
// fields that skeleton consumes. The pipeline builds a fresh value per
// render call; nothing is shared or cached across calls.

type controllerData struct {
	BundleName      string
	BundleNamespace string
	EntityName      string // dotted, e.g. "Blog.Post"
	EntityClass     string
	EntityNamespace string // dotted prefix, "" for top-level entities
	EntitySingular  string
	EntityPlural    string
	RoutePrefix     string
	RouteNamePrefix string
	ViewPath        string // view dir relative to Resources/views
	Annotation      bool   // emit route annotations instead of a config file
	HasShow         bool
	HasNew          bool
	HasEdit         bool
	HasDelete       bool
}

type testData struct {
	BundleNamespace string
	EntityClass     string
	EntityNamespace string
	EntitySingular  string
	RoutePrefix     string
	HasNew          bool
	HasEdit         bool
	HasDelete       bool
}

type indexViewData struct {
	EntityClass     string
	EntitySingular  string
	EntityPlural    string
	Fields          []schema.Field
	IdentifierField string
	RouteNamePrefix string
	RecordActions   []Action
	HasNew          bool
}

type showViewData struct {
	EntityClass     string
	EntitySingular  string
	Fields          []schema.Field
	RouteNamePrefix string
	HasEdit         bool
	HasDelete       bool
}

type formViewData struct {
	EntityClass    string
	EntitySingular string
}

type newViewData struct {
	EntityClass     string
	EntitySingular  string
	RouteNamePrefix string
	FormTemplateDir string
}

type editViewData struct {
	EntityClass     string
	EntitySingular  string
	RouteNamePrefix string
	FormTemplateDir string
	HasDelete       bool
}

type routingData struct {
	BundleName      string
	ControllerPath  string // logical controller reference inside the bundle
	RoutePrefix     string
	RouteNamePrefix string
	HasNew          bool
	HasEdit         bool
	HasDelete       bool
}
