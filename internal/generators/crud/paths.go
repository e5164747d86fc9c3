package crud

import (
	"path"
	"regexp"
	"strings"
)

// DefaultControllerDir is the sentinel controller sub-directory meaning
// "top-level controllers". It still names the directory controllers are
// written under; it only stops contributing a segment to view paths.
const DefaultControllerDir = "Controller"

// OutputPaths holds every path one generation run writes, resolved once
// from the entity's dotted name and the controller sub-directory. Paths are
// rooted at the bundle path and use forward slashes.
type OutputPaths struct {
	Controller      string // create-only; collision aborts the run
	Test            string // overwritten unconditionally
	ViewDir         string // created idempotently before views are written
	Routing         string // "" when the format keeps routing in annotations
	FormTemplateDir string // view-path token new/edit templates use to include the form partial
}

// View returns the path of one view file inside ViewDir.
func (p OutputPaths) View(name string) string {
	return path.Join(p.ViewDir, name+".html.twig")
}

// ResolvePaths derives all output paths.
//
// The dotted entity name splits into a namespace prefix and a simple class
// name; the namespace reappears as directories under the controller and
// test trees and under Resources/views. The controller sub-directory
// contributes to view paths only beyond its leading "Controller/" token.
func ResolvePaths(bundleRoot, dottedName, controllerDir string, format Format) OutputPaths {
	parts := strings.Split(dottedName, ".")
	class := parts[len(parts)-1]
	nsPath := strings.Join(parts[:len(parts)-1], "/")

	subDir := normalizeControllerDir(controllerDir)

	// View sub-segment: empty for the sentinel, otherwise the sub-dir with
	// its leading Controller/ token stripped.
	viewSeg := ""
	if subDir != DefaultControllerDir {
		viewSeg = strings.TrimPrefix(subDir, "Controller/")
	}

	namePath := strings.ReplaceAll(dottedName, ".", "/")
	viewDir := path.Join(bundleRoot, "Resources", "views", viewSeg, namePath)

	routing := ""
	if format.HasRoutingFile() {
		file := strings.ToLower(strings.ReplaceAll(dottedName, ".", "_")) + "." + format.String()
		routing = path.Join(bundleRoot, "Resources", "config", "routing", file)
	}

	return OutputPaths{
		Controller:      path.Join(bundleRoot, subDir, nsPath, class+"Controller.php"),
		Test:            path.Join(bundleRoot, "Tests", subDir, nsPath, class+"ControllerTest.php"),
		ViewDir:         viewDir,
		Routing:         routing,
		FormTemplateDir: path.Join(viewSeg, class),
	}
}

// normalizeControllerDir converts the sub-directory's separator characters
// to path form and falls back to the sentinel when empty.
func normalizeControllerDir(dir string) string {
	if dir == "" {
		return DefaultControllerDir
	}
	dir = strings.ReplaceAll(dir, "\\", "/")
	dir = strings.ReplaceAll(dir, ".", "/")
	return strings.Trim(dir, "/")
}

var (
	routePlaceholderRe = regexp.MustCompile(`\{[^}]*\}`)
	routeNameCharsRe   = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// RouteNamePrefix derives the identifier-style form of a route prefix:
// placeholders are dropped, path separators become underscores, remaining
// non-identifier characters are removed. "blog/post" → "blog_post".
func RouteNamePrefix(routePrefix string) string {
	s := routePlaceholderRe.ReplaceAllString(routePrefix, "")
	s = strings.ReplaceAll(s, "/", "_")
	s = routeNameCharsRe.ReplaceAllString(s, "")
	return strings.Trim(s, "_")
}
