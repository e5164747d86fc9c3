package crud

import "strings"

// Format is the routing-configuration format of a generated bundle. It is a
// closed set; anything a user types that is not recognized falls back to
// FormatYAML rather than erroring, so format negotiation never fails.
type Format int

const (
	FormatYAML Format = iota
	FormatXML
	FormatPHP
	FormatAnnotation
)

// NormalizeFormat maps a requested format string to a Format. Recognized
// tokens are yaml (and its yml spelling), xml, php, and annotation; every
// other input maps to FormatYAML. Total over all strings.
func NormalizeFormat(requested string) Format {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case "yml", "yaml":
		return FormatYAML
	case "xml":
		return FormatXML
	case "php":
		return FormatPHP
	case "annotation":
		return FormatAnnotation
	default:
		return FormatYAML
	}
}

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPHP:
		return "php"
	case FormatAnnotation:
		return "annotation"
	default:
		return "yaml"
	}
}

// HasRoutingFile reports whether the format produces a standalone routing
// file. Annotation routing lives inside the controller, so no file is
// written for it.
func (f Format) HasRoutingFile() bool {
	return f != FormatAnnotation
}
