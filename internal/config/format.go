package config

import (
	"path/filepath"
	"strings"
)

// Format identifies the syntax of a layout file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// DetectFormat picks a Format from the file extension. Anything that is not
// .toml or .hcl is treated as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	default:
		return FormatYAML
	}
}
