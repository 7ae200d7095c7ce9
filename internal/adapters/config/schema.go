package config

import (
	"gopkg.in/yaml.v3"
)

// File is the structure of the accessors.yaml model file.
type File struct {
	// RootProject names the root project; the directory of the file when empty.
	RootProject string                `yaml:"rootProject"`
	Include     []string              `yaml:"include"`
	Catalogs    map[string]CatalogDTO `yaml:"catalogs"`
	// Settings is read by the settings loader only.
	Settings map[string]any `yaml:"settings"`
}

// CatalogDTO is one catalog of the model file.
type CatalogDTO struct {
	Versions  map[string]string     `yaml:"versions"`
	Libraries map[string]LibraryDTO `yaml:"libraries"`
	Bundles   map[string][]string   `yaml:"bundles"`
}

// LibraryDTO is a library declaration. It is written either as a "group:artifact[:version]"
// notation or as a mapping with a module (or group and name) and a version or version.ref.
type LibraryDTO struct {
	Notation   string `yaml:"-"`
	Module     string `yaml:"module"`
	Group      string `yaml:"group"`
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	VersionRef string `yaml:"version.ref"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (l *LibraryDTO) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Notation = node.Value
		return nil
	}
	type plain LibraryDTO
	return node.Decode((*plain)(l))
}
