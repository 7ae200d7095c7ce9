package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbol returns the accessor method symbol of a raw catalog alias or project name:
// the name is split on every run of non-alphanumeric characters, every segment after
// the first is title-cased and the first letter of the result is lowercased.
//
//	core-utils -> coreUtils
//	fooBar     -> fooBar
//	App        -> app
func Symbol(raw string) string {
	name := TypeName(raw)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return strings.ToLower(string(r)) + name[size:]
}

// TypeName returns the exported form of Symbol. Two raw names collide when their type names are equal.
func TypeName(raw string) string {
	// Casers hold state and must not be shared between goroutines.
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, segment := range strings.FieldsFunc(raw, isSeparator) {
		b.WriteString(caser.String(segment))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	default:
		return true
	}
}

// CatalogClassName returns the generated class name of a catalog, e.g. LibrariesForLibs.
func CatalogClassName(catalog string) string {
	return CatalogClassPrefix + TypeName(catalog)
}

// ProjectClassName returns the generated per-project class name for a project path.
// Segments are joined with an underscore so that ":core:utils" and ":core-utils" never share a class.
func ProjectClassName(path string) string {
	if path == ProjectPathSeparator {
		return RootProjectClass
	}
	segments := strings.Split(strings.TrimPrefix(path, ProjectPathSeparator), ProjectPathSeparator)
	for i, s := range segments {
		segments[i] = TypeName(s)
	}
	return strings.Join(segments, "_") + ProjectClassSuffix
}
