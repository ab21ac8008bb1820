package twconfig

import (
	"sort"
	"strconv"
)

// Document is the loaded form of a declaration.
type Document struct {
	// ContentGlobs lists the source patterns the framework scans for class usage.
	ContentGlobs []string
	// ThemeExtensions maps a colour family to shade → colour value
	// (declared under theme.extend.colors).
	ThemeExtensions map[string]map[string]string
	// Plugins lists plugin references in activation order.
	Plugins []string
}

// Declaration mirrors the on-disk shape of the declaration file.
// It is used both for strict decoding and for re-emitting a Document.
type Declaration struct {
	Content []string         `koanf:"content" json:"content" yaml:"content"`
	Theme   ThemeDeclaration `koanf:"theme" json:"theme" yaml:"theme"`
	Plugins []string         `koanf:"plugins" json:"plugins" yaml:"plugins"`
}

// ThemeDeclaration is the "theme" block of a declaration.
type ThemeDeclaration struct {
	Extend ExtendDeclaration `koanf:"extend" json:"extend" yaml:"extend"`
}

// ExtendDeclaration is the "theme.extend" block of a declaration.
type ExtendDeclaration struct {
	Colors map[string]map[string]string `koanf:"colors" json:"colors" yaml:"colors"`
}

// Declaration converts the document back to its on-disk shape.
func (d *Document) Declaration() Declaration {
	return Declaration{
		Content: d.ContentGlobs,
		Theme: ThemeDeclaration{
			Extend: ExtendDeclaration{Colors: d.ThemeExtensions},
		},
		Plugins: d.Plugins,
	}
}

func (decl Declaration) document() *Document {
	doc := &Document{
		ContentGlobs:    decl.Content,
		ThemeExtensions: decl.Theme.Extend.Colors,
		Plugins:         decl.Plugins,
	}
	// An empty sequence in the file stays an empty (non-nil) sequence.
	if doc.ContentGlobs == nil {
		doc.ContentGlobs = []string{}
	}
	if doc.Plugins == nil {
		doc.Plugins = []string{}
	}
	if doc.ThemeExtensions == nil {
		doc.ThemeExtensions = map[string]map[string]string{}
	}
	return doc
}

// Families returns the colour family names in lexical order.
func (d *Document) Families() []string {
	families := make([]string, 0, len(d.ThemeExtensions))
	for name := range d.ThemeExtensions {
		families = append(families, name)
	}
	sort.Strings(families)
	return families
}

// Shades returns the shade keys of a family, numeric shades first in
// ascending order, then named shades (e.g. DEFAULT) lexically.
func (d *Document) Shades(family string) []string {
	shades := make([]string, 0, len(d.ThemeExtensions[family]))
	for shade := range d.ThemeExtensions[family] {
		shades = append(shades, shade)
	}
	sort.Slice(shades, func(i, j int) bool {
		return shadeLess(shades[i], shades[j])
	})
	return shades
}

func shadeLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// ColorCount returns the total number of shade entries across all families.
func (d *Document) ColorCount() int {
	n := 0
	for _, shades := range d.ThemeExtensions {
		n += len(shades)
	}
	return n
}
