package headermap

import (
	"os"
	"strings"
)

// DefaultMappingResource is the bundled mapping resource consulted when no
// explicit mapping sources are configured.
const DefaultMappingResource = "mappings.j2native"

// headerSuffix is the extension appended to computed header paths.
const headerSuffix = ".h"

// Resolver answers header path questions for the translation pipeline.
//
// A Resolver is mutated by a single goroutine during configuration and
// loading. Once translation starts it is read-only and safe for
// concurrent queries.
type Resolver struct {
	// style is the layout policy for computed paths.
	style OutputStyle
	// combineJars marks runs that translate all jar sources as one unit.
	combineJars bool
	// includeGenerated marks runs that translate generated sources too.
	includeGenerated bool
	// sources is nil until SetMappingSources is called: nil means consult
	// the default resource, an empty non-nil slice means load nothing.
	sources []string
	// outputFile is the write-back destination; empty disables it.
	outputFile string
	// table holds the loaded and programmatic overrides.
	table *Table
}

// NewResolver returns a Resolver with the package-derived layout and an
// empty override table.
func NewResolver() *Resolver {
	return &Resolver{
		style: StylePackage,
		table: NewTable(),
	}
}

// SetOutputStyle selects the layout policy for computed paths.
func (r *Resolver) SetOutputStyle(style OutputStyle) {
	r.style = style
}

// EnableCombineJars marks the run as translating all jar sources into a
// single unit. Combined output only makes sense relative to source
// locations, so the layout is forced to StyleSource.
func (r *Resolver) EnableCombineJars() {
	r.combineJars = true
	r.style = StyleSource
}

// EnableIncludeGeneratedSources marks the run as translating
// annotation-generated sources alongside handwritten ones. Generated
// sources carry no stable package root, so the layout is forced to
// StyleSource.
func (r *Resolver) EnableIncludeGeneratedSources() {
	r.includeGenerated = true
	r.style = StyleSource
}

// SetMappingSources names the mapping files LoadMappings reads, in
// precedence order (later files win). Passing nil restores the default
// behavior of consulting DefaultMappingResource; an empty non-nil slice
// disables mapping loading entirely.
func (r *Resolver) SetMappingSources(sources []string) {
	r.sources = sources
}

// SetOutputMappingFile names the file WriteMappings writes the accumulated
// override table to. Empty disables write-back.
func (r *Resolver) SetOutputMappingFile(path string) {
	r.outputFile = path
}

// Style returns the active layout policy.
func (r *Resolver) Style() OutputStyle {
	return r.style
}

// UsesSourceDirectories reports whether output paths mirror source
// locations instead of package names.
func (r *Resolver) UsesSourceDirectories() bool {
	return r.style == StyleSource
}

// CombinesSourceJars reports whether all jar sources translate into a
// single combined unit.
func (r *Resolver) CombinesSourceJars() bool {
	return r.UsesSourceDirectories() && r.combineJars
}

// IncludesGeneratedSources reports whether annotation-generated sources
// are translated alongside handwritten ones.
func (r *Resolver) IncludesGeneratedSources() bool {
	return r.UsesSourceDirectories() && r.includeGenerated
}

// HeaderPath returns the output path of the header generated for t.
// Precedence: the injected lookup, then the override table, then the
// computed default. The lookup may be nil.
func (r *Resolver) HeaderPath(t TypeID, explicit HeaderLookup) string {
	if explicit != nil {
		if h, ok := explicit(t); ok {
			return h
		}
	}

	if h, ok := r.table.Get(t.Qualified); ok {
		return h
	}

	return r.dirPrefix(t.Package) + t.Name + headerSuffix
}

// MappedHeader returns the override recorded for an erased fully-qualified
// name, bypassing the computed default.
func (r *Resolver) MappedHeader(qualified string) (string, bool) {
	return r.table.Get(qualified)
}

// AddMapping records a programmatic override for qualified.
func (r *Resolver) AddMapping(qualified, header string) {
	r.table.Put(qualified, header, OriginProgrammatic)
}

// OutputPath returns the extension-less output path for a compilation
// unit's generated artifacts.
func (r *Resolver) OutputPath(u CompilationUnit) string {
	return r.dirPrefix(u.Package) + u.MainType
}

// Table exposes the override table for diagnostics and persistence.
func (r *Resolver) Table() *Table {
	return r.table
}

// dirPrefix computes the directory prefix for a package under the active
// layout. Platform packages always use the package-derived layout.
func (r *Resolver) dirPrefix(pkg string) string {
	if pkg == "" {
		return ""
	}

	style := r.style
	if IsPlatformPackage(pkg) {
		style = StylePackage
	}

	switch style {
	case StylePackage:
		sep := string(os.PathSeparator)
		return strings.ReplaceAll(pkg, ".", sep) + sep
	case StyleSource, StyleNone:
		return ""
	}

	return ""
}
