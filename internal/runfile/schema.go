package runfile

import "github.com/go-playground/validator/v10"

// RunFile represents the root of a YAML run configuration file.
type RunFile struct {
	// Version of the run file schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// OutputStyle selects the layout policy: package, source, or none.
	OutputStyle string `yaml:"output_style,omitempty" validate:"omitempty,oneof=package source none"`

	// CombineJars translates all jar sources as one combined unit.
	// Implies the source layout.
	CombineJars bool `yaml:"combine_jars,omitempty"`

	// IncludeGeneratedSources translates annotation-generated sources
	// alongside handwritten ones. Implies the source layout.
	IncludeGeneratedSources bool `yaml:"include_generated_sources,omitempty"`

	// MappingFiles lists mapping files to load in order, later files
	// winning. Omitting the key consults the bundled default resource;
	// an explicitly empty list ([]) disables mapping loading entirely.
	MappingFiles *[]string `yaml:"mapping_files,omitempty"`

	// OutputMappingFile is the file the accumulated override table is
	// written back to at the end of the run. Empty disables write-back.
	OutputMappingFile string `yaml:"output_mapping_file,omitempty"`

	// ResourceRoots are directories searched, in order, when a mapping
	// file name does not resolve as a direct path.
	ResourceRoots []string `yaml:"resource_roots,omitempty"`

	// Types lists erased fully-qualified type names to resolve.
	Types []string `yaml:"types,omitempty" validate:"dive,required"`

	// Units lists compilation units to resolve.
	Units []Unit `yaml:"units,omitempty" validate:"dive"`

	// Jobs caps the number of concurrent resolution workers.
	// Zero picks a default based on the machine.
	Jobs int `yaml:"jobs,omitempty" validate:"omitempty,min=1,max=256"`
}

// Unit names one compilation unit by package and main type.
type Unit struct {
	// Package is the dotted package name; empty means the unnamed package.
	Package string `yaml:"package,omitempty"`

	// MainType is the simple name of the unit's main type.
	MainType string `yaml:"main_type" validate:"required"`
}

// Validate validates the RunFile using the validator.
func (rf *RunFile) Validate() error {
	validate := validator.New()
	return validate.Struct(rf)
}
