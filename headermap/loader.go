package headermap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/magiconair/properties"

	"j2native/diagnostic"
)

// LoadFailureCode identifies mapping load failures in diagnostics.
const LoadFailureCode = "mapping_load_failure"

// propertiesLoader parses the Java properties dialect without value
// expansion, so ${...} sequences in header paths stay literal.
var propertiesLoader = &properties.Loader{
	Encoding:         properties.UTF8,
	DisableExpansion: true,
}

// LoadMappings populates the override table from the configured mapping
// sources. Call it once, after configuration and before translation
// starts.
//
// With no sources configured the default resource is consulted and its
// absence is silently accepted. Explicitly configured sources must be
// readable: the first failure is reported once through d, the remaining
// sources are skipped, and entries merged before the failure are kept.
func (r *Resolver) LoadMappings(res *ResourceSet, d *diagnostic.Diagnostics) {
	if res == nil {
		res = NewResourceSet(nil)
	}

	if r.sources == nil {
		data, err := res.ReadResource(DefaultMappingResource)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				d.AddError(LoadFailureCode, err.Error(), DefaultMappingResource)
			}

			return
		}

		if err := r.mergeMappings(data, OriginDefaultResource); err != nil {
			d.AddError(LoadFailureCode, err.Error(), DefaultMappingResource)
		}

		return
	}

	for _, source := range r.sources {
		data, err := res.ReadResource(source)
		if err == nil {
			err = r.mergeMappings(data, OriginExplicitSource)
		}

		if err != nil {
			d.Errors = append(d.Errors, diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        LoadFailureCode,
				Message:     err.Error(),
				Resource:    source,
				Suggestions: []string{"check the configured mapping sources for typos or stale paths"},
			})

			return
		}
	}
}

// mergeMappings parses properties data and merges every entry into the
// override table, later entries winning.
func (r *Resolver) mergeMappings(data []byte, origin Origin) error {
	props, err := propertiesLoader.LoadBytes(data)
	if err != nil {
		return fmt.Errorf("parsing mapping file: %w", err)
	}

	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		r.table.Put(key, value, origin)
	}

	return nil
}
