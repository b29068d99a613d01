package runfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads, parses, and validates a YAML run file from the given path.
func LoadFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a validated RunFile.
func Parse(data []byte) (*RunFile, error) {
	var rf RunFile

	err := yaml.Unmarshal(data, &rf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run file YAML: %w", err)
	}

	applyDefaults(&rf)

	if err := rf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run file: %w", err)
	}

	return &rf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(rf *RunFile) {
	if rf.Version == "" {
		rf.Version = "1"
	}

	if rf.OutputStyle == "" {
		rf.OutputStyle = "package"
	}

	// An explicitly empty mapping_files list must stay distinguishable
	// from an absent key, so pin the pointed-to slice to non-nil.
	if rf.MappingFiles != nil && *rf.MappingFiles == nil {
		*rf.MappingFiles = []string{}
	}
}
