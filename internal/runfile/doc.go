// Package runfile loads the YAML run configuration consumed by the
// headermap CLI.
//
// A run file describes one translation run: the layout policy, the
// mapping files to load, the write-back destination, and the types and
// compilation units to resolve. Command line flags override run file
// values field by field.
//
// # Key capabilities
//
//   - Layout policy and jar/generated-source switches
//   - Mapping file list with absent-vs-empty distinction
//   - Resource roots for bare resource names
//   - Type and unit manifests for batch resolution
//   - Struct-tag validation with readable failure messages
package runfile
