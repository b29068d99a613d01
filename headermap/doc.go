// Package headermap resolves the output header path for every type the
// j2native translator emits, and loads and persists the mapping files
// that override those paths.
//
// Mapping files are a first-class feature that turn computed defaults
// into deterministic, human-editable overrides.
//
// # Key capabilities
//
//   - Three layout policies: package-derived, source-relative, flat
//   - Platform package detection that pins well-known namespaces to the
//     package-derived layout regardless of the configured policy
//   - Override tables loaded from Java-properties mapping files, with
//     per-entry provenance
//   - Optional write-back of the accumulated overrides at the end of a
//     translation run
//   - An injected per-type lookup hook for annotation-driven headers,
//     which takes precedence over everything else
//
// # Mapping File Format
//
// Mapping files use the Java properties dialect:
//
//	# comment
//	! also a comment
//	com.example.Foo=shared/foo.h
//	com.example.Bar = shared/bar.h
//
// Keys are erased fully-qualified type names; values are header paths
// emitted verbatim. Later entries win, within a file and across files.
// Value expansion is disabled, so ${...} sequences stay literal.
//
// # Resolution Precedence
//
// HeaderPath consults, in order:
//  1. the injected HeaderLookup (annotation channel)
//  2. the override table
//  3. the computed default: directory prefix + simple name + ".h"
//
// # Lifecycle
//
// A Resolver is configured and loaded once, by a single goroutine, before
// translation begins. After that it is read-only and safe for concurrent
// queries without locking.
package headermap
