package headermap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TypeID identifies a translated type.
//
// Nested types make Qualified non-derivable from Package and Name, so all
// three are carried explicitly.
type TypeID struct {
	// Qualified is the erased fully-qualified name, e.g. "com.example.Foo.Bar".
	Qualified string
	// Name is the erased simple name, e.g. "Bar".
	Name string
	// Package is the dotted package name; empty for the unnamed package.
	Package string
}

// CompilationUnit identifies a translated source file by its package and
// the main type it declares.
type CompilationUnit struct {
	// Package is the dotted package name; empty for the unnamed package.
	Package string
	// MainType is the simple name of the unit's main type.
	MainType string
}

// HeaderLookup is the annotation channel: given a type, it returns the
// header path pinned on the declaration and true, or false when the type
// carries no explicit header. A nil HeaderLookup means no annotation
// channel is available.
type HeaderLookup func(t TypeID) (string, bool)

// EraseTypeName strips generic arguments from a type name, leaving the
// erased name used as a mapping key.
func EraseTypeName(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}

	return name
}

// ParseTypeID splits a dotted qualified name into a TypeID using the javac
// convention: the package is the leading run of lowercase-initial segments,
// the simple name is the final segment. Generic arguments are erased first.
func ParseTypeID(qualified string) (TypeID, error) {
	qualified = EraseTypeName(strings.TrimSpace(qualified))
	if qualified == "" {
		return TypeID{}, fmt.Errorf("empty type name")
	}

	segments := strings.Split(qualified, ".")
	for _, seg := range segments {
		if seg == "" {
			return TypeID{}, fmt.Errorf("malformed type name %q", qualified)
		}
	}

	pkgEnd := 0
	for pkgEnd < len(segments)-1 {
		r, _ := utf8.DecodeRuneInString(segments[pkgEnd])
		if unicode.IsUpper(r) {
			break
		}
		pkgEnd++
	}

	return TypeID{
		Qualified: qualified,
		Name:      segments[len(segments)-1],
		Package:   strings.Join(segments[:pkgEnd], "."),
	}, nil
}
