package headermap

import "fmt"

//go:generate go tool stringer -type=OutputStyle -output=style_string.go

// OutputStyle selects how generated file paths are derived.
type OutputStyle int

const (
	// StylePackage - paths mirror the Java package, dots become separators.
	StylePackage OutputStyle = iota
	// StyleSource - paths mirror the source tree, no package prefix is added.
	StyleSource
	// StyleNone - everything lands in the output root, no prefix at all.
	StyleNone
)

// ParseOutputStyle converts a flag or config value into an OutputStyle.
func ParseOutputStyle(s string) (OutputStyle, error) {
	switch s {
	case "package":
		return StylePackage, nil
	case "source":
		return StyleSource, nil
	case "none":
		return StyleNone, nil
	default:
		return StylePackage, fmt.Errorf("unknown output style %q (want package, source, or none)", s)
	}
}
