package headermap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputStyle
		wantErr  bool
	}{
		{input: "package", expected: StylePackage},
		{input: "source", expected: StyleSource},
		{input: "none", expected: StyleNone},
		{input: "", wantErr: true},
		{input: "Package", wantErr: true},
		{input: "flat", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			style, err := ParseOutputStyle(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, style)
			}
		})
	}
}

func TestOutputStyleString(t *testing.T) {
	assert.Equal(t, "StylePackage", StylePackage.String())
	assert.Equal(t, "StyleSource", StyleSource.String())
	assert.Equal(t, "StyleNone", StyleNone.String())
	assert.Equal(t, "OutputStyle(7)", OutputStyle(7).String())
}

func TestZeroValueIsPackageStyle(t *testing.T) {
	var style OutputStyle
	assert.Equal(t, StylePackage, style)
}
