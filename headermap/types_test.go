package headermap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseTypeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"com.example.Foo", "com.example.Foo"},
		{"java.util.List<java.lang.String>", "java.util.List"},
		{"Map<K, V>", "Map"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EraseTypeName(tt.input))
		})
	}
}

func TestParseTypeID(t *testing.T) {
	tests := []struct {
		input    string
		expected TypeID
		wantErr  bool
	}{
		{
			input: "com.example.Foo",
			expected: TypeID{
				Qualified: "com.example.Foo",
				Name:      "Foo",
				Package:   "com.example",
			},
		},
		{
			input: "Foo",
			expected: TypeID{
				Qualified: "Foo",
				Name:      "Foo",
				Package:   "",
			},
		},
		{
			// Nested type: the simple name is the innermost segment while
			// the qualified name keeps the full path.
			input: "com.example.Outer.Inner",
			expected: TypeID{
				Qualified: "com.example.Outer.Inner",
				Name:      "Inner",
				Package:   "com.example",
			},
		},
		{
			input: "java.util.List<java.lang.String>",
			expected: TypeID{
				Qualified: "java.util.List",
				Name:      "List",
				Package:   "java.util",
			},
		},
		{
			input: "  com.example.Foo ",
			expected: TypeID{
				Qualified: "com.example.Foo",
				Name:      "Foo",
				Package:   "com.example",
			},
		},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "com..Foo", wantErr: true},
		{input: ".Foo", wantErr: true},
		{input: "com.example.", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseTypeID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}
