package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestAddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo("loaded", "12 mappings loaded", "mappings.j2native")
	d.AddWarning("shadowed", "mapping overridden by later source", "team.properties")

	assert.False(t, d.HasErrors())
	assert.True(t, d.IsValid())

	d.AddError("mapping_load_failure", "cannot read mapping file", "missing.properties")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	require.Len(t, d.Errors, 1)
	assert.Equal(t, SeverityError, d.Errors[0].Severity)
	assert.Equal(t, "mapping_load_failure", d.Errors[0].Code)
	assert.Equal(t, "missing.properties", d.Errors[0].Resource)
}

func TestMerge(t *testing.T) {
	var left, right Diagnostics
	left.AddError("mapping_load_failure", "first", "a.properties")
	right.AddError("mapping_write_failure", "second", "out.properties")
	right.AddWarning("shadowed", "third", "b.properties")

	left.Merge(right)

	assert.Len(t, left.Errors, 2)
	assert.Len(t, left.Warnings, 1)
	assert.Equal(t, "first", left.Errors[0].Message)
	assert.Equal(t, "second", left.Errors[1].Message)
}

func TestCombinedError(t *testing.T) {
	var d Diagnostics
	d.AddError("mapping_load_failure", "cannot read mapping file", "a.properties")
	d.AddError("mapping_write_failure", "cannot create directory", "")

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.properties: [mapping_load_failure] cannot read mapping file")
	assert.Contains(t, err.Error(), "[mapping_write_failure] cannot create directory")
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "plain"},
			expected: "plain",
		},
		{
			name:     "with code",
			diag:     Diagnostic{Code: "mapping_load_failure", Message: "cannot read"},
			expected: "[mapping_load_failure] cannot read",
		},
		{
			name:     "with resource and code",
			diag:     Diagnostic{Code: "mapping_load_failure", Message: "cannot read", Resource: "x.properties"},
			expected: "x.properties: [mapping_load_failure] cannot read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}
