package headermap

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"j2native/diagnostic"
)

func TestWriteMappingsNoDestination(t *testing.T) {
	fsys := afero.NewMemMapFs()

	r := NewResolver()
	r.AddMapping("com.x.A", "a.h")

	var d diagnostic.Diagnostics
	r.WriteMappings(fsys, &d)

	assert.False(t, d.HasErrors())

	empty, err := afero.IsEmpty(fsys, "/")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestWriteMappingsSortedOutput(t *testing.T) {
	fsys := afero.NewMemMapFs()

	r := NewResolver()
	r.SetOutputMappingFile("out/dir/mappings.properties")
	r.AddMapping("org.zzz.Z", "z.h")
	r.AddMapping("com.aaa.A", "a.h")
	r.AddMapping("m.mid.M", "m.h")

	var d diagnostic.Diagnostics
	r.WriteMappings(fsys, &d)

	require.False(t, d.HasErrors())

	data, err := afero.ReadFile(fsys, "out/dir/mappings.properties")
	require.NoError(t, err)

	expected := "com.aaa.A=a.h\nm.mid.M=m.h\norg.zzz.Z=z.h\n"
	assert.Equal(t, expected, string(data))
}

func TestWriteMappingsReportsFailure(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	r := NewResolver()
	r.SetOutputMappingFile("out/mappings.properties")
	r.AddMapping("com.x.A", "a.h")

	var d diagnostic.Diagnostics
	r.WriteMappings(fsys, &d)

	// The failure is reported, never returned: translation output from a
	// run with a broken write-back destination is still usable.
	require.Len(t, d.Errors, 1)
	assert.Equal(t, WriteFailureCode, d.Errors[0].Code)
	assert.Equal(t, "out/mappings.properties", d.Errors[0].Resource)
}

func TestWriteMappingsRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()

	src := NewResolver()
	src.SetOutputMappingFile("saved.properties")
	src.AddMapping("com.x.A", "custom/a.h")
	src.AddMapping("com.x.B", "custom/b.h")

	var d diagnostic.Diagnostics
	src.WriteMappings(fsys, &d)
	require.False(t, d.HasErrors())

	dst := NewResolver()
	dst.SetMappingSources([]string{"saved.properties"})
	dst.LoadMappings(NewResourceSet(fsys), &d)
	require.False(t, d.HasErrors())

	require.Equal(t, src.Table().Len(), dst.Table().Len())
	for _, e := range src.Table().Entries() {
		header, ok := dst.MappedHeader(e.Key)
		require.True(t, ok, "key %s lost in round trip", e.Key)
		assert.Equal(t, e.Header, header)
	}
}
