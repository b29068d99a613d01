package headermap

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"j2native/diagnostic"
)

// WriteFailureCode identifies mapping write-back failures in diagnostics.
const WriteFailureCode = "mapping_write_failure"

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteMappings persists the override table to the configured output
// mapping file, creating parent directories as needed. Entries are
// written as key=value lines in lexicographic key order so regenerated
// files diff cleanly. Only entries present in the table are written,
// never computed defaults.
//
// A nil fsys falls back to the host filesystem. Failures are reported
// through d; write-back never aborts the run.
func (r *Resolver) WriteMappings(fsys afero.Fs, d *diagnostic.Diagnostics) {
	if r.outputFile == "" {
		return
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if err := r.writeMappingFile(fsys); err != nil {
		d.AddError(WriteFailureCode, err.Error(), r.outputFile)
	}
}

func (r *Resolver) writeMappingFile(fsys afero.Fs) error {
	err := fsys.MkdirAll(filepath.Dir(r.outputFile), dirPerm)
	if err != nil {
		return fmt.Errorf("creating mapping output directory: %w", err)
	}

	var buf bytes.Buffer
	for _, e := range r.table.Entries() {
		fmt.Fprintf(&buf, "%s=%s\n", e.Key, e.Header)
	}

	err = afero.WriteFile(fsys, r.outputFile, buf.Bytes(), filePerm)
	if err != nil {
		return fmt.Errorf("writing mapping file: %w", err)
	}

	return nil
}
