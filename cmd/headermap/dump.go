package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"j2native/diagnostic"
	"j2native/headermap"
)

var (
	// dumpDebug dumps the raw table entries to stderr.
	dumpDebug bool

	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the effective override table",
		Long: `dump loads the mapping files exactly like resolve and prints the
effective override table as sorted key=value lines, each with its origin
(default, explicit, or programmatic) as a trailing comment.`,
		RunE: runDump,
	}
)

func init() {
	addRunFlags(dumpCmd)

	dumpCmd.Flags().BoolVar(&dumpDebug, "debug", false, "dump raw table entries to stderr")
}

func runDump(cmd *cobra.Command, _ []string) error {
	rf, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	r, err := buildResolver(rf)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	r.LoadMappings(headermap.NewResourceSet(afero.NewOsFs(), rf.ResourceRoots...), &diags)

	entries := r.Table().Entries()
	if dumpDebug {
		spew.Fdump(os.Stderr, entries)
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s # %s\n", e.Key, e.Header, e.Origin)
	}

	reportDiagnostics(&diags)

	if diags.HasErrors() {
		return fmt.Errorf("completed with %d mapping error(s)", len(diags.Errors))
	}

	return nil
}
