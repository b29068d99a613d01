package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"j2native/diagnostic"
	"j2native/headermap"
	"j2native/internal/runfile"
)

var (
	// runfilePath names the YAML run file; empty means flags only.
	runfilePath string
	// outputStyleFlag overrides the run file layout policy.
	outputStyleFlag string
	// combineJarsFlag overrides the run file combine_jars switch.
	combineJarsFlag bool
	// includeGeneratedFlag overrides include_generated_sources.
	includeGeneratedFlag bool
	// headerMappingFlag is the comma-separated mapping file list. Passing
	// an empty value is an explicit empty list and disables loading.
	headerMappingFlag string
	// outputHeaderMappingFlag overrides the write-back destination.
	outputHeaderMappingFlag string
	// resourceRootsFlag overrides the resource search roots.
	resourceRootsFlag []string
	// jobsFlag caps concurrent resolution workers; 0 means one per CPU.
	jobsFlag int

	resolveCmd = &cobra.Command{
		Use:   "resolve [qualified type name ...]",
		Short: "Resolve header paths for types and compilation units",
		Long: `resolve loads the configured mapping files, resolves the header path
for every requested type and the output path for every listed
compilation unit, and prints one qualified=path line per request.

Types come from the run file plus positional arguments. Mapping load and
write-back failures are reported but never abort the run; the exit code
is non-zero if any were reported.`,
		RunE: runResolve,
	}
)

func init() {
	addRunFlags(resolveCmd)

	resolveCmd.Flags().StringVar(&outputStyleFlag, "output-style", "package", "layout policy: package, source, or none")
	resolveCmd.Flags().BoolVar(&combineJarsFlag, "combine-jars", false, "translate all jar sources as one combined unit (implies source layout)")
	resolveCmd.Flags().BoolVar(&includeGeneratedFlag, "include-generated-sources", false, "translate annotation-generated sources too (implies source layout)")
	resolveCmd.Flags().StringVar(&outputHeaderMappingFlag, "output-header-mapping", "", "file to write the accumulated override table to")
	resolveCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 0, "concurrent resolution workers (0 = one per CPU)")
}

// addRunFlags registers the flags shared by every command that loads
// mapping files.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runfilePath, "runfile", "f", "", "YAML run file describing the translation run")
	cmd.Flags().StringVar(&headerMappingFlag, "header-mapping", "", "comma-separated mapping files; an empty value disables loading")
	cmd.Flags().StringArrayVar(&resourceRootsFlag, "resource-root", nil, "directory searched for bare mapping file names (repeatable)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	rf, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	r, err := buildResolver(rf)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(rf.Types)+len(args))
	names = append(names, rf.Types...)
	names = append(names, args...)

	ids := make([]headermap.TypeID, 0, len(names))
	for _, name := range names {
		id, err := headermap.ParseTypeID(name)
		if err != nil {
			return fmt.Errorf("bad type name %q: %w", name, err)
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 && len(rf.Units) == 0 {
		return fmt.Errorf("nothing to resolve: pass type names or list them in the run file")
	}

	var diags diagnostic.Diagnostics

	fsys := afero.NewOsFs()
	r.LoadMappings(headermap.NewResourceSet(fsys, rf.ResourceRoots...), &diags)
	logger.Debug("mappings loaded", "entries", r.Table().Len(), "style", r.Style())

	for _, line := range resolveLines(r, ids, rf.Units, effectiveJobs(rf.Jobs)) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	r.WriteMappings(fsys, &diags)

	reportDiagnostics(&diags)

	if diags.HasErrors() {
		return fmt.Errorf("completed with %d mapping error(s)", len(diags.Errors))
	}

	return nil
}

// loadRunConfig merges the run file (if any) with flag overrides.
// A changed flag always beats the run file value.
func loadRunConfig(cmd *cobra.Command) (*runfile.RunFile, error) {
	var rf *runfile.RunFile

	if runfilePath != "" {
		loaded, err := runfile.LoadFile(runfilePath)
		if err != nil {
			return nil, err
		}
		rf = loaded
	} else {
		rf = &runfile.RunFile{Version: "1", OutputStyle: "package"}
	}

	flags := cmd.Flags()

	if flags.Changed("output-style") {
		rf.OutputStyle = outputStyleFlag
	}

	if flags.Changed("combine-jars") {
		rf.CombineJars = combineJarsFlag
	}

	if flags.Changed("include-generated-sources") {
		rf.IncludeGeneratedSources = includeGeneratedFlag
	}

	if flags.Changed("header-mapping") {
		sources := splitMappingList(headerMappingFlag)
		rf.MappingFiles = &sources
	}

	if flags.Changed("output-header-mapping") {
		rf.OutputMappingFile = outputHeaderMappingFlag
	}

	if flags.Changed("resource-root") {
		rf.ResourceRoots = resourceRootsFlag
	}

	if flags.Changed("jobs") {
		rf.Jobs = jobsFlag
	}

	return rf, nil
}

// splitMappingList turns the comma-separated flag value into a mapping
// source list. The empty value maps to an explicit empty list, which
// disables mapping loading entirely.
func splitMappingList(v string) []string {
	if v == "" {
		return []string{}
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// buildResolver turns a merged run configuration into a configured
// Resolver.
func buildResolver(rf *runfile.RunFile) (*headermap.Resolver, error) {
	style, err := headermap.ParseOutputStyle(rf.OutputStyle)
	if err != nil {
		return nil, err
	}

	r := headermap.NewResolver()
	r.SetOutputStyle(style)

	if rf.CombineJars {
		r.EnableCombineJars()
	}

	if rf.IncludeGeneratedSources {
		r.EnableIncludeGeneratedSources()
	}

	if rf.MappingFiles != nil {
		r.SetMappingSources(*rf.MappingFiles)
	}

	r.SetOutputMappingFile(rf.OutputMappingFile)

	return r, nil
}

// resolveLines computes one qualified=path line per requested type and
// unit. Queries run concurrently; output keeps the request order.
func resolveLines(r *headermap.Resolver, ids []headermap.TypeID, units []runfile.Unit, jobs int) []string {
	lines := make([]string, len(ids)+len(units))

	// The group only bounds concurrency; queries cannot fail.
	var g errgroup.Group
	g.SetLimit(jobs)

	for i, id := range ids {
		// Per-iteration copies: go.mod pins go 1.21, whose loop variables
		// are shared across iterations.
		i, id := i, id
		g.Go(func() error {
			lines[i] = id.Qualified + "=" + r.HeaderPath(id, nil)
			return nil
		})
	}

	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			name := u.MainType
			if u.Package != "" {
				name = u.Package + "." + u.MainType
			}

			unit := headermap.CompilationUnit{Package: u.Package, MainType: u.MainType}
			lines[len(ids)+i] = name + "=" + r.OutputPath(unit)
			return nil
		})
	}

	_ = g.Wait()

	return lines
}

// effectiveJobs resolves the worker cap, defaulting to one per CPU.
func effectiveJobs(n int) int {
	if n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// reportDiagnostics echoes collected diagnostics through the CLI logger.
func reportDiagnostics(d *diagnostic.Diagnostics) {
	for _, info := range d.Infos {
		logger.Info(info.Message, "code", info.Code, "resource", info.Resource)
	}

	for _, warn := range d.Warnings {
		logger.Warn(warn.Message, "code", warn.Code, "resource", warn.Resource)
	}

	for _, e := range d.Errors {
		logger.Error(e.Message, "code", e.Code, "resource", e.Resource)
		for _, hint := range e.Suggestions {
			logger.Info("hint: " + hint)
		}
	}
}
