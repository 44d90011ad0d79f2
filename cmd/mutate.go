package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/gooze/internal/cache"
	"gooze.dev/pkg/gooze/internal/config"
	"gooze.dev/pkg/gooze/internal/discover"
	"gooze.dev/pkg/gooze/internal/lean"
	m "gooze.dev/pkg/gooze/internal/model"
	"gooze.dev/pkg/gooze/internal/mutate"
	"gooze.dev/pkg/gooze/internal/mutate/operators"
	"gooze.dev/pkg/gooze/internal/progress"
	"gooze.dev/pkg/gooze/internal/report"
	"gooze.dev/pkg/gooze/internal/schedule"
	"gooze.dev/pkg/gooze/pkg"
)

const mutateLongDescription = `Run mutation testing for the given paths (default: current directory).

` + pathPatternsHelp

var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate [paths...]",
		Short: "Run mutation testing",
		Long:  mutateLongDescription,
		RunE:  runMutate,
	}

	configureMutateFlags(cmd)

	return cmd
}

func configureMutateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringSlice("operators", nil, "operator names to run (default: all)")
	bindFlagToConfig(flags.Lookup("operators"), "operators")

	flags.StringArrayP("exclude", "x", nil, "substring patterns to exclude (can be repeated)")
	bindFlagToConfig(flags.Lookup("exclude"), "paths.exclude")

	flags.Int64("timeout", 0, "per-mutation timeout in milliseconds (0 uses the config default)")
	bindFlagToConfig(flags.Lookup("timeout"), "run.mutation_timeout")

	flags.IntP("parallel", "p", 0, "number of parallel workers (0 uses the config default)")
	bindFlagToConfig(flags.Lookup("parallel"), "run.parallel")

	flags.StringP("output", "o", "", "report format: console|json|html")
	bindFlagToConfig(flags.Lookup("output"), "output")

	flags.String("report", "", "file path to write the report to (default: stdout)")
	bindFlagToConfig(flags.Lookup("report"), "report")

	flags.Bool("isolated", false, "judge mutations by re-parsing only, skipping the build tool")
	bindFlagToConfig(flags.Lookup("isolated"), "isolated")

	flags.Bool("no-cache", false, "disable hash-based change detection (re-test every source)")
	bindFlagToConfig(flags.Lookup("no-cache"), "no-cache")

	flags.String("shard", "", "shard index/total in the format INDEX/TOTAL (e.g. 0/3)")
	bindFlagToConfig(flags.Lookup("shard"), "shard")

	flags.Float64("threshold", 0, "minimum mutation score (0-100) for a successful exit code")
	bindFlagToConfig(flags.Lookup("threshold"), "threshold")
}

func runMutate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	cfg.NoColor = cfg.NoColor || viper.GetBool("no-color")
	cfg.Verbose = cfg.Verbose || viper.GetBool("verbose")

	config.ConfigureLogger(cfg.Log)

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	projectRoot, err := discover.FindProjectRoot(paths[0])
	if err != nil {
		return fmt.Errorf("find project root: %w", err)
	}

	sources, err := discover.Sources(paths, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	shardIndex, totalShards := parseShardFlag(cfg.Shard)
	sources = shardSources(sources, shardIndex, totalShards)

	var fileCache *cache.Cache
	if !cfg.NoCache {
		fileCache, err = cache.Load(projectRoot)
		if err != nil {
			return fmt.Errorf("load cache: %w", err)
		}
	}

	registry := operators.DefaultRegistry()

	originals := make(map[string][]byte)

	var allMutations []m.Mutation

	for _, file := range sources {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}

		if fileCache != nil {
			hash, herr := cache.HashFile(file)
			if herr != nil {
				return fmt.Errorf("hash %s: %w", file, herr)
			}

			unchanged := !fileCache.Changed(file, hash)
			fileCache.Record(file, hash)

			if unchanged {
				continue
			}
		}

		originals[file] = content

		root, perr := lean.Parse(file, content)
		if perr != nil && root == nil {
			continue // header failed to parse, no tree to mutate
		}

		mutations := mutate.Generate(registry, root, file, content, mutate.Options{
			Operators:       cfg.Operators,
			IncludePatterns: true,
		})

		for i := range mutations {
			mutations[i].ID = len(allMutations) + i
		}

		allMutations = append(allMutations, mutations...)
	}

	if fileCache != nil {
		if err := fileCache.Save(); err != nil {
			return fmt.Errorf("save cache: %w", err)
		}
	}

	disp := progress.New(cmd.ErrOrStderr(), cfg.NoColor)
	disp.Start(len(allMutations))

	ctx := context.Background()

	scheduleStart := time.Now()

	results, stats := schedule.Schedule(ctx, allMutations, originals, cfg, projectRoot, disp.Update)

	spill, err := pkg.NewFileSpill[m.MutationResult]()
	if err != nil {
		return fmt.Errorf("create result spill: %w", err)
	}
	defer func() { _ = spill.Close() }()

	for result := range results {
		if err := spill.Append(result); err != nil {
			return fmt.Errorf("spill mutation result: %w", err)
		}
	}

	stats.TotalTimeMs = time.Since(scheduleStart).Milliseconds()

	disp.Finish()

	collected := make([]m.MutationResult, 0, spill.Len())
	if err := spill.Range(func(_ uint64, r m.MutationResult) error {
		collected = append(collected, r)
		return nil
	}); err != nil {
		return fmt.Errorf("read spilled results: %w", err)
	}

	run := m.Run{
		Generator: "LeanMutator",
		Version:   "1.0",
		Stats:     *stats,
		Results:   collected,
		StartedAt: time.Now(),
	}

	out := cmd.OutOrStdout()
	if cfg.Report != "" {
		f, ferr := os.Create(cfg.Report)
		if ferr != nil {
			return fmt.Errorf("create report file: %w", ferr)
		}
		defer func() { _ = f.Close() }()

		out = f
	}

	if err := report.ForName(cfg.Output, cfg.NoColor).Render(run, out); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = 80
	}

	if run.Stats.Score() < threshold {
		os.Exit(1)
	}

	return nil
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	if _, err := fmt.Sscanf(shard, "%d/%d", &index, &total); err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

func shardSources(sources []string, index, total int) []string {
	if total <= 1 {
		return sources
	}

	var out []string

	for i, s := range sources {
		if i%total == index {
			out = append(out, s)
		}
	}

	return out
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}
