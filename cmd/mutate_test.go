package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/gooze/internal/report"
)

func TestMutateCmd_RunsIsolatedAndWritesJSONReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "add.lean"), []byte(`def add (x y : Nat) : Nat := x + y`), 0o644))

	cmd := baseRootCmd()
	cmd.AddCommand(newMutateCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"mutate", dir,
		"--isolated",
		"--output", "json",
		"--threshold", "-1",
		"--parallel", "1",
	})

	err := cmd.Execute()

	require.NoError(t, err)
	require.Contains(t, out.String(), `"generator":"LeanMutator"`)
}

func TestMutateCmd_ReportsNonZeroTotalTime(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		name := filepath.Join(dir, "f"+strconv.Itoa(i)+".lean")
		require.NoError(t, os.WriteFile(name, []byte(`def f (x y : Nat) : Nat := x + y`), 0o644))
	}

	cmd := baseRootCmd()
	cmd.AddCommand(newMutateCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"mutate", dir,
		"--isolated",
		"--output", "json",
		"--threshold", "-1",
		"--parallel", "1",
	})

	require.NoError(t, cmd.Execute())

	run, err := report.LoadJSON(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Greater(t, run.Stats.TotalTimeMs, int64(0))
}

func TestMutateCmd_ShardFlagRunsOnlyAssignedSlice(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.lean", "b.lean", "c.lean", "d.lean"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`def f (x : Nat) : Nat := x + 1`), 0o644))
	}

	cmd := baseRootCmd()
	cmd.AddCommand(newMutateCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"mutate", dir,
		"--isolated",
		"--output", "json",
		"--threshold", "-1",
		"--shard", "0/2",
	})

	err := cmd.Execute()
	require.NoError(t, err)
}

func TestMutateCmd_WritesReportToFileWhenReportFlagSet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "add.lean"), []byte(`def add (x y : Nat) : Nat := x + y`), 0o644))
	reportPath := filepath.Join(dir, "out.json")

	cmd := baseRootCmd()
	cmd.AddCommand(newMutateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"mutate", dir,
		"--isolated",
		"--output", "json",
		"--threshold", "-1",
		"--report", reportPath,
	})

	err := cmd.Execute()
	require.NoError(t, err)

	data, rerr := os.ReadFile(reportPath)
	require.NoError(t, rerr)
	require.Contains(t, string(data), `"generator":"LeanMutator"`)
}

func TestParseShardFlag_EmptyMeansSingleShard(t *testing.T) {
	index, total := parseShardFlag("")
	require.Equal(t, 0, index)
	require.Equal(t, 1, total)
}

func TestParseShardFlag_ParsesIndexAndTotal(t *testing.T) {
	index, total := parseShardFlag("1/3")
	require.Equal(t, 1, index)
	require.Equal(t, 3, total)
}

func TestParseShardFlag_InvalidFallsBackToSingleShard(t *testing.T) {
	for _, shard := range []string{"garbage", "5/3", "-1/3", "2/0"} {
		index, total := parseShardFlag(shard)
		require.Equal(t, 0, index, shard)
		require.Equal(t, 1, total, shard)
	}
}

func TestShardSources_DistributesRoundRobin(t *testing.T) {
	sources := []string{"a", "b", "c", "d", "e"}

	shard0 := shardSources(sources, 0, 2)
	shard1 := shardSources(sources, 1, 2)

	require.Equal(t, []string{"a", "c", "e"}, shard0)
	require.Equal(t, []string{"b", "d"}, shard1)
}

func TestShardSources_TotalOfOneOrLessReturnsAllUnchanged(t *testing.T) {
	sources := []string{"a", "b"}
	require.Equal(t, sources, shardSources(sources, 0, 1))
	require.Equal(t, sources, shardSources(sources, 0, 0))
}
