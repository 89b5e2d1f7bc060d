package rename_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/rename"
)

func TestCheckConflicts_CleanBatch(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "old.txt")
	writeFile(t, source)

	report := rename.CheckConflicts(ctx, []rename.Pair{
		{Source: source, Target: filepath.Join(tmpDir, "new.txt")},
	})

	assert.False(t, report.HasConflicts())
	assert.Zero(t, report.Count())
}

func TestCheckConflicts_ExistingTarget(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	source := filepath.Join(tmpDir, "old.txt")
	target := filepath.Join(tmpDir, "new.txt")
	writeFile(t, source)
	writeFile(t, target)

	report := rename.CheckConflicts(ctx, []rename.Pair{
		{Source: source, Target: target},
	})

	require.True(t, report.HasConflicts())
	assert.Equal(t, []string{target}, report.ExistingTargets)
	assert.Empty(t, report.DuplicateGroups)
}

func TestCheckConflicts_DuplicateTargets(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	first := filepath.Join(tmpDir, "a_old.txt")
	second := filepath.Join(tmpDir, "a _old.txt")
	target := filepath.Join(tmpDir, "a.txt")
	writeFile(t, first)
	writeFile(t, second)

	report := rename.CheckConflicts(ctx, []rename.Pair{
		{Source: first, Target: target},
		{Source: second, Target: target},
	})

	require.True(t, report.HasConflicts())
	require.Len(t, report.DuplicateGroups, 1)
	assert.Equal(t, target, report.DuplicateGroups[0].Target)
	assert.Equal(t, []string{first, second}, report.DuplicateGroups[0].Sources,
		"sources should be listed in batch order")
}

// Chained renames (A→B where B is itself being renamed to C) are rejected via
// the existing-target rule: applying them in the wrong order would overwrite B.
func TestCheckConflicts_ChainedRename(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	fileA := filepath.Join(tmpDir, "a.txt")
	fileB := filepath.Join(tmpDir, "b.txt")
	writeFile(t, fileA)
	writeFile(t, fileB)

	report := rename.CheckConflicts(ctx, []rename.Pair{
		{Source: fileA, Target: fileB},
		{Source: fileB, Target: filepath.Join(tmpDir, "c.txt")},
	})

	require.True(t, report.HasConflicts())
	assert.Equal(t, []string{fileB}, report.ExistingTargets)
}

func TestCheckConflicts_AggregatesAllConflicts(t *testing.T) {
	ctx := testContext(t)
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "taken.txt")
	writeFile(t, existing)

	report := rename.CheckConflicts(ctx, []rename.Pair{
		{Source: filepath.Join(tmpDir, "taken_old.txt"), Target: existing},
		{Source: filepath.Join(tmpDir, "x_old.txt"), Target: filepath.Join(tmpDir, "x.txt")},
		{Source: filepath.Join(tmpDir, "x _old.txt"), Target: filepath.Join(tmpDir, "x.txt")},
	})

	assert.Equal(t, 2, report.Count(), "both conflict kinds should be reported together")
	assert.Equal(t, []string{existing}, report.ExistingTargets)
	require.Len(t, report.DuplicateGroups, 1)
	assert.Equal(t, filepath.Join(tmpDir, "x.txt"), report.DuplicateGroups[0].Target)
}
