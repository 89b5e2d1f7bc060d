package rename

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// ⚠️ ConflictReport aggregates every conflict found across a batch of pairs.
// A non-empty report means the batch must not be applied at all.
type ConflictReport struct {
	// ExistingTargets lists targets already present on disk
	ExistingTargets []string
	// DuplicateGroups lists targets claimed by more than one source
	DuplicateGroups []DuplicateGroup
}

// 👥 DuplicateGroup is a single target claimed by multiple sources.
type DuplicateGroup struct {
	Target  string
	Sources []string
}

// HasConflicts reports whether any conflict was found.
func (r ConflictReport) HasConflicts() bool {
	return len(r.ExistingTargets) > 0 || len(r.DuplicateGroups) > 0
}

// Count returns the total number of conflicts in the report.
func (r ConflictReport) Count() int {
	return len(r.ExistingTargets) + len(r.DuplicateGroups)
}

// CheckConflicts inspects the full pair set and reports every collision, not
// just the first. Two kinds are detected: a target that already exists on disk
// (including a target that is another pair's source — chained renames are
// rejected, os.Rename would otherwise overwrite the chain member silently),
// and two or more sources mapping to the same target. Read-only: only
// existence checks, no mutation.
func CheckConflicts(ctx context.Context, pairs []Pair) ConflictReport {
	logger := zerolog.Ctx(ctx)

	var report ConflictReport

	// Group sources by target, preserving first-seen order
	targets := make(map[string][]string, len(pairs))
	var order []string
	for _, pair := range pairs {
		if _, seen := targets[pair.Target]; !seen {
			order = append(order, pair.Target)
		}
		targets[pair.Target] = append(targets[pair.Target], pair.Source)
	}

	for _, target := range order {
		if _, err := os.Lstat(target); err == nil {
			report.ExistingTargets = append(report.ExistingTargets, target)
		}
	}

	for _, target := range order {
		sources := targets[target]
		if len(sources) > 1 {
			report.DuplicateGroups = append(report.DuplicateGroups, DuplicateGroup{
				Target:  target,
				Sources: sources,
			})
		}
	}

	logger.Debug().
		Int("pairs", len(pairs)).
		Int("existing_targets", len(report.ExistingTargets)).
		Int("duplicate_targets", len(report.DuplicateGroups)).
		Msg("checked batch for conflicts")

	return report
}
