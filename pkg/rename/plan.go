package rename

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures one invocation of the rename pipeline.
type Options struct {
	// Find is the literal substring to match in filenames (required)
	Find string
	// Replace is the literal replacement (may be empty to remove the pattern)
	Replace string
	// Root is the directory to search under
	Root string
	// Recursive toggles traversal of nested subdirectories
	Recursive bool
	// Excludes are doublestar globs matched against root-relative paths
	Excludes []string
}

// Validate rejects invalid invocation parameters before any filesystem access.
func (o Options) Validate() error {
	if o.Find == "" {
		return errors.New("find pattern must not be empty")
	}
	if o.Root == "" {
		return errors.New("root path must not be empty")
	}
	return nil
}

// 🗺️ Plan is the outcome of the read-only pipeline stages for one batch.
type Plan struct {
	// Files are the discovered candidates
	Files []string
	// Pairs are the proposed renames, in discovery order
	Pairs []Pair
	// Conflicts is the aggregate conflict report for the batch
	Conflicts ConflictReport
}

// BuildPlan runs discovery, pair generation, and conflict detection without
// mutating anything. Apply is deliberately a separate call so the caller can
// gate it on dry-run, a clean conflict report, and user confirmation.
func BuildPlan(ctx context.Context, opts Options) (*Plan, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	files, err := FindFiles(ctx, opts.Root, opts.Recursive, opts.Excludes)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	pairs := GeneratePairs(ctx, files, opts.Find, opts.Replace)
	conflicts := CheckConflicts(ctx, pairs)

	return &Plan{
		Files:     files,
		Pairs:     pairs,
		Conflicts: conflicts,
	}, nil
}
