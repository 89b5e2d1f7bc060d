package rename

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// 🔄 Pair maps a source file to its computed target path.
type Pair struct {
	// Source is the file as it exists on disk
	Source string
	// Target is the path after substring substitution on the filename
	Target string
	// Replacements is the number of occurrences that were substituted
	Replacements int
}

// GeneratePairs inspects only the filename component of each file and emits a
// pair for every file whose name contains find, replacing each non-overlapping
// occurrence with replace. The directory component is never touched. Files
// whose name does not contain find are silently skipped, as is the degenerate
// case where the substituted name equals the original. Output order matches
// input order. The caller guarantees find is non-empty.
func GeneratePairs(ctx context.Context, files []string, find, replace string) []Pair {
	logger := zerolog.Ctx(ctx)

	var pairs []Pair
	for _, file := range files {
		dir, name := filepath.Split(file)
		if !strings.Contains(name, find) {
			continue
		}

		newName := strings.ReplaceAll(name, find, replace)
		if newName == name {
			// find == replace, renaming would be a no-op
			continue
		}

		pairs = append(pairs, Pair{
			Source:       file,
			Target:       filepath.Join(dir, newName),
			Replacements: strings.Count(name, find),
		})
	}

	logger.Debug().
		Str("find", find).
		Str("replace", replace).
		Int("candidates", len(files)).
		Int("pairs", len(pairs)).
		Msg("generated rename pairs")

	return pairs
}
