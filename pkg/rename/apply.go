// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rename

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ FailureReason classifies why a single rename failed.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	// ReasonNotFound means the source vanished since discovery
	ReasonNotFound
	// ReasonAlreadyExists means the target appeared since the conflict check
	ReasonAlreadyExists
	// ReasonPermissionDenied means the filesystem refused the rename
	ReasonPermissionDenied
	// ReasonOther covers everything else
	ReasonOther
)

// String returns a short human-readable label for the reason.
func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNotFound:
		return "not found"
	case ReasonAlreadyExists:
		return "already exists"
	case ReasonPermissionDenied:
		return "permission denied"
	default:
		return "other"
	}
}

// 📋 Result records the outcome of one attempted rename.
type Result struct {
	Pair   Pair
	Err    error
	Reason FailureReason
}

// Success reports whether the rename went through.
func (r Result) Success() bool {
	return r.Err == nil
}

// 📊 Summary counts outcomes across a batch of results.
type Summary struct {
	Succeeded int
	Failed    int
}

// Summarize tallies a result sequence into success and failure counts.
func Summarize(results []Result) Summary {
	var s Summary
	for _, result := range results {
		if result.Success() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// Apply performs the filesystem rename for each pair independently: a failure
// on one pair never aborts the rest. The caller must have already gated on an
// empty ConflictReport. Returns one Result per input pair in input order.
func Apply(ctx context.Context, pairs []Pair) []Result {
	logger := zerolog.Ctx(ctx)

	results := make([]Result, 0, len(pairs))
	for _, pair := range pairs {
		result := Result{Pair: pair}
		if err := renameOne(pair); err != nil {
			result.Err = err
			result.Reason = classifyFailure(err)
			logger.Debug().
				Err(err).
				Str("source", pair.Source).
				Str("target", pair.Target).
				Str("reason", result.Reason.String()).
				Msg("rename failed")
		} else {
			logger.Debug().
				Str("source", pair.Source).
				Str("target", pair.Target).
				Msg("renamed file")
		}
		results = append(results, result)
	}
	return results
}

// renameOne re-checks the target immediately before renaming: os.Rename
// overwrites an existing target on POSIX, so a target that appeared after the
// conflict check must fail instead of clobbering the file.
func renameOne(pair Pair) error {
	if _, err := os.Lstat(pair.Target); err == nil {
		return errors.Errorf("renaming %s: target %s: %w", pair.Source, pair.Target, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errors.Errorf("checking target %s: %w", pair.Target, err)
	}

	if err := os.Rename(pair.Source, pair.Target); err != nil {
		return errors.Errorf("renaming %s to %s: %w", pair.Source, pair.Target, err)
	}
	return nil
}

// classifyFailure maps a rename error onto the failure taxonomy.
func classifyFailure(err error) FailureReason {
	switch {
	case errors.Is(err, fs.ErrExist):
		return ReasonAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermissionDenied
	default:
		return ReasonOther
	}
}
