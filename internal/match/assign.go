package match

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"podalign/internal/model"
)

// Options tunes a matching pass.
type Options struct {
	// TrimExt is the extension stripped from candidate filenames
	// before scoring, e.g. ".mp3". Recorded matches keep the full
	// filename. Empty means candidates are scored as-is.
	TrimExt string

	// Workers is the number of goroutines scoring candidates for a
	// single entry. Values below 2 keep the scan sequential. The
	// selected match is identical either way.
	Workers int
}

// Assign pairs every playlist entry with its best-scoring unused
// file, preserving playlist order.
//
// For each entry in turn, all files not yet consumed by an earlier
// entry are scored against it and the highest-scoring one is taken;
// on equal scores the earliest file index wins. Once taken, a file is
// unavailable to every later entry. An entry whose candidates all
// score zero, or that finds the pool exhausted, is recorded as an
// absent match.
//
// The result has exactly one record per entry, in entry order, and no
// file index appears in more than one record.
func Assign(ctx context.Context, entries, files []string, opts Options) ([]model.Match, error) {
	keys := make([]string, len(files))
	for i, f := range files {
		keys[i] = strings.TrimSuffix(f, opts.TrimExt)
	}

	matches := make([]model.Match, 0, len(entries))
	used := make([]bool, len(files))
	scores := make([]float64, len(files))

	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := scoreUnused(ctx, entry, keys, used, scores, opts.Workers); err != nil {
			return nil, err
		}

		best := -1
		bestScore := 0.0
		for j := range keys {
			if used[j] {
				continue
			}
			if scores[j] > bestScore {
				bestScore = scores[j]
				best = j
			}
		}

		if best < 0 {
			matches = append(matches, model.NewAbsentMatch(i+1, entry))
			continue
		}

		used[best] = true
		matches = append(matches, model.NewMatch(i+1, entry, files[best], bestScore, best))
	}

	return matches, nil
}

// scoreUnused fills scores[j] for every unused candidate key. Entries
// for used candidates are left stale; callers must skip them. The
// scan fans out over workers goroutines when workers > 1, writing to
// disjoint slice slots.
func scoreUnused(ctx context.Context, entry string, keys []string, used []bool, scores []float64, workers int) error {
	if workers < 2 {
		for j, key := range keys {
			if used[j] {
				continue
			}
			scores[j] = Score(entry, key)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for j, key := range keys {
		if used[j] {
			continue
		}
		j, key := j, key // capture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[j] = Score(entry, key)
			return nil
		})
	}

	return g.Wait()
}
