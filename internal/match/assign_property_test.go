package match

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"podalign/internal/model"
)

// genTitle generates playlist-style titles: a body, optionally marked
// with a part prefix or a brand suffix.
func genTitle() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, 3),
		gen.OneConstOf(
			"The Ballad of Someone",
			"How It All Went Wrong",
			"The Quiet Years",
			"Episode： With Unicode？",
			"Completely Different",
		),
		gen.IntRange(1, 12),
	).Map(func(vals []interface{}) string {
		kind := vals[0].(int)
		body := vals[1].(string)
		part := vals[2].(int)

		switch kind {
		case 1:
			return fmt.Sprintf("Part %d: %s", part, body)
		case 2:
			return fmt.Sprintf("Pt %d: %s", part, body)
		case 3:
			return body + " | BEHIND THE BASTARDS"
		default:
			return body
		}
	})
}

func genTitles() gopter.Gen {
	return gen.SliceOf(genTitle())
}

func TestAssignProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.MaxSize = 16

	properties := gopter.NewProperties(parameters)

	assign := func(entries, bodies []string, workers int) ([]model.Match, bool) {
		files := make([]string, len(bodies))
		for i, b := range bodies {
			files[i] = b + ".mp3"
		}
		matches, err := Assign(context.Background(), entries, files, Options{TrimExt: ".mp3", Workers: workers})
		return matches, err == nil
	}

	properties.Property("one record per entry in playlist order", prop.ForAll(
		func(entries, bodies []string) bool {
			matches, ok := assign(entries, bodies, 1)
			if !ok || len(matches) != len(entries) {
				return false
			}
			for i, m := range matches {
				if m.Order != i+1 || m.PlaylistName != entries[i] {
					return false
				}
			}
			return true
		},
		genTitles(), genTitles(),
	))

	properties.Property("no file index is consumed twice", prop.ForAll(
		func(entries, bodies []string) bool {
			matches, ok := assign(entries, bodies, 1)
			if !ok {
				return false
			}
			seen := make(map[int]bool)
			for _, m := range matches {
				if !m.Matched() {
					continue
				}
				if m.FileIndex < 0 || m.FileIndex >= len(bodies) || seen[m.FileIndex] {
					return false
				}
				seen[m.FileIndex] = true
			}
			return true
		},
		genTitles(), genTitles(),
	))

	properties.Property("absent matches carry zero score and no index", prop.ForAll(
		func(entries, bodies []string) bool {
			matches, ok := assign(entries, bodies, 1)
			if !ok {
				return false
			}
			for _, m := range matches {
				if m.Matched() {
					if m.Score <= 0 || m.Score > 1 {
						return false
					}
					continue
				}
				if m.Score != 0 || m.FileIndex != -1 || m.File != "" {
					return false
				}
			}
			return true
		},
		genTitles(), genTitles(),
	))

	properties.Property("parallel scan equals sequential scan", prop.ForAll(
		func(entries, bodies []string) bool {
			sequential, ok := assign(entries, bodies, 1)
			if !ok {
				return false
			}
			parallel, ok := assign(entries, bodies, 4)
			if !ok {
				return false
			}
			return reflect.DeepEqual(sequential, parallel)
		},
		genTitles(), genTitles(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
