package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	ioutils "podalign/internal/io"
	"podalign/internal/listing"
	"podalign/internal/model"
)

// Action describes what Plan decided for one matched file.
type Action int

const (
	// ActionRename moves the file to its order-prefixed name.
	ActionRename Action = iota

	// ActionSkip leaves the file alone because it already carries an
	// order prefix from a previous run.
	ActionSkip

	// ActionMissing flags a file whose full path is not in the
	// listing, so it cannot be renamed.
	ActionMissing
)

// Op is one planned rename operation.
type Op struct {
	// Order is the playlist position driving the prefix.
	Order int

	// Name is the current filename.
	Name string

	// NewName is the filename with the order prefix applied.
	NewName string

	// Src and Dst are the full paths involved. Empty for
	// ActionMissing ops.
	Src string
	Dst string

	// Action is what Apply should do with this op.
	Action Action
}

// Summary tallies an Apply pass.
type Summary struct {
	// Renamed counts files renamed, or that would be renamed during
	// a dry run.
	Renamed int

	// Skipped counts files that already carried an order prefix.
	Skipped int

	// Errors counts files that could not be renamed.
	Errors int
}

// Plan lays out the rename operations for a set of matches.
//
// Each matched file gets an op in match order. Files already carrying
// a zero-padded order prefix are planned as skips so the pass stays
// idempotent. Files whose path cannot be resolved against the listing
// entries are planned as missing. Absent matches have no file and
// produce no op.
//
// padWidth is the minimum digit count of the prefix; an order wider
// than padWidth keeps all its digits.
func Plan(matches []model.Match, entries []listing.Entry, padWidth int) []Op {
	if padWidth < 1 {
		padWidth = 1
	}
	prefixed := regexp.MustCompile(fmt.Sprintf(`^\d{%d}_`, padWidth))

	var ops []Op
	for _, m := range matches {
		if !m.Matched() {
			continue
		}

		op := Op{
			Order:   m.Order,
			Name:    m.File,
			NewName: fmt.Sprintf("%0*d_%s", padWidth, m.Order, m.File),
		}

		if prefixed.MatchString(m.File) {
			op.Action = ActionSkip
			ops = append(ops, op)
			continue
		}

		path, ok := listing.FindPath(entries, m.File)
		if !ok {
			op.Action = ActionMissing
			ops = append(ops, op)
			continue
		}

		op.Src = path
		op.Dst = filepath.Join(filepath.Dir(path), op.NewName)
		ops = append(ops, op)
	}
	return ops
}

// Apply runs the planned operations in order.
//
// With execute false this is a dry run: nothing touches the
// filesystem and every ActionRename op counts as renamed. With
// execute true each rename is performed, falling back to copy and
// delete when a direct rename is not possible.
//
// fn, when non-nil, is called once per op with the error that
// occurred, nil on success. Skips and missing paths report a nil
// error; their outcome is in the op's Action.
func Apply(ctx context.Context, ops []Op, execute bool, fn func(Op, error)) Summary {
	var sum Summary

	notify := func(op Op, err error) {
		if fn != nil {
			fn(op, err)
		}
	}

	for _, op := range ops {
		switch op.Action {
		case ActionSkip:
			sum.Skipped++
			notify(op, nil)

		case ActionMissing:
			sum.Errors++
			notify(op, nil)

		default:
			if !execute {
				sum.Renamed++
				notify(op, nil)
				continue
			}
			if err := move(ctx, op.Src, op.Dst); err != nil {
				sum.Errors++
				notify(op, err)
				continue
			}
			sum.Renamed++
			notify(op, nil)
		}
	}

	return sum
}

// move renames src to dst, copying and deleting when the rename
// fails, e.g. across filesystem boundaries.
func move(ctx context.Context, src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		return err
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := ioutils.CopyFile(ctx, src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
