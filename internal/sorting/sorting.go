// Package sorting orders file listings for display and for recursion.
package sorting

import (
	"sort"
	"strings"

	"github.com/harrison/lsgo/internal/fileinfo"
)

// Config selects the display sort order.
type Config struct {
	// ByTime sorts by modification time, newest first, instead of by name.
	ByTime bool
	// Reverse inverts the chosen order. Ties stay ties, so stability is
	// preserved in both directions.
	Reverse bool
}

// Entries sorts the slice in place according to cfg. The sort is stable:
// entries that compare equal keep their relative input order. The default
// key is the base name compared case-insensitively.
func Entries(entries []*fileinfo.FileInfo, cfg Config) {
	sort.SliceStable(entries, func(i, j int) bool {
		c := compare(entries[i], entries[j], cfg.ByTime)
		if cfg.Reverse {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b *fileinfo.FileInfo, byTime bool) int {
	if byTime {
		at, bt := a.ModTime(), b.ModTime()
		switch {
		case at.After(bt):
			return -1
		case bt.After(at):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Directories sorts subdirectories by raw base name, ascending and
// case-sensitive. Recursive traversal always uses this order so that
// nested output is deterministic regardless of the display sort.
func Directories(dirs []*fileinfo.FileInfo) {
	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].Name < dirs[j].Name
	})
}
