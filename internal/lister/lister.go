// Package lister orchestrates the listing of one or more root paths:
// file-versus-directory dispatch, headers and blank lines, sorting,
// long-format totals and recursive descent into subdirectories.
package lister

import (
	"fmt"
	"io"

	"github.com/harrison/lsgo/internal/directory"
	"github.com/harrison/lsgo/internal/fileinfo"
	"github.com/harrison/lsgo/internal/identity"
	"github.com/harrison/lsgo/internal/logger"
	"github.com/harrison/lsgo/internal/render"
	"github.com/harrison/lsgo/internal/sorting"
)

// Options is the finalized flag set a run operates under.
type Options struct {
	Long          bool // -l: long listing format
	All           bool // -a: include hidden entries
	Size          bool // -s: size token before each name
	HumanReadable bool // -h: human-readable sizes
	Recursive     bool // -R: descend into subdirectories
	ByTime        bool // -t: sort by modification time
	Reverse       bool // -r: reverse the sort order
	OneColumn     bool // -1: one entry per line (the only layout produced)
}

// Lister lists root paths to an output writer, reporting recoverable
// failures to an error sink. One Lister serves one invocation; each
// directory call owns its own batch of records.
type Lister struct {
	opts      Options
	out       io.Writer
	errs      *logger.ErrorSink
	renderer  *render.Renderer
	sortCfg   sorting.Config
	format    render.Format
	multiRoot bool
}

// New builds a Lister. colorOutput should be true only when out is a
// terminal; resolver supplies owner and group names for the long format.
func New(opts Options, out io.Writer, errSink *logger.ErrorSink, resolver identity.Resolver, colorOutput bool) *Lister {
	format := render.FormatName
	switch {
	case opts.Long:
		format = render.FormatLong
	case opts.Size:
		format = render.FormatWithSize
	}

	return &Lister{
		opts: opts,
		out:  out,
		errs: errSink,
		renderer: &render.Renderer{
			Identity: resolver,
			Human:    opts.HumanReadable,
			Color:    colorOutput,
		},
		sortCfg: sorting.Config{ByTime: opts.ByTime, Reverse: opts.Reverse},
		format:  format,
	}
}

// Run lists every root path in order. A path that cannot be resolved
// produces one error line and does not stop the remaining paths; Run
// itself only fails on output errors, so a completed traversal reports
// success even when per-path errors occurred. A blank line separates
// each root's output from the previous one.
func (l *Lister) Run(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	l.multiRoot = len(paths) > 1

	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(l.out)
		}

		fi, err := fileinfo.FromPath(path)
		if err != nil {
			l.errs.Report(err)
			continue
		}

		if fi.IsDir() {
			l.listDir(path, 0)
			continue
		}
		fmt.Fprintln(l.out, l.renderer.Render(fi, l.format))
	}

	return nil
}

// listDir lists one directory at the given recursion depth. Headers are
// printed for every nested directory and, at depth 0, whenever more than
// one root path was requested.
func (l *Lister) listDir(dir string, depth int) {
	if l.multiRoot || depth > 0 {
		fmt.Fprintf(l.out, "%s:\n", dir)
	}

	listing, err := directory.Read(dir, l.opts.All)
	if err != nil {
		l.errs.Report(err)
		return
	}
	l.errs.Flush(listing.Errors)

	sorting.Entries(listing.Entries, l.sortCfg)

	if l.opts.Long {
		var blocks uint64
		for _, fi := range listing.Entries {
			blocks += fi.Blocks()
		}
		fmt.Fprintf(l.out, "total %d\n", render.BlockKiB(blocks))
	}

	for _, fi := range listing.Entries {
		fmt.Fprintln(l.out, l.renderer.Render(fi, l.format))
	}

	if !l.opts.Recursive {
		return
	}

	// Recursion order is fixed alphabetical, independent of the display
	// sort, so nested output stays deterministic.
	subdirs := directory.Subdirectories(listing.Entries)
	sorting.Directories(subdirs)
	for _, sub := range subdirs {
		fmt.Fprintln(l.out)
		l.listDir(sub.Path, depth+1)
	}
}
