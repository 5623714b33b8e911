// Package cmd defines the lsgo command-line surface.
package cmd

import (
	"os"

	"github.com/harrison/lsgo/internal/identity"
	"github.com/harrison/lsgo/internal/lister"
	"github.com/harrison/lsgo/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lsgo
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsgo [flags] [path...]",
		Short: "List directory contents",
		Long: `lsgo lists the contents of directories, mirroring the Unix ls utility.

With no path arguments the current directory is listed. Hidden entries
(names starting with a period) are skipped unless -a is given. Output is
sorted by name, case-insensitively, or by modification time with -t.

Examples:
  lsgo                     # list the current directory
  lsgo -la /etc            # long format including hidden entries
  lsgo -lh ~/Downloads     # long format with human-readable sizes
  lsgo -R src docs         # recurse into two trees
  lsgo -ltr /var/log       # oldest-modified last`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runList,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolP("long", "l", false, "use a long listing format")
	flags.BoolP("all", "a", false, "show hidden entries (names starting with .)")
	flags.BoolP("size", "s", false, "print the allocated size of each entry, in 1K blocks")
	flags.BoolP("human-readable", "h", false, "print sizes in human-readable form (e.g. 1.0K, 234M)")
	flags.BoolP("recursive", "R", false, "list subdirectories recursively")
	flags.BoolP("time", "t", false, "sort by modification time, newest first")
	flags.BoolP("reverse", "r", false, "reverse order while sorting")
	flags.BoolP("one-column", "1", false, "list one entry per line")
	// Claim the help flag by name so -h stays free for --human-readable;
	// cobra still honors --help.
	flags.Bool("help", false, "help for lsgo")

	return cmd
}

// runList resolves the flag set into lister options and runs the listing.
func runList(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	var opts lister.Options
	opts.Long, _ = flags.GetBool("long")
	opts.All, _ = flags.GetBool("all")
	opts.Size, _ = flags.GetBool("size")
	opts.HumanReadable, _ = flags.GetBool("human-readable")
	opts.Recursive, _ = flags.GetBool("recursive")
	opts.ByTime, _ = flags.GetBool("time")
	opts.Reverse, _ = flags.GetBool("reverse")
	opts.OneColumn, _ = flags.GetBool("one-column")

	out := cmd.OutOrStdout()
	colorOutput := false
	if f, ok := out.(*os.File); ok {
		colorOutput = isatty.IsTerminal(f.Fd())
	}

	sink := logger.NewErrorSink(cmd.ErrOrStderr())
	l := lister.New(opts, out, sink, identity.NewOSResolver(), colorOutput)
	return l.Run(args)
}
