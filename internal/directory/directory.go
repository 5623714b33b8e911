// Package directory reads the immediate children of a directory into
// fileinfo records, filtering hidden entries and collecting per-entry
// failures without aborting the scan.
package directory

import (
	"os"
	"strings"

	"github.com/harrison/lsgo/internal/fileinfo"
)

// Listing contains the results of reading one directory.
type Listing struct {
	// Entries holds the records that were read successfully, in the order
	// the operating system returned them.
	Entries []*fileinfo.FileInfo
	// Errors holds per-entry metadata failures. Entries that failed are
	// dropped from Entries; the scan itself continues.
	Errors []error
}

// Read lists the immediate children of dir. Entries whose name starts with a
// period are skipped unless showAll is set. A failure to read the directory
// itself is returned as the error; individual entry failures are collected
// in the Listing.
func Read(dir string, showAll bool) (*Listing, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	listing := &Listing{}
	for _, entry := range children {
		if !showAll && strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fi, err := fileinfo.FromDirEntry(dir, entry)
		if err != nil {
			listing.Errors = append(listing.Errors, err)
			continue
		}
		listing.Entries = append(listing.Entries, fi)
	}

	return listing, nil
}

// Subdirectories returns the entries to recurse into: true directories whose
// names are not hidden. Symlinks to directories are excluded, so recursion
// never follows a link loop.
func Subdirectories(entries []*fileinfo.FileInfo) []*fileinfo.FileInfo {
	var dirs []*fileinfo.FileInfo
	for _, fi := range entries {
		if fi.IsDir() && !fi.IsHidden() {
			dirs = append(dirs, fi)
		}
	}
	return dirs
}
