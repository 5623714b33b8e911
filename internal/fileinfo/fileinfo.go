// Package fileinfo provides the metadata record for a single filesystem entry.
//
// A FileInfo is a point-in-time snapshot: every attribute is captured when the
// record is constructed and never re-read, so a later change to the underlying
// file is invisible to an existing record.
package fileinfo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// Type classifies a filesystem entry.
type Type int

// Entry type tags.
const (
	TypeRegular Type = iota
	TypeDir
	TypeSymlink
	TypeOther
)

// FileInfo is an immutable snapshot of one filesystem object's metadata.
// Path and Name are fixed at construction; Name is never recomputed from Path.
type FileInfo struct {
	// Path is the path the record was constructed from (relative or absolute).
	Path string
	// Name is the base name of the entry.
	Name string

	size       int64
	mode       fs.FileMode
	modTime    time.Time
	uid        uint32
	gid        uint32
	nlink      uint64
	blocks     uint64
	typ        Type
	linkTarget string
}

// FromPath builds a FileInfo for a single path using lstat semantics,
// so a symlink is described as a symlink rather than its target.
func FromPath(path string) (*FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return newFileInfo(path, filepath.Base(path), info), nil
}

// FromDirEntry builds a FileInfo for one entry of a directory listing.
// dir is the directory being read; the entry's path is dir joined with its name.
func FromDirEntry(dir string, entry os.DirEntry) (*FileInfo, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, entry.Name()), err)
	}
	return newFileInfo(filepath.Join(dir, entry.Name()), entry.Name(), info), nil
}

func newFileInfo(path, name string, info os.FileInfo) *FileInfo {
	fi := &FileInfo{
		Path:    path,
		Name:    name,
		size:    info.Size(),
		mode:    info.Mode(),
		modTime: info.ModTime(),
	}

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		fi.uid = st.Uid
		fi.gid = st.Gid
		fi.nlink = uint64(st.Nlink)
		if st.Blocks > 0 {
			fi.blocks = uint64(st.Blocks)
		}
	} else {
		// No raw stat data available: estimate blocks from the logical size.
		fi.nlink = 1
		fi.blocks = uint64((info.Size() + 511) / 512)
	}

	switch {
	case info.Mode().IsDir():
		fi.typ = TypeDir
	case info.Mode()&fs.ModeSymlink != 0:
		fi.typ = TypeSymlink
		if target, err := os.Readlink(path); err == nil {
			fi.linkTarget = target
		}
	case info.Mode().IsRegular():
		fi.typ = TypeRegular
	default:
		fi.typ = TypeOther
	}

	return fi
}

// Size returns the logical byte size.
func (fi *FileInfo) Size() int64 { return fi.size }

// Mode returns the file mode bits captured at construction.
func (fi *FileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the modification time captured at construction.
func (fi *FileInfo) ModTime() time.Time { return fi.modTime }

// UID returns the numeric owner id.
func (fi *FileInfo) UID() uint32 { return fi.uid }

// GID returns the numeric group id.
func (fi *FileInfo) GID() uint32 { return fi.gid }

// Nlink returns the hard-link count.
func (fi *FileInfo) Nlink() uint64 { return fi.nlink }

// Blocks returns the number of 512-byte allocation units the entry occupies.
func (fi *FileInfo) Blocks() uint64 { return fi.blocks }

// Type returns the entry's type tag.
func (fi *FileInfo) Type() Type { return fi.typ }

// IsDir reports whether the entry is a true directory (not a symlink to one).
func (fi *FileInfo) IsDir() bool { return fi.typ == TypeDir }

// IsSymlink reports whether the entry is a symbolic link.
func (fi *FileInfo) IsSymlink() bool { return fi.typ == TypeSymlink }

// IsHidden reports whether the base name starts with a period.
func (fi *FileInfo) IsHidden() bool { return strings.HasPrefix(fi.Name, ".") }

// LinkTarget returns the raw symlink target, or "" when the entry is not a
// symlink or the target could not be read. Broken links still report their
// target path.
func (fi *FileInfo) LinkTarget() string { return fi.linkTarget }
