// Package render converts fileinfo records into display lines.
//
// The three output formats form a closed set consumed by a single Render
// method: name only, size-prefixed, and long (ls -l style). Rendering is
// pure string construction; the caller decides where lines go.
package render

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/lsgo/internal/fileinfo"
	"github.com/harrison/lsgo/internal/identity"
)

// Format selects the output shape for one entry.
type Format int

// The closed set of output formats.
const (
	// FormatName prints the base name only.
	FormatName Format = iota
	// FormatWithSize prints a size token before the name.
	FormatWithSize
	// FormatLong prints permissions, links, owner, group, size, date, name.
	FormatLong
)

// Renderer turns records into lines of text. It holds the identity
// resolver explicitly rather than consulting any process-wide cache.
type Renderer struct {
	// Identity resolves uid/gid to names for the long format.
	Identity identity.Resolver
	// Human switches size tokens to human-readable units.
	Human bool
	// Color enables ANSI coloring of names.
	Color bool
}

// Render produces the display line for fi in the given format, without a
// trailing newline.
func (r *Renderer) Render(fi *fileinfo.FileInfo, format Format) string {
	switch format {
	case FormatWithSize:
		return r.sizeToken(fi) + " " + r.name(fi)
	case FormatLong:
		return r.longLine(fi)
	default:
		return r.name(fi)
	}
}

// sizeToken is the column printed by -s: the human-readable size, or the
// allocated size in KiB right-justified to 8 characters.
func (r *Renderer) sizeToken(fi *fileinfo.FileInfo) string {
	if r.Human {
		return HumanSize(uint64(fi.Size()))
	}
	return fmt.Sprintf("%8d", BlockKiB(fi.Blocks()))
}

// longLine composes the ls -l style line: type+permissions, hard links,
// owner, group, size, modification date, name (with symlink target).
func (r *Renderer) longLine(fi *fileinfo.FileInfo) string {
	perms := Permissions(fi)
	owner := r.Identity.UserName(fi.UID())
	group := r.Identity.GroupName(fi.GID())

	var size string
	if r.Human {
		size = HumanSize(uint64(fi.Size()))
	} else {
		size = strconv.FormatInt(fi.Size(), 10)
	}

	name := r.name(fi)
	if fi.IsSymlink() && fi.LinkTarget() != "" {
		name += " -> " + fi.LinkTarget()
	}

	return fmt.Sprintf("%s %3d %s %s %8s %s %s",
		perms, fi.Nlink(), owner, group, size, Timestamp(fi.ModTime()), name)
}

// Permissions renders the 10-character type and permission string, e.g.
// "drwxr-xr-x". The type character is d for directories, l for symlinks
// and - for everything else.
func Permissions(fi *fileinfo.FileInfo) string {
	var b strings.Builder

	switch fi.Type() {
	case fileinfo.TypeDir:
		b.WriteByte('d')
	case fileinfo.TypeSymlink:
		b.WriteByte('l')
	default:
		b.WriteByte('-')
	}

	perm := fi.Mode().Perm()
	b.WriteString(triplet(perm >> 6))
	b.WriteString(triplet(perm >> 3))
	b.WriteString(triplet(perm))
	return b.String()
}

// triplet renders the low three bits as "rwx" with dashes for unset bits.
func triplet(bits fs.FileMode) string {
	buf := []byte{'-', '-', '-'}
	if bits&0b100 != 0 {
		buf[0] = 'r'
	}
	if bits&0b010 != 0 {
		buf[1] = 'w'
	}
	if bits&0b001 != 0 {
		buf[2] = 'x'
	}
	return string(buf)
}

// Timestamp formats a modification time as abbreviated month, zero-padded
// day and 24-hour clock in local time, e.g. "Jan 05 10:30".
func Timestamp(t time.Time) string {
	return t.Format("Jan 02 15:04")
}

var sizeUnits = [...]string{"", "K", "M", "G", "T", "P"}

// HumanSize converts a byte count to a human-readable token: plain bytes
// right-justified to width 4 below 1 KiB, otherwise scaled by powers of
// 1024 with one decimal place below 10 and none at or above.
func HumanSize(size uint64) string {
	v := float64(size)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%4d", size)
	}
	if v >= 10 {
		return fmt.Sprintf("%3.0f%s", v, sizeUnits[unit])
	}
	return fmt.Sprintf("%3.1f%s", v, sizeUnits[unit])
}

// BlockKiB converts a 512-byte block count to KiB using ceiling division,
// the single rounding rule for both the -s column and the "total" line.
func BlockKiB(blocks uint64) uint64 {
	return (blocks*512 + 1023) / 1024
}

// name returns the (optionally colorized) base name.
func (r *Renderer) name(fi *fileinfo.FileInfo) string {
	if !r.Color {
		return fi.Name
	}
	return nameColor(fi).Sprint(fi.Name)
}

// nameColor picks the display color: directories blue, files with any
// execute bit red, world-readable files green, everything else white.
func nameColor(fi *fileinfo.FileInfo) *color.Color {
	mode := fi.Mode()
	switch {
	case fi.IsDir():
		return color.New(color.FgBlue)
	case mode&0o111 != 0:
		return color.New(color.FgRed)
	case mode&0o004 != 0:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}
