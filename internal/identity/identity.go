// Package identity maps numeric user and group ids to display names.
//
// Resolution is best-effort: an id with no name mapping degrades to its
// decimal representation, never to an error. The resolver is passed
// explicitly to the render layer; there is no process-wide cache.
package identity

import (
	"os/user"
	"strconv"
)

// Resolver resolves numeric ids to display names.
type Resolver interface {
	// UserName returns the name for uid, or the decimal id when no
	// mapping exists.
	UserName(uid uint32) string
	// GroupName returns the name for gid, or the decimal id when no
	// mapping exists.
	GroupName(gid uint32) string
}

type osResolver struct{}

// NewOSResolver returns a Resolver backed by the operating system's
// user and group databases.
func NewOSResolver() Resolver { return osResolver{} }

func (osResolver) UserName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	u, err := user.LookupId(id)
	if err != nil || u.Username == "" {
		return id
	}
	return u.Username
}

func (osResolver) GroupName(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	g, err := user.LookupGroupId(id)
	if err != nil || g.Name == "" {
		return id
	}
	return g.Name
}

// Static is a fixed-table Resolver, used by tests to make rendered
// owner and group columns deterministic.
type Static struct {
	Users  map[uint32]string
	Groups map[uint32]string
}

// UserName implements Resolver.
func (s Static) UserName(uid uint32) string {
	if name, ok := s.Users[uid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(uid), 10)
}

// GroupName implements Resolver.
func (s Static) GroupName(gid uint32) string {
	if name, ok := s.Groups[gid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(gid), 10)
}
