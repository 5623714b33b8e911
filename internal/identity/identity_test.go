package identity

import (
	"os"
	"testing"
)

func TestOSResolverCurrentUser(t *testing.T) {
	r := NewOSResolver()

	name := r.UserName(uint32(os.Getuid()))
	if name == "" {
		t.Error("UserName() for the current uid should never be empty")
	}

	group := r.GroupName(uint32(os.Getgid()))
	if group == "" {
		t.Error("GroupName() for the current gid should never be empty")
	}
}

func TestOSResolverFallsBackToNumeric(t *testing.T) {
	r := NewOSResolver()

	// An id this large has no mapping on any sane system.
	if got := r.UserName(4294967294); got != "4294967294" {
		t.Errorf("UserName(4294967294) = %q, want numeric fallback", got)
	}
	if got := r.GroupName(4294967294); got != "4294967294" {
		t.Errorf("GroupName(4294967294) = %q, want numeric fallback", got)
	}
}

func TestStaticResolver(t *testing.T) {
	r := Static{
		Users:  map[uint32]string{1000: "alice"},
		Groups: map[uint32]string{1000: "staff"},
	}

	if got := r.UserName(1000); got != "alice" {
		t.Errorf("UserName(1000) = %q, want alice", got)
	}
	if got := r.GroupName(1000); got != "staff" {
		t.Errorf("GroupName(1000) = %q, want staff", got)
	}
	if got := r.UserName(42); got != "42" {
		t.Errorf("UserName(42) = %q, want numeric fallback", got)
	}
	if got := r.GroupName(42); got != "42" {
		t.Errorf("GroupName(42) = %q, want numeric fallback", got)
	}
}
