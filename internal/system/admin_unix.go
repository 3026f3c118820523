//go:build !windows

package system

import "golang.org/x/sys/unix"

// IsAdmin reports whether the process can modify the hosts file, which on
// Unix means write access to hostsPath for the real user.
func IsAdmin(hostsPath string) bool {
	return unix.Access(hostsPath, unix.W_OK) == nil
}
