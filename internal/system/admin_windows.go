//go:build windows

package system

import "os"

// IsAdmin reports whether the process can modify the hosts file. Windows has
// no euid, so the check opens hostsPath for writing.
func IsAdmin(hostsPath string) bool {
	f, err := os.OpenFile(hostsPath, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
