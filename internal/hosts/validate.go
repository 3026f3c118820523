package hosts

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

// ErrInvalidEntry is wrapped by every error returned from ValidateEntry and
// ValidateDocument.
var ErrInvalidEntry = errors.New("invalid entry")

// ValidateEntry checks a user-supplied entry before it is added to a document.
// Parse never validates; this is for entries created by hand.
func ValidateEntry(e Entry) error {
	if _, err := netip.ParseAddr(strings.TrimSpace(e.IP)); err != nil {
		return fmt.Errorf("%w: invalid IP address %q", ErrInvalidEntry, e.IP)
	}
	if len(e.Domains) == 0 {
		return fmt.Errorf("%w: at least one domain is required", ErrInvalidEntry)
	}
	for _, d := range e.Domains {
		if !IsValidHostname(d) {
			return fmt.Errorf("%w: invalid hostname %q", ErrInvalidEntry, d)
		}
	}
	if strings.ContainsAny(e.Comment, "\r\n") {
		return fmt.Errorf("%w: comment must be a single line", ErrInvalidEntry)
	}
	return nil
}

// ValidateDocument checks that every entry in a client-supplied document can
// be written and read back as the same entry. It is looser than ValidateEntry
// so that anything Parse produced is accepted again: the IP and each domain
// must be a single token without '#', there must be at least one domain, and
// the comment must fit on one line.
func ValidateDocument(doc Document) error {
	for i, e := range doc.Entries {
		if !isToken(e.IP) {
			return fmt.Errorf("%w: entry %d: invalid IP address %q", ErrInvalidEntry, i, e.IP)
		}
		if len(e.Domains) == 0 {
			return fmt.Errorf("%w: entry %d: at least one domain is required", ErrInvalidEntry, i)
		}
		for _, d := range e.Domains {
			if !isToken(d) {
				return fmt.Errorf("%w: entry %d: invalid hostname %q", ErrInvalidEntry, i, d)
			}
		}
		if strings.ContainsAny(e.Comment, "\r\n") {
			return fmt.Errorf("%w: entry %d: comment must be a single line", ErrInvalidEntry, i)
		}
	}
	return nil
}

// isToken reports whether s survives the line splitter as one field.
func isToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n\v\f#")
}

// IsValidHostname performs basic validation of a hostname. Unlike DNS zone
// names, single-label names such as "localhost" are allowed.
func IsValidHostname(name string) bool {
	name = strings.TrimSuffix(name, ".")
	if name == "" || len(name) > 253 {
		return false
	}

	for label := range strings.SplitSeq(name, ".") {
		if label == "" || len(label) > 63 {
			return false
		}

		// Labels must start and end with alphanumeric
		if !isAlphaNum(label[0]) || !isAlphaNum(label[len(label)-1]) {
			return false
		}

		for i := 0; i < len(label); i++ {
			c := label[i]
			if !isAlphaNum(c) && c != '-' && c != '_' {
				return false
			}
		}
	}

	return true
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
