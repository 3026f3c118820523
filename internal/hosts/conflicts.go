package hosts

import (
	"slices"
	"strings"
)

// Occurrence locates one mapping of a domain inside a document.
type Occurrence struct {
	Index int    `json:"index"`
	IP    string `json:"ip"`
}

// Conflict is a domain that is mapped to more than one distinct IP.
type Conflict struct {
	Domain  string       `json:"domain"`
	Entries []Occurrence `json:"entries"`
}

// Conflicts returns every domain (compared case-insensitively) that appears
// with at least two different IPs, sorted by domain. Disabled entries are
// included since enabling them would create the conflict.
func Conflicts(doc Document) []Conflict {
	byDomain := make(map[string][]Occurrence)
	for i, e := range doc.Entries {
		for _, d := range e.Domains {
			key := strings.ToLower(d)
			byDomain[key] = append(byDomain[key], Occurrence{Index: i, IP: e.IP})
		}
	}

	conflicts := []Conflict{}
	for domain, occ := range byDomain {
		if distinctIPs(occ) > 1 {
			conflicts = append(conflicts, Conflict{Domain: domain, Entries: occ})
		}
	}
	slices.SortFunc(conflicts, func(a, b Conflict) int {
		return strings.Compare(a.Domain, b.Domain)
	})
	return conflicts
}

func distinctIPs(occ []Occurrence) int {
	seen := make(map[string]struct{}, len(occ))
	for _, o := range occ {
		seen[o.IP] = struct{}{}
	}
	return len(seen)
}

// Search returns the indices of entries whose IP, any domain, or comment
// contains query, ignoring case. An empty query matches every entry.
func Search(doc Document, query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := []int{}
	for i, e := range doc.Entries {
		if q == "" || entryMatches(e, q) {
			matches = append(matches, i)
		}
	}
	return matches
}

func entryMatches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.IP), q) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Comment), q) {
		return true
	}
	return slices.ContainsFunc(e.Domains, func(d string) bool {
		return strings.Contains(strings.ToLower(d), q)
	})
}
