// SPDX-License-Identifier: GPL-3.0-or-later
package mailet

import "strings"

// LocalServerList answers whether a domain is one this server is
// authoritative for. Entries are matched case-insensitively.
type LocalServerList struct {
	domains map[string]bool
}

func NewLocalServerList(domains []string) LocalServerList {
	normalized := make(map[string]bool, len(domains))
	for _, domain := range domains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if len(domain) == 0 {
			continue
		}
		normalized[domain] = true
	}

	return LocalServerList{domains: normalized}
}

func (l LocalServerList) IsLocalServer(domain string) bool {
	return l.domains[strings.ToLower(strings.TrimSpace(domain))]
}
