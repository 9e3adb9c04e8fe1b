package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a browser Origin header matches one of the
// configured allowed_origins entries. An entry is a full origin
// ("https://pixico.example.com"), a bare host, or a "*.suffix" wildcard
// covering subdomains.
func originAllowed(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		switch {
		case p == "":
		case p == origin || p == host:
			return true
		case strings.HasPrefix(p, "*."):
			if strings.HasSuffix(host, p[1:]) {
				return true
			}
		}
	}
	return false
}
