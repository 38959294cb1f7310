package extract

import (
	"net/url"
	"sort"
	"strings"

	"leadscout/internal/domain"
)

// seenSet drops repeats across paginated results, keyed by the
// canonicalized profile URL and falling back to the record ID.
type seenSet map[string]bool

func (s seenSet) isNew(e domain.Employee) bool {
	key := canonicalizeProfileURL(e.ProfileURL)
	if key == "" {
		key = strings.TrimSpace(e.ID)
	}
	if key == "" {
		// Nothing to key on; keep the record rather than guess.
		return true
	}
	if s[key] {
		return false
	}
	s[key] = true
	return true
}

func canonicalizeProfileURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")

	// drop common tracking params
	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "trk" || lk == "trackingid" || lk == "mkt_tok" {
			q.Del(k)
		}
	}

	// deterministic query
	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}
