package extract

import (
	"strings"

	"leadscout/internal/config"
	"leadscout/internal/domain"
)

// IsDecisionMaker tests the employee title against the keyword rules
// and reports the tag of the first rule that matched. Matching is
// case-insensitive substring.
func IsDecisionMaker(rules []config.Rule, e domain.Employee) (keep bool, tag string) {
	title := strings.ToLower(strings.TrimSpace(e.Title))
	if title == "" {
		return false, ""
	}

	for _, r := range rules {
		for _, needle := range r.Any {
			n := strings.ToLower(strings.TrimSpace(needle))
			if n == "" {
				continue
			}
			if strings.Contains(title, n) {
				return true, r.Tag
			}
		}
	}
	return false, ""
}
