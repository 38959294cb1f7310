package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidCompanyURL marks input URLs with no usable trailing path
// segment to name the company by.
var ErrInvalidCompanyURL = errors.New("company URL has no usable path segment")

// CompanySlug pulls the trailing non-empty path segment out of a
// company page URL: https://www.linkedin.com/company/acme-corp/ ->
// "acme-corp".
func CompanySlug(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidCompanyURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCompanyURL, err)
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	slug := segs[len(segs)-1]
	if slug == "" {
		return "", ErrInvalidCompanyURL
	}
	return slug, nil
}
