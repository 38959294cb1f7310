package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompanySlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "company page", input: "https://www.linkedin.com/company/acme-corp", want: "acme-corp"},
		{name: "trailing slash", input: "https://www.linkedin.com/company/acme-corp/", want: "acme-corp"},
		{name: "deep path", input: "https://example.com/a/b/c", want: "c"},
		{name: "query ignored", input: "https://www.linkedin.com/company/acme?trk=nav", want: "acme"},
		{name: "whitespace trimmed", input: "  https://example.com/acme  ", want: "acme"},
		{name: "bare host", input: "https://www.linkedin.com", wantErr: true},
		{name: "root path", input: "https://www.linkedin.com/", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompanySlug(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCompanyURL)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
