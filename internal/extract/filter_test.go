package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"leadscout/internal/config"
	"leadscout/internal/domain"
)

func TestIsDecisionMaker(t *testing.T) {
	rules := config.Default().Filters.TitleRules

	tests := []struct {
		title string
		keep  bool
		tag   string
	}{
		{title: "CEO", keep: true, tag: "executive"},
		{title: "Chief Technology Officer", keep: true, tag: "executive"},
		{title: "vp of sales", keep: true, tag: "management"},
		{title: "Head of Marketing", keep: true, tag: "management"},
		{title: "Engineering Manager", keep: true, tag: "management"},
		{title: "Senior Engineer", keep: false},
		{title: "Sales Representative", keep: false},
		{title: "Intern", keep: false},
		{title: "", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			keep, tag := IsDecisionMaker(rules, domain.Employee{Title: tt.title})
			require.Equal(t, tt.keep, keep)
			require.Equal(t, tt.tag, tag)
		})
	}
}

func TestIsDecisionMaker_FiltersRecords(t *testing.T) {
	rules := config.Default().Filters.TitleRules
	records := []domain.Employee{
		{Title: "Senior Engineer"},
		{Title: "VP of Sales"},
	}

	var kept []domain.Employee
	for _, e := range records {
		if keep, _ := IsDecisionMaker(rules, e); keep {
			kept = append(kept, e)
		}
	}

	require.Len(t, kept, 1)
	require.Equal(t, "VP of Sales", kept[0].Title)
}

func TestIsDecisionMaker_SkipsBlankNeedles(t *testing.T) {
	rules := []config.Rule{{Tag: "x", Any: []string{"", "  ", "ceo"}}}

	keep, tag := IsDecisionMaker(rules, domain.Employee{Title: "Deputy CEO"})
	require.True(t, keep)
	require.Equal(t, "x", tag)

	// blank needles must never match everything
	keep, _ = IsDecisionMaker(rules, domain.Employee{Title: "Barista"})
	require.False(t, keep)
}
