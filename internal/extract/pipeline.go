package extract

import (
	"context"
	"fmt"

	"leadscout/internal/config"
	"leadscout/internal/domain"

	"github.com/rs/zerolog"
)

// Directory is the upstream API surface the pipeline consumes.
type Directory interface {
	LookupCompany(ctx context.Context, companyURL string) (domain.Company, error)
	AllEmployees(ctx context.Context, companyID string) ([]domain.Employee, error)
}

type Pipeline struct {
	dir    Directory
	rules  []config.Rule
	dedupe bool
	log    zerolog.Logger
}

// Result is what one extraction run produced. DecisionMakers keeps the
// API return order across pages.
type Result struct {
	Company        domain.Company
	Employees      int
	DecisionMakers []domain.Employee
}

func NewPipeline(dir Directory, cfg config.Config, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		dir:    dir,
		rules:  cfg.Filters.TitleRules,
		dedupe: cfg.Filters.Dedupe,
		log:    log,
	}
}

// Run resolves the company URL, fetches every employee page, and
// filters down to decision makers. Any upstream failure aborts the
// run with no partial result.
func (p *Pipeline) Run(ctx context.Context, companyURL string) (Result, error) {
	slug, err := CompanySlug(companyURL)
	if err != nil {
		return Result{}, err
	}

	company, err := p.dir.LookupCompany(ctx, companyURL)
	if err != nil {
		return Result{}, fmt.Errorf("resolve company %q: %w", slug, err)
	}
	company.Slug = slug
	p.log.Info().
		Str("slug", slug).
		Str("company_id", company.ID).
		Str("company", company.Name).
		Msg("company resolved")

	employees, err := p.dir.AllEmployees(ctx, company.ID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch employees for %q: %w", slug, err)
	}

	seen := seenSet{}
	var keepers []domain.Employee
	for _, e := range employees {
		keep, tag := IsDecisionMaker(p.rules, e)
		if !keep {
			continue
		}
		if p.dedupe && !seen.isNew(e) {
			p.log.Debug().
				Str("profile", e.ProfileURL).
				Str("title", e.Title).
				Msg("duplicate record dropped")
			continue
		}
		p.log.Debug().
			Str("title", e.Title).
			Str("rule", tag).
			Msg("decision maker matched")
		keepers = append(keepers, e)
	}

	p.log.Info().
		Int("employees", len(employees)).
		Int("decision_makers", len(keepers)).
		Msg("filtering complete")

	return Result{
		Company:        company,
		Employees:      len(employees),
		DecisionMakers: keepers,
	}, nil
}
