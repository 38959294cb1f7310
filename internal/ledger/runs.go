package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

type Run struct {
	ID             string
	CompanySlug    string
	CompanyName    string
	Employees      int
	DecisionMakers int
	Outputs        []string
	Status         string
	Error          string
	StartedAt      time.Time
	FinishedAt     time.Time
}

func (d *DB) RecordRun(ctx context.Context, r Run) error {
	outputs, _ := json.Marshal(r.Outputs)
	if r.Outputs == nil {
		outputs = []byte("[]")
	}

	_, err := d.pool.ExecContext(ctx, `
INSERT INTO runs (run_id, company_slug, company_name, employees, decision_makers, outputs, status, error, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID, r.CompanySlug, r.CompanyName, r.Employees, r.DecisionMakers,
		string(outputs), r.Status, r.Error,
		r.StartedAt.UTC().Format(time.RFC3339), r.FinishedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (d *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.pool.QueryContext(ctx, `
SELECT run_id, company_slug, company_name, employees, decision_makers, outputs, status, error, started_at, finished_at
FROM runs
ORDER BY started_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var outputsJSON, startedStr, finishedStr string
		if err := rows.Scan(
			&r.ID, &r.CompanySlug, &r.CompanyName, &r.Employees, &r.DecisionMakers,
			&outputsJSON, &r.Status, &r.Error, &startedStr, &finishedStr,
		); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		_ = json.Unmarshal([]byte(outputsJSON), &r.Outputs)
		r.StartedAt, _ = time.Parse(time.RFC3339, startedStr)
		r.FinishedAt, _ = time.Parse(time.RFC3339, finishedStr)
		out = append(out, r)
	}
	return out, rows.Err()
}
