package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "leadscout.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndListRuns(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	first := Run{
		ID:             "run-1",
		CompanySlug:    "acme",
		CompanyName:    "Acme",
		Employees:      120,
		DecisionMakers: 7,
		Outputs:        []string{"decision_makers_20230501_100000.csv"},
		Status:         StatusOK,
		StartedAt:      base,
		FinishedAt:     base.Add(30 * time.Second),
	}
	second := Run{
		ID:          "run-2",
		CompanySlug: "globex",
		Status:      StatusFailed,
		Error:       "employees page 2: giving up after 4 attempts",
		StartedAt:   base.Add(time.Hour),
		FinishedAt:  base.Add(time.Hour + time.Second),
	}

	require.NoError(t, db.RecordRun(ctx, first))
	require.NoError(t, db.RecordRun(ctx, second))

	runs, err := db.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// newest first
	require.Equal(t, "run-2", runs[0].ID)
	require.Equal(t, StatusFailed, runs[0].Status)
	require.Equal(t, second.Error, runs[0].Error)
	require.Empty(t, runs[0].Outputs)

	require.Equal(t, first.ID, runs[1].ID)
	require.Equal(t, first.CompanySlug, runs[1].CompanySlug)
	require.Equal(t, first.CompanyName, runs[1].CompanyName)
	require.Equal(t, first.Employees, runs[1].Employees)
	require.Equal(t, first.DecisionMakers, runs[1].DecisionMakers)
	require.Equal(t, first.Outputs, runs[1].Outputs)
	require.True(t, first.StartedAt.Equal(runs[1].StartedAt))
	require.True(t, first.FinishedAt.Equal(runs[1].FinishedAt))
}

func TestListRuns_Limit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, db.RecordRun(ctx, Run{
			ID:          string(rune('a' + i)),
			CompanySlug: "acme",
			Status:      StatusOK,
			StartedAt:   base.Add(time.Duration(i) * time.Minute),
			FinishedAt:  base.Add(time.Duration(i)*time.Minute + time.Second),
		}))
	}

	runs, err := db.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "e", runs[0].ID)
	require.Equal(t, "d", runs[1].ID)
}

func TestRecordRun_DuplicateIDRejected(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	r := Run{ID: "run-1", CompanySlug: "acme", Status: StatusOK, StartedAt: time.Now(), FinishedAt: time.Now()}
	require.NoError(t, db.RecordRun(ctx, r))
	require.Error(t, db.RecordRun(ctx, r))
}
