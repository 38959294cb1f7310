package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"leadscout/internal/config"
	"leadscout/internal/export"
	"leadscout/internal/extract"
	"leadscout/internal/ledger"
	"leadscout/internal/linkedin"
	"leadscout/internal/secrets"
)

type extractArgs struct {
	CompanyURL   string
	OutputPrefix string
	Format       string
	APIKey       string
	ConfigPath   string
	DataDir      string
}

func runExtract(ctx context.Context, log zerolog.Logger, args extractArgs) error {
	format, err := export.ParseFormat(args.Format)
	if err != nil {
		return err
	}

	dataDir, err := ensureDataDir(args.DataDir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	// One extraction at a time per data dir, so ledger writes and
	// output timestamps cannot interleave.
	lock := flock.New(filepath.Join(dataDir, "leadscout.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another extraction is already running in %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	cfgPath := args.ConfigPath
	if cfgPath == "" {
		cfgPath, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			return fmt.Errorf("config bootstrap: %w", err)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", cfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config (%s): %w", cfgPath, err)
	}

	apiKey, err := secrets.ResolveAPIKey(args.APIKey)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	client := linkedin.New(linkedin.Options{
		BaseURL:       cfg.API.BaseURL,
		APIKey:        apiKey,
		PageSize:      cfg.API.PageSize,
		MaxPages:      cfg.API.MaxPages,
		Attempts:      cfg.Retry.Attempts,
		BaseDelay:     cfg.BaseDelay(),
		RateLimitWait: cfg.RateLimitWait(),
		Timeout:       cfg.Timeout(),
		Pacer:         linkedin.NewPacer(cfg.API.RequestsPerSec, cfg.API.Burst),
		Logger:        log,
	})

	db, err := ledger.Open(filepath.Join(dataDir, "leadscout.db"))
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer db.Close()

	started := time.Now()
	log.Info().Str("company", args.CompanyURL).Msg("starting extraction")

	pipe := extract.NewPipeline(client, cfg, log)
	res, err := pipe.Run(ctx, args.CompanyURL)
	if err != nil {
		slug, _ := extract.CompanySlug(args.CompanyURL)
		recordRun(ctx, db, log, ledger.Run{
			ID:          runID,
			CompanySlug: slug,
			Status:      ledger.StatusFailed,
			Error:       err.Error(),
			StartedAt:   started,
			FinishedAt:  time.Now(),
		})
		return err
	}

	run := ledger.Run{
		ID:             runID,
		CompanySlug:    res.Company.Slug,
		CompanyName:    res.Company.Name,
		Employees:      res.Employees,
		DecisionMakers: len(res.DecisionMakers),
		Status:         ledger.StatusOK,
		StartedAt:      started,
	}

	if len(res.DecisionMakers) == 0 {
		run.FinishedAt = time.Now()
		recordRun(ctx, db, log, run)
		fmt.Println("No decision makers found.")
		return nil
	}

	w := export.Writer{Dir: "."}
	paths, err := w.Write(res.DecisionMakers, args.OutputPrefix, format)
	if err != nil {
		run.Status = ledger.StatusFailed
		run.Error = err.Error()
		run.FinishedAt = time.Now()
		recordRun(ctx, db, log, run)
		return err
	}

	run.Outputs = paths
	run.FinishedAt = time.Now()
	recordRun(ctx, db, log, run)

	fmt.Printf("Found %d decision makers.\n", len(res.DecisionMakers))
	for _, p := range paths {
		fmt.Printf("Results saved to %s\n", p)
	}
	return nil
}

func recordRun(ctx context.Context, db *ledger.DB, log zerolog.Logger, r ledger.Run) {
	if err := db.RecordRun(ctx, r); err != nil {
		log.Warn().Err(err).Msg("ledger write failed")
	}
}
