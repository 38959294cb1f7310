package export

import (
	"fmt"
	"path/filepath"
	"time"

	"leadscout/internal/domain"

	"golang.org/x/sync/errgroup"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatBoth Format = "both"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatBoth:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected csv|json|both)", s)
	}
}

// Writer emits timestamped result files into Dir. Now is swappable so
// tests get stable filenames.
type Writer struct {
	Dir string
	Now func() time.Time
}

// Write produces <prefix>_<YYYYMMDD_HHMMSS>.{csv,json} per the format
// and returns the paths written. Both files carry the same timestamp.
func (w Writer) Write(records []domain.Employee, prefix string, format Format) ([]string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	stamp := now().Format("20060102_150405")
	base := filepath.Join(w.Dir, fmt.Sprintf("%s_%s", prefix, stamp))

	var paths []string
	var g errgroup.Group

	if format == FormatCSV || format == FormatBoth {
		p := base + ".csv"
		paths = append(paths, p)
		g.Go(func() error { return writeCSV(p, records) })
	}
	if format == FormatJSON || format == FormatBoth {
		p := base + ".json"
		paths = append(paths, p)
		g.Go(func() error { return writeJSON(p, records) })
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
