package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"leadscout/internal/domain"
)

var csvHeader = []string{"id", "first_name", "last_name", "title", "location", "profile_url"}

func writeCSV(path string, records []domain.Employee) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, e := range records {
		row := []string{e.ID, e.FirstName, e.LastName, e.Title, e.Location, e.ProfileURL}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
