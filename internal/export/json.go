package export

import (
	"encoding/json"
	"fmt"
	"os"

	"leadscout/internal/domain"
)

func writeJSON(path string, records []domain.Employee) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	defer f.Close()

	if records == nil {
		records = []domain.Employee{}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
