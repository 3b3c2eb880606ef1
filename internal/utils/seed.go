package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadSeedRecords reads the bundled listing dataset, a JSON array of raw
// table-API records. The in-memory store seeds itself from it at startup.
func ReadSeedRecords(path string) ([]map[string]interface{}, error) {
	filePath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seed data path: %v", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed data file %s: %v", filePath, err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed data from %s: %v", filePath, err)
	}
	return records, nil
}
