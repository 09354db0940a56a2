package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"syshealth/model"
)

// Filename derives the output file name from the collection timestamp.
func Filename(t time.Time) string {
	return "SystemHealthCheck_" + t.Format("20060102_150405") + ".json"
}

// Write serializes the report to a timestamped JSON file under dir and
// returns the path it wrote.
func Write(dir string, r model.HealthReport, t time.Time) (string, error) {
	contents, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "serializing report")
	}

	path := filepath.Join(dir, Filename(t))
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", errors.Wrap(err, "writing report file")
	}

	return path, nil
}
