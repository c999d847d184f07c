package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/extraction-bench/constants"
)

// OutputPath returns explicit when set, otherwise an auto-generated
// timestamped path under dir: report_<task>_<YYYYMMDD_HHMMSS>.json.
func OutputPath(dir string, task constants.Task, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ts := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("report_%s_%s.json", task, ts))
}
