package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/finbooks/ledger_core/internal/apperrors"
)

// Options controls CSV serialization details that vary per deployment.
type Options struct {
	// UseCRLF selects \r\n record terminators instead of \n.
	UseCRLF bool
	// DateFormat is the layout used when building export filenames.
	DateFormat string
}

// DefaultOptions matches the dashboard's historical export behaviour.
func DefaultOptions() Options {
	return Options{DateFormat: "2006-01-02"}
}

// ToCSV serialises headers and rows to CSV text. Fields containing a comma,
// a double quote, or a line break are quoted with internal quotes doubled;
// everything else is written bare. Row order exactly matches the input
// order; no sorting or filtering happens here.
//
// Every row must carry the same number of fields as the header; a mismatch
// is a contract violation by the caller, not a data condition.
func ToCSV(headers []string, rows [][]string, opts Options) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	writer.UseCRLF = opts.UseCRLF

	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return "", fmt.Errorf("%w: row %d has %d fields, header has %d",
				apperrors.ErrExportContract, i, len(row), len(headers))
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RangeFilename builds the download filename for a date-range report:
// "{report-name}-{startDate}-to-{endDate}.csv". The browser download itself
// belongs to the caller.
func RangeFilename(reportName string, start, end time.Time, opts Options) string {
	layout := opts.DateFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	return fmt.Sprintf("%s-%s-to-%s.csv", reportName, start.Format(layout), end.Format(layout))
}

// SnapshotFilename builds the download filename for a point-in-time report:
// "{report-name}-{asOfDate}.csv".
func SnapshotFilename(reportName string, asOf time.Time, opts Options) string {
	layout := opts.DateFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	return fmt.Sprintf("%s-%s.csv", reportName, asOf.Format(layout))
}
