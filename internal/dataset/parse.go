package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// record is one CSV row addressed by header name. Missing cells read as "".
type record map[string]string

// readTable decodes a whole delimited file into its header row plus
// header-addressed records, preserving row order. Short rows read as "" for
// the trailing columns; a header-only file yields zero records.
func readTable(r io.Reader) ([]string, []record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return headers, records, nil
}

// requireColumns rejects a table missing any required header, mirroring the
// upstream data QA step. An empty table with the right headers is valid;
// several reference tables legitimately have zero rows.
func requireColumns(name string, headers []string, cols []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, c := range cols {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s", name, strings.Join(missing, ", "))
	}
	return nil
}

// parseNumber converts a textual numeric field, defaulting to 0 when the
// field is empty, unparseable, or non-finite.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseOptionalNumber is parseNumber for fields where absence must stay
// observable: it returns NaN instead of 0 so the engine's proxy rule can
// tell "missing" from "measured zero".
func parseOptionalNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func parseMonth(s string) int {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return 0
	}
	return m
}
