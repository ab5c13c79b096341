package omnidata

import "fmt"

// Row is one emitted data row.
type Row struct {
	// Index is the 0-based position among emitted data rows. Skipped empty
	// lines and the header row do not consume indices.
	Index int
	// Fields holds the raw ordered field values, exactly as parsed.
	Fields []string
	// Record maps header names to field values. It is nil when no header is
	// resolved. When the header is longer than the row, missing trailing
	// fields map to ""; when the row is longer, the extra trailing fields are
	// dropped from the mapping (they remain visible in Fields).
	Record map[string]string
}

// Diagnostic records a non-fatal structural anomaly. Line and Column are
// 1-based and point at where the anomaly was detected, not where it began.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

// String formats the diagnostic with its source position.
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d, column %d: %s", d.Line, d.Column, d.Message)
}

// Summary is delivered once per session when the input ends.
type Summary struct {
	TotalRows   int
	Diagnostics []Diagnostic
}

// Result is the collected outcome of a one-shot parse or a format load.
type Result struct {
	Header      []string
	Rows        []Row
	Diagnostics []Diagnostic
}

// mapFields builds the name-keyed view of a row. Header length wins: short
// rows are padded with "" and extra trailing fields are silently dropped.
func mapFields(header, fields []string) map[string]string {
	record := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(fields) {
			record[name] = fields[i]
		} else {
			record[name] = ""
		}
	}
	return record
}
