package omnidata

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrBadContainer        = errors.New("malformed container")
	ErrSessionClosed       = errors.New("session closed")
	ErrInvalidOption       = errors.New("invalid option")
)

// Format identifies an input format.
type Format string

const (
	CSV     Format = "csv"
	TSV     Format = "tsv"
	Avro    Format = "avro"
	Parquet Format = "parquet"
	SQLite  Format = "sqlite"
)

var formats = []Format{CSV, TSV, Avro, Parquet, SQLite}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return CSV, nil
	case ".tsv", ".tab":
		return TSV, nil
	case ".avro":
		return Avro, nil
	case ".parquet":
		return Parquet, nil
	case ".sqlite", ".sqlite3", ".db":
		return SQLite, nil
	default:
		return "", fmt.Errorf("%w: no format for %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load parses raw file bytes as format f. The delimited formats run the full
// incremental engine over the decoded text; the container formats apply their
// deliberately thin unwrapping (see the per-format functions).
func Load(f Format, data []byte, opts Options) (*Result, error) {
	switch f {
	case CSV:
		return loadCSV(data, opts)
	case TSV:
		return loadTSV(data, opts)
	case Avro:
		return loadAvro(data, opts)
	case Parquet:
		return loadParquet(data, opts)
	case SQLite:
		return loadSQLite(data, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
