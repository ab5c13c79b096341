package omnidata

import (
	"fmt"
)

// HeaderMode controls how the first rows of a source are interpreted.
type HeaderMode int

const (
	// HeaderNone emits every row as a raw ordered field sequence.
	HeaderNone HeaderMode = iota
	// HeaderFirstRow uses the first surviving row as the header; that row is
	// not emitted as data.
	HeaderFirstRow
	// HeaderExplicit uses Options.Header as the header, resolved at session
	// start. Every surviving row, including the first, is emitted as data.
	HeaderExplicit
)

// String returns the header mode name.
func (m HeaderMode) String() string {
	switch m {
	case HeaderNone:
		return "none"
	case HeaderFirstRow:
		return "firstRow"
	case HeaderExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("HeaderMode(%d)", int(m))
	}
}

// ParseHeaderMode parses a header mode name as it appears in manifests and
// CLI flags.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch s {
	case "", "none":
		return HeaderNone, nil
	case "firstRow", "firstrow", "first-row":
		return HeaderFirstRow, nil
	case "explicit":
		return HeaderExplicit, nil
	default:
		return HeaderNone, fmt.Errorf("%w: header mode %q", ErrInvalidOption, s)
	}
}

// Options configures a parser. The zero values of Delimiter, Quote, Escape,
// and ChunkSize are replaced with defaults when the parser is constructed;
// SkipEmptyLines defaults to true only through [DefaultOptions], so callers
// should start from it and override fields rather than building an Options
// literal from scratch.
type Options struct {
	// Delimiter separates fields. Default ','.
	Delimiter rune
	// Quote opens and closes a quoted field. Default '"'.
	Quote rune
	// Escape introduces a literal quote inside a quoted field. The zero
	// value means the escape character equals Quote (doubled-quote style).
	Escape rune
	// SkipEmptyLines discards rows consisting of a single empty field.
	SkipEmptyLines bool
	// HeaderMode selects header resolution.
	HeaderMode HeaderMode
	// Header holds the column names for HeaderExplicit.
	Header []string
	// Encoding names the byte-to-text encoding. It is consumed by the I/O
	// driver ([LoadReader], [Load]); the parsing core only ever sees decoded
	// text. Empty means UTF-8.
	Encoding string
	// ChunkSize is the read size used by the I/O driver. Default 4096.
	ChunkSize int
}

// DefaultOptions returns the default configuration: comma delimiter, double
// quote, doubled-quote escaping, empty lines skipped, no header.
func DefaultOptions() Options {
	return Options{
		Delimiter:      ',',
		Quote:          '"',
		SkipEmptyLines: true,
	}
}

// normalized fills zero values so the state machine never has to re-check.
func (o Options) normalized() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.Escape == 0 {
		o.Escape = o.Quote
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	return o
}
