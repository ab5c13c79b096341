package omnidata

// machine.go holds the character-level state machine and the row assembler.
// One parserState exists per session and is never shared; every step is pure
// computation, so chunk boundaries can fall anywhere in the input without
// changing the outcome. The two places a boundary could split a decision are
// held in explicit one-character slots: pendingQuote (escape lookahead inside
// a quoted field) and skipLF (the '\n' half of a CRLF terminator).

// parserState carries all mutable state for one parse session.
type parserState struct {
	opts  Options
	hooks Hooks

	inQuotes     bool
	pendingQuote bool // saw the escape character inside quotes; awaiting lookahead
	pendCol      int  // column of the held character
	skipLF       bool // last consumed character was '\r'; swallow a following '\n'
	fieldQuoted  bool // current field was opened by a quote

	field []rune
	row   []string

	header     []string
	headerDone bool

	rowIndex int
	line     int // 1-based
	column   int // 1-based column of the next character to consume

	diags []Diagnostic
	ended bool
}

func newParserState(opts Options, hooks Hooks) *parserState {
	s := &parserState{
		opts:   opts,
		hooks:  hooks,
		line:   1,
		column: 1,
	}
	if opts.HeaderMode == HeaderExplicit {
		s.setHeader(append([]string(nil), opts.Header...))
	}
	return s
}

// consume feeds one decoded chunk through the machine.
func (s *parserState) consume(chunk string) {
	for _, r := range chunk {
		s.step(r)
	}
}

func (s *parserState) step(r rune) {
	if s.skipLF {
		s.skipLF = false
		if r == '\n' {
			// second half of a CRLF terminator, already accounted for
			return
		}
	}
	if s.pendingQuote {
		s.resolvePending(r)
		return
	}
	if s.inQuotes {
		s.stepQuoted(r)
		return
	}
	s.stepPlain(r)
}

// stepQuoted classifies a character inside a quoted field. The escape case is
// listed first so that when escape == quote (the default), a quote character
// is always held for lookahead before deciding between "escaped pair" and
// "closing quote".
func (s *parserState) stepQuoted(r rune) {
	switch r {
	case s.opts.Escape:
		s.pendingQuote = true
		s.pendCol = s.column
	case s.opts.Quote:
		s.inQuotes = false
		s.column++
	default:
		s.field = append(s.field, r)
		s.column++
	}
}

// resolvePending decides what the held escape character meant now that its
// successor has arrived.
func (s *parserState) resolvePending(r rune) {
	s.pendingQuote = false
	if r == s.opts.Quote {
		// escaped quote: both characters consumed together
		s.field = append(s.field, s.opts.Quote)
		s.column = s.pendCol + 2
		return
	}
	if s.opts.Escape == s.opts.Quote {
		// the held quote closed the field; reprocess r outside quotes
		s.inQuotes = false
		s.column = s.pendCol + 1
		s.step(r)
		return
	}
	// a lone escape character carries no meaning; keep it literally
	s.field = append(s.field, s.opts.Escape)
	s.column = s.pendCol + 1
	s.step(r)
}

// stepPlain classifies a character outside a quoted field.
func (s *parserState) stepPlain(r rune) {
	switch r {
	case s.opts.Quote:
		if len(s.field) > 0 {
			// A quote after accumulated content never opens a quoted field.
			// Report it and keep the character rather than discarding input.
			s.report("Unexpected quote character")
			s.field = append(s.field, r)
		} else {
			s.inQuotes = true
			s.fieldQuoted = true
		}
		s.column++
	case s.opts.Delimiter:
		s.closeField()
		s.column++
	case '\n':
		s.endRow()
	case '\r':
		s.skipLF = true
		s.endRow()
	default:
		s.field = append(s.field, r)
		s.column++
	}
}

// finalize closes the session as if a terminator had been seen, so a trailing
// row without a final newline is still emitted. An open quoted field is
// reported but does not suppress the accumulated partial row.
func (s *parserState) finalize() {
	if s.ended {
		return
	}
	s.ended = true
	if s.pendingQuote {
		s.pendingQuote = false
		if s.opts.Escape == s.opts.Quote {
			s.inQuotes = false
			s.column = s.pendCol + 1
		} else {
			s.field = append(s.field, s.opts.Escape)
			s.column = s.pendCol + 1
		}
	}
	if s.inQuotes {
		s.report("Unclosed quoted field")
		s.inQuotes = false
	}
	if len(s.row) > 0 || len(s.field) > 0 || s.fieldQuoted {
		s.endRow()
	}
	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete(Summary{TotalRows: s.rowIndex, Diagnostics: s.diags})
	}
}

func (s *parserState) closeField() {
	s.row = append(s.row, string(s.field))
	s.field = s.field[:0]
	s.fieldQuoted = false
}

func (s *parserState) endRow() {
	s.closeField()
	fields := s.row
	s.row = nil
	s.line++
	s.column = 1
	s.dispatch(fields)
}

// dispatch applies the empty-line policy and header resolution to a completed
// row, emitting it if it survives.
func (s *parserState) dispatch(fields []string) {
	if s.opts.SkipEmptyLines && len(fields) == 1 && fields[0] == "" {
		return
	}
	if s.opts.HeaderMode == HeaderFirstRow && !s.headerDone {
		s.setHeader(fields)
		return
	}
	s.emit(fields)
}

func (s *parserState) setHeader(names []string) {
	s.header = names
	s.headerDone = true
	if s.hooks.OnHeader != nil {
		s.hooks.OnHeader(names)
	}
}

func (s *parserState) emit(fields []string) {
	row := Row{Index: s.rowIndex, Fields: fields}
	if s.header != nil {
		row.Record = mapFields(s.header, fields)
	}
	s.rowIndex++
	if s.hooks.OnRow != nil {
		s.hooks.OnRow(row)
	}
}

func (s *parserState) report(msg string) {
	d := Diagnostic{Line: s.line, Column: s.column, Message: msg}
	s.diags = append(s.diags, d)
	if s.hooks.OnDiagnostic != nil {
		s.hooks.OnDiagnostic(d)
	}
}
