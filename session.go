package omnidata

import (
	"fmt"

	"github.com/google/uuid"
)

// Hooks receives notifications from a streaming session. Every field is
// optional; nil hooks are simply skipped.
type Hooks struct {
	// OnRow is called for each emitted data row, in order.
	OnRow func(Row)
	// OnHeader is called once when the header resolves: at session open for
	// HeaderExplicit, at the first surviving row for HeaderFirstRow.
	OnHeader func([]string)
	// OnDiagnostic is called for each structural anomaly, in detection order.
	// Anomalies never abort the session.
	OnDiagnostic func(Diagnostic)
	// OnComplete is called exactly once, from End.
	OnComplete func(Summary)
}

// Parser is an immutable parsing configuration. A single Parser may open any
// number of sessions, including concurrently; sessions share no mutable state.
type Parser struct {
	opts Options
}

// NewParser resolves opts (filling zero values with defaults) and returns a
// parser for them.
func NewParser(opts Options) *Parser {
	opts = opts.normalized()
	opts.Header = append([]string(nil), opts.Header...)
	return &Parser{opts: opts}
}

// Options returns the resolved configuration.
func (p *Parser) Options() Options { return p.opts }

// Session is one incremental parse: any number of Write calls followed by a
// single End. A session must not be used from multiple goroutines.
type Session struct {
	id    string
	state *parserState
	ended bool
}

// OpenSession starts a streaming session delivering to hooks. For
// HeaderExplicit the header resolves (and OnHeader fires) before OpenSession
// returns.
func (p *Parser) OpenSession(hooks Hooks) *Session {
	return &Session{
		id:    uuid.NewString(),
		state: newParserState(p.opts, hooks),
	}
}

// ID returns the session's correlation ID.
func (s *Session) ID() string { return s.id }

// Write feeds one chunk of decoded text. Chunks may split the input at any
// point, including between an escape character and its successor; the emitted
// rows, diagnostics, and positions are identical for every split.
func (s *Session) Write(chunk string) error {
	if s.ended {
		return fmt.Errorf("%w: write after end", ErrSessionClosed)
	}
	s.state.consume(chunk)
	return nil
}

// End signals end of input, flushing any pending field or row and delivering
// OnComplete. Calling End again is an error.
func (s *Session) End() error {
	if s.ended {
		return fmt.Errorf("%w: end called twice", ErrSessionClosed)
	}
	s.ended = true
	s.state.finalize()
	return nil
}
