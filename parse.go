package omnidata

// Parse runs the full pipeline over a complete input and collects the result
// in memory instead of delivering callbacks.
func (p *Parser) Parse(text string) *Result {
	res := &Result{}
	sess := p.OpenSession(Hooks{
		OnRow:    func(r Row) { res.Rows = append(res.Rows, r) },
		OnHeader: func(h []string) { res.Header = h },
		OnComplete: func(sum Summary) {
			res.Diagnostics = sum.Diagnostics
		},
	})
	// A fresh session cannot refuse writes.
	_ = sess.Write(text)
	_ = sess.End()
	return res
}

// Parse is a convenience wrapper over [Parser.Parse] for one-off calls.
func Parse(text string, opts Options) *Result {
	return NewParser(opts).Parse(text)
}
