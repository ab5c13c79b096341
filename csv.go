package omnidata

// loadCSV decodes the bytes per opts.Encoding and runs the full incremental
// engine over the resulting text.
func loadCSV(data []byte, opts Options) (*Result, error) {
	text, err := decodeText(data, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return Parse(text, opts), nil
}
