package omnidata

// loadTSV is the CSV loader with the delimiter pinned to a tab. An explicit
// caller-set delimiter is ignored; TSV is tab-separated by definition.
func loadTSV(data []byte, opts Options) (*Result, error) {
	opts.Delimiter = '\t'
	return loadCSV(data, opts)
}
