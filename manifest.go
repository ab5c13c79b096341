package omnidata

import (
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Manifest is a YAML description of a set of tabular sources.
//
//	sources:
//	  - name: events
//	    path: data/events.csv
//	    headerMode: firstRow
//	    delimiter: ";"
//	    encoding: latin-1
type Manifest struct {
	Sources []Source `yaml:"sources"`
}

// Source describes one dataset in a manifest. Format is optional when it can
// be detected from the path extension.
type Source struct {
	Name           string   `yaml:"name"`
	Path           string   `yaml:"path"`
	Format         string   `yaml:"format"`
	Delimiter      string   `yaml:"delimiter"`
	Quote          string   `yaml:"quote"`
	Escape         string   `yaml:"escape"`
	SkipEmptyLines *bool    `yaml:"skipEmptyLines"`
	HeaderMode     string   `yaml:"headerMode"`
	Header         []string `yaml:"header"`
	Encoding       string   `yaml:"encoding"`
	ChunkSize      int      `yaml:"chunkSize"`
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	for _, src := range m.Sources {
		if _, err := src.Kind(); err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
		if _, err := src.Options(); err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
	}
	return &m, nil
}

// Kind resolves the source's format, falling back to extension detection.
func (s Source) Kind() (Format, error) {
	if s.Format != "" {
		return ParseFormat(s.Format)
	}
	return DetectFormat(s.Path)
}

// Options converts the manifest fields into parser options, starting from
// [DefaultOptions].
func (s Source) Options() (Options, error) {
	opts := DefaultOptions()
	var err error
	if opts.Delimiter, err = runeOption("delimiter", s.Delimiter, opts.Delimiter); err != nil {
		return opts, err
	}
	if opts.Quote, err = runeOption("quote", s.Quote, opts.Quote); err != nil {
		return opts, err
	}
	if opts.Escape, err = runeOption("escape", s.Escape, 0); err != nil {
		return opts, err
	}
	if s.SkipEmptyLines != nil {
		opts.SkipEmptyLines = *s.SkipEmptyLines
	}
	if opts.HeaderMode, err = ParseHeaderMode(s.HeaderMode); err != nil {
		return opts, err
	}
	if opts.HeaderMode == HeaderExplicit && len(s.Header) == 0 {
		return opts, fmt.Errorf("%w: explicit header mode requires header names", ErrInvalidOption)
	}
	opts.Header = append([]string(nil), s.Header...)
	opts.Encoding = s.Encoding
	opts.ChunkSize = s.ChunkSize
	return opts, nil
}

// runeOption parses a single-character manifest field.
func runeOption(name, s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return def, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidOption, name, s)
	}
	return r, nil
}
