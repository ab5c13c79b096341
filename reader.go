package omnidata

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultChunkSize = 4096

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// lookupEncoding resolves an encoding name to a decoder. A nil return with a
// nil error means UTF-8 passthrough.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

// decodeText converts raw bytes to text per the named encoding, stripping a
// leading UTF-8 byte order mark.
func decodeText(data []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	if enc != nil {
		data, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding %s input: %w", name, err)
		}
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

// LoadReader is the chunked I/O driver over the streaming core: it reads
// ChunkSize-sized pieces from r, decodes them per opts.Encoding, and feeds a
// session delivering to hooks. Multi-byte sequences split across reads are
// carried to the next chunk so the core only ever sees whole characters.
// Read and decode failures are the driver's to report; they never reach the
// parsing core.
func LoadReader(r io.Reader, opts Options, hooks Hooks) error {
	p := NewParser(opts)
	enc, err := lookupEncoding(p.opts.Encoding)
	if err != nil {
		return err
	}
	src := r
	if enc != nil {
		src = transform.NewReader(r, enc.NewDecoder())
	}

	sess := p.OpenSession(hooks)
	buf := make([]byte, p.opts.ChunkSize)
	var carry []byte
	first := true
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			chunk := append(carry, buf[:n]...)
			if first {
				chunk = bytes.TrimPrefix(chunk, utf8BOM)
				first = false
			}
			k := completePrefix(chunk)
			if writeErr := sess.Write(string(chunk[:k])); writeErr != nil {
				return writeErr
			}
			carry = append(carry[:0], chunk[k:]...)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading source: %w", readErr)
		}
	}
	if len(carry) > 0 {
		// truncated trailing sequence; surfaces as U+FFFD like string()
		if err := sess.Write(string(carry)); err != nil {
			return err
		}
	}
	return sess.End()
}

// LoadReaderAll is the collecting form of LoadReader.
func LoadReaderAll(r io.Reader, opts Options) (*Result, error) {
	res := &Result{}
	err := LoadReader(r, opts, Hooks{
		OnRow:      func(row Row) { res.Rows = append(res.Rows, row) },
		OnHeader:   func(h []string) { res.Header = h },
		OnComplete: func(sum Summary) { res.Diagnostics = sum.Diagnostics },
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// completePrefix returns the largest k such that b[:k] ends on a rune
// boundary, so a UTF-8 sequence split by a read is never decoded early.
func completePrefix(b []byte) int {
	i := len(b)
	for i > 0 && len(b)-i < utf8.UTFMax {
		if b[i-1]&0xC0 != 0x80 {
			if utf8.FullRune(b[i-1:]) {
				return len(b)
			}
			return i - 1
		}
		i--
	}
	return len(b)
}
