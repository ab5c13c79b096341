// Package omnidata loads tabular data from multiple input formats.
//
// The heart of the package is an incremental, streaming-capable parsing
// engine for delimited text. It produces byte-identical results whether an
// input arrives as one string or split into arbitrarily small chunks at
// arbitrary boundaries, while tracking quote and escape state, assembling
// fields into rows, resolving headers, and recording precise line/column
// positions for structural anomalies, all without re-scanning consumed
// input.
//
// # One-shot parsing
//
// [Parse] runs the engine over a complete input and collects the result:
//
//	opts := omnidata.DefaultOptions()
//	opts.HeaderMode = omnidata.HeaderFirstRow
//	res := omnidata.Parse("a,b\n1,2", opts)
//	// res.Header == []string{"a", "b"}
//	// res.Rows[0].Record == map[string]string{"a": "1", "b": "2"}
//
// # Streaming sessions
//
// [Parser.OpenSession] exposes the same pipeline as a push surface: call
// [Session.Write] any number of times with text chunks, then [Session.End]
// once. Rows, the header, diagnostics, and a completion summary are delivered
// through [Hooks]:
//
//	p := omnidata.NewParser(opts)
//	sess := p.OpenSession(omnidata.Hooks{
//		OnRow: func(row omnidata.Row) { process(row) },
//	})
//	sess.Write("a,")
//	sess.Write("b\nc,d")
//	sess.End()
//
// Chunk boundaries may fall anywhere, including between an escape character
// and the quote it escapes; the session buffers the single pending character
// instead of re-scanning.
//
// # Diagnostics
//
// Malformed content never aborts a parse. A quote appearing mid-field or a
// quoted field left open at end of input is recorded as a [Diagnostic] with
// the position where it was detected, and parsing continues.
//
// # Formats
//
// [Load] dispatches raw file bytes by [Format]. CSV and TSV run the full
// engine. The remaining loaders are deliberately thin: Avro re-parses an
// embedded JSON payload after checking the container magic, Parquet validates
// PAR1 framing and skips the Thrift metadata, and SQLite regex-scans for
// CREATE TABLE statements. None of them decode binary encodings, compression
// codecs, or page formats.
//
// # I/O driver
//
// [LoadReader] feeds a session from an io.Reader in ChunkSize pieces,
// decoding bytes per Options.Encoding (UTF-8, Latin-1, Windows-1252, and
// UTF-16 variants) before any text reaches the core. [ParseManifest] reads a
// YAML description of sources, and [Preview] renders a result as a bordered
// table for debugging.
package omnidata
