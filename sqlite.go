package omnidata

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

var sqliteMagic = []byte("SQLite format 3\x00")

// createTableRE matches CREATE TABLE statements in raw file bytes. This is a
// deliberate stand-in for parsing the B-tree page format: schema text is
// stored verbatim in the sqlite_master table, so a byte scan recovers table
// shapes without touching page structures.
var createTableRE = regexp.MustCompile(`(?is)CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?["'` + "`" + `\[]?(\w+)["'` + "`" + `\]]?\s*\(([^)]*)\)`)

// constraint keywords that start a table-level clause rather than a column
var tableConstraints = map[string]bool{
	"primary":    true,
	"foreign":    true,
	"unique":     true,
	"check":      true,
	"constraint": true,
}

// loadSQLite validates the database magic and regex-scans the bytes for
// CREATE TABLE statements. Each discovered table becomes one row of
// {table, columns}; no cell data is materialized.
func loadSQLite(data []byte, opts Options) (*Result, error) {
	if !bytes.HasPrefix(data, sqliteMagic) {
		return nil, fmt.Errorf("%w: missing sqlite magic", ErrBadContainer)
	}
	header := []string{"table", "columns"}
	res := &Result{Header: header}
	for i, m := range createTableRE.FindAllSubmatch(data, -1) {
		fields := []string{string(m[1]), strings.Join(columnNames(string(m[2])), ",")}
		res.Rows = append(res.Rows, Row{
			Index:  i,
			Fields: fields,
			Record: mapFields(header, fields),
		})
	}
	return res, nil
}

// columnNames extracts the column identifiers from the body of a CREATE TABLE
// statement, skipping table-level constraint clauses.
func columnNames(body string) []string {
	var names []string
	for _, def := range strings.Split(body, ",") {
		def = strings.TrimSpace(def)
		if def == "" {
			continue
		}
		name := strings.Trim(strings.Fields(def)[0], "\"'`[]")
		if tableConstraints[strings.ToLower(name)] {
			continue
		}
		names = append(names, name)
	}
	return names
}
