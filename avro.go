package omnidata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// avroMagic is the Avro object container file signature.
var avroMagic = []byte{'O', 'b', 'j', 1}

// loadAvro validates the object container framing and then re-parses the
// embedded JSON payload instead of decoding Avro binary encoding: records are
// expected as a JSON array of objects or as newline-delimited objects. The
// header is the sorted union of record keys; missing keys read as "".
func loadAvro(data []byte, opts Options) (*Result, error) {
	if !bytes.HasPrefix(data, avroMagic) {
		return nil, fmt.Errorf("%w: missing avro object container magic", ErrBadContainer)
	}
	start := bytes.IndexAny(data[len(avroMagic):], "[{")
	if start < 0 {
		return nil, fmt.Errorf("%w: no embedded JSON payload", ErrBadContainer)
	}
	records, err := decodeJSONRecords(data[len(avroMagic)+start:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadContainer, err)
	}

	header := unionKeys(records)
	res := &Result{Header: header}
	for i, rec := range records {
		fields := make([]string, len(header))
		for j, name := range header {
			if v, ok := rec[name]; ok {
				fields[j] = stringifyJSON(v)
			}
		}
		res.Rows = append(res.Rows, Row{
			Index:  i,
			Fields: fields,
			Record: mapFields(header, fields),
		})
	}
	return res, nil
}

// decodeJSONRecords accepts either a single JSON array of objects or a stream
// of newline-delimited objects.
func decodeJSONRecords(payload []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	if payload[0] == '[' {
		var records []map[string]any
		if err := dec.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var records []map[string]any
	for {
		var rec map[string]any
		if err := dec.Decode(&rec); err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func unionKeys(records []map[string]any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func stringifyJSON(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		// nested arrays/objects keep their JSON shape
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
