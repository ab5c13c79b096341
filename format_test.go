package omnidata_test

import (
	"encoding/binary"
	"testing"

	"github.com/ObservedObserver/omnidata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	t.Parallel()
	opts := omnidata.DefaultOptions()
	opts.HeaderMode = omnidata.HeaderFirstRow
	res, err := omnidata.Load(omnidata.CSV, []byte("a,b\n1,2"), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Header)
	require.Len(t, res.Rows, 1)
}

func TestLoadTSVPinsDelimiter(t *testing.T) {
	t.Parallel()
	res, err := omnidata.Load(omnidata.TSV, []byte("a\tb\nc\td"), omnidata.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"a", "b"}, res.Rows[0].Fields)
}

func TestLoadUnknownFormat(t *testing.T) {
	t.Parallel()
	_, err := omnidata.Load(omnidata.Format("orc"), nil, omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrUnsupportedFormat)
}

func avroFile(payload string) []byte {
	return append([]byte{'O', 'b', 'j', 1}, payload...)
}

func TestLoadAvroArrayPayload(t *testing.T) {
	t.Parallel()
	data := avroFile(`[{"id":1,"name":"ada"},{"id":2}]`)
	res, err := omnidata.Load(omnidata.Avro, data, omnidata.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, res.Header)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"1", "ada"}, res.Rows[0].Fields)
	assert.Equal(t, map[string]string{"id": "2", "name": ""}, res.Rows[1].Record)
}

func TestLoadAvroNDJSONPayload(t *testing.T) {
	t.Parallel()
	data := avroFile("{\"a\":true}\n{\"a\":false,\"b\":1.5}\n")
	res, err := omnidata.Load(omnidata.Avro, data, omnidata.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Header)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"true", ""}, res.Rows[0].Fields)
	assert.Equal(t, []string{"false", "1.5"}, res.Rows[1].Fields)
}

func TestLoadAvroBadContainer(t *testing.T) {
	t.Parallel()
	_, err := omnidata.Load(omnidata.Avro, []byte(`[{"a":1}]`), omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrBadContainer)

	_, err = omnidata.Load(omnidata.Avro, avroFile("no json here"), omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrBadContainer)
}

func parquetFile(meta []byte) []byte {
	data := append([]byte("PAR1"), meta...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(meta)))
	data = append(data, lenBuf[:]...)
	return append(data, "PAR1"...)
}

func TestLoadParquetFraming(t *testing.T) {
	t.Parallel()
	res, err := omnidata.Load(omnidata.Parquet, parquetFile([]byte("thrift")), omnidata.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "Skipped 6 bytes of parquet metadata", res.Diagnostics[0].Message)
}

func TestLoadParquetBadFraming(t *testing.T) {
	t.Parallel()
	_, err := omnidata.Load(omnidata.Parquet, []byte("PAR1"), omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrBadContainer)

	// footer length pointing past the start of the file
	bad := parquetFile(nil)
	binary.LittleEndian.PutUint32(bad[len(bad)-8:len(bad)-4], 1<<20)
	_, err = omnidata.Load(omnidata.Parquet, bad, omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrBadContainer)
}

func sqliteFile(schema string) []byte {
	return append([]byte("SQLite format 3\x00"), schema...)
}

func TestLoadSQLiteSchemaScan(t *testing.T) {
	t.Parallel()
	data := sqliteFile(`junk CREATE TABLE users (id INTEGER, name TEXT, age INTEGER) more junk create table "orders" (id INTEGER, total REAL)`)
	res, err := omnidata.Load(omnidata.SQLite, data, omnidata.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"table", "columns"}, res.Header)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []string{"users", "id,name,age"}, res.Rows[0].Fields)
	assert.Equal(t, []string{"orders", "id,total"}, res.Rows[1].Fields)
	assert.Equal(t, map[string]string{"table": "orders", "columns": "id,total"}, res.Rows[1].Record)
}

func TestLoadSQLiteSkipsTableConstraints(t *testing.T) {
	t.Parallel()
	data := sqliteFile(`CREATE TABLE t (id INTEGER, PRIMARY KEY (id))`)
	res, err := omnidata.Load(omnidata.SQLite, data, omnidata.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"t", "id"}, res.Rows[0].Fields)
}

func TestLoadSQLiteBadMagic(t *testing.T) {
	t.Parallel()
	_, err := omnidata.Load(omnidata.SQLite, []byte("CREATE TABLE t (id)"), omnidata.DefaultOptions())
	assert.ErrorIs(t, err, omnidata.ErrBadContainer)
}
