package omnidata_test

import (
	"strings"
	"testing"

	"github.com/ObservedObserver/omnidata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	t.Parallel()
	res := omnidata.Parse("a,b\n1,2\n10,20", func() omnidata.Options {
		o := omnidata.DefaultOptions()
		o.HeaderMode = omnidata.HeaderFirstRow
		return o
	}())

	var buf strings.Builder
	require.NoError(t, omnidata.Preview(&buf, res, 0))

	want := strings.Join([]string{
		"╭────┬────╮",
		"│ a  │ b  │",
		"├────┼────┤",
		"│ 1  │ 2  │",
		"│ 10 │ 20 │",
		"╰────┴────╯",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPreviewLimitAndDiagnostics(t *testing.T) {
	t.Parallel()
	res := omnidata.Parse("x\"y\na\nb\nc", omnidata.DefaultOptions())

	var buf strings.Builder
	require.NoError(t, omnidata.Preview(&buf, res, 2))
	out := buf.String()
	assert.Contains(t, out, "… 2 more rows")
	assert.Contains(t, out, "! line 1, column 2: Unexpected quote character")
	assert.NotContains(t, out, "│ c")
}

func TestPreviewWideRunes(t *testing.T) {
	t.Parallel()
	res := omnidata.Parse("你好,b", omnidata.DefaultOptions())

	var buf strings.Builder
	require.NoError(t, omnidata.Preview(&buf, res, 0))
	// 你好 is 4 columns wide; the rule must match the padded cell
	assert.Contains(t, buf.String(), "│ 你好 │ b │")
	assert.Contains(t, buf.String(), "╭──────┬───╮")
}

func TestPreviewEmpty(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	require.NoError(t, omnidata.Preview(&buf, &omnidata.Result{}, 0))
	assert.Equal(t, "(empty)\n", buf.String())
}
