package huffpack

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDecoder(t *testing.T, ft *FrequencyTable) Decoder {
	t.Helper()
	tree, err := BuildTree(ft)
	require.NoError(t, err)
	var d Decoder
	d.Init(tree)
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t, clrsTable())

	type testRow struct {
		code  string
		sym   Symbol
		found bool
	}

	testData := [...]testRow{
		{code: "", found: false},
		{code: "0", sym: 5, found: true},
		{code: "1", found: false},
		{code: "10", found: false},
		{code: "100", sym: 2, found: true},
		{code: "101", sym: 3, found: true},
		{code: "111", sym: 4, found: true},
		{code: "1100", sym: 0, found: true},
		{code: "1101", sym: 1, found: true},
		{code: "00", found: false},
		{code: "1111", found: false},
	}
	for _, row := range testData {
		hc, err := ParseCode(row.code)
		require.NoError(t, err)
		t.Run(hc.String(), func(t *testing.T) {
			sym, found := d.Decode(hc)
			if found != row.found {
				t.Errorf("expected found=%v, got %v", row.found, found)
			}
			if found && sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
		})
	}
}

func TestDecoder_Step(t *testing.T) {
	d := makeTestDecoder(t, clrsTable())

	var out []Symbol
	for _, ch := range "0110110010" {
		sym, found, err := d.Step(ch == '1')
		require.NoError(t, err)
		if found {
			out = append(out, sym)
		}
	}
	assert.Equal(t, []Symbol{5, 1, 2}, out)
	assert.True(t, d.Pending())

	d.Reset()
	assert.False(t, d.Pending())
}

func TestDecoder_SingleSymbol(t *testing.T) {
	d := makeTestDecoder(t, NewFrequencyTable([]byte("zz")))

	sym, found, err := d.Step(false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Symbol('z'), sym)
	assert.False(t, d.Pending())

	_, _, err = d.Step(true)
	var corrupt *CorruptArtifactError
	assert.True(t, errors.As(err, &corrupt))
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder(t, clrsTable())

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"0\") = 5\n",
		"\tDecode(\"100\") = 2\n",
		"\tDecode(\"101\") = 3\n",
		"\tDecode(\"111\") = 4\n",
		"\tDecode(\"1100\") = 0\n",
		"\tDecode(\"1101\") = 1\n",
		"}\n",
	}, "")

	var sb strings.Builder
	_, _ = d.Dump(&sb)
	actualDump := sb.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
