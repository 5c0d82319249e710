package huffpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x0, expect: `""`},
		{size: 1, bits: 0x0, expect: `"0"`},
		{size: 1, bits: 0x1, expect: `"1"`},
		{size: 3, bits: 0x5, expect: `"101"`},
		{size: 4, bits: 0x3, expect: `"0011"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		if actual := hc.String(); actual != row.expect {
			t.Errorf("MakeCode(%d, %#x): expected %s, got %s", row.size, row.bits, row.expect, actual)
		}
	}
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0110")
	require.NoError(t, err)
	assert.Equal(t, MakeCode(4, 0x6), hc)
	assert.Equal(t, "0110", hc.Text())

	_, err = ParseCode("01x")
	assert.Error(t, err)
}

func TestCode_Long(t *testing.T) {
	var hc Code
	for i := 0; i < 100; i++ {
		hc = hc.Append(i%3 == 0)
	}
	require.Equal(t, byte(100), hc.Size)
	for i := byte(0); i < 100; i++ {
		assert.Equal(t, i%3 == 0, hc.Bit(i), "bit %d", i)
	}

	parsed, err := ParseCode(hc.Text())
	require.NoError(t, err)
	assert.Equal(t, hc, parsed)
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0xb)
	assert.True(t, hc.HasPrefix(Code{}))
	assert.True(t, hc.HasPrefix(MakeCode(1, 0x1)))
	assert.True(t, hc.HasPrefix(MakeCode(3, 0x5)))
	assert.True(t, hc.HasPrefix(hc))
	assert.False(t, hc.HasPrefix(MakeCode(2, 0x3)))
	assert.False(t, hc.HasPrefix(MakeCode(5, 0x16)))
}
