package huffpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clrsTable is the textbook example with frequencies 5, 9, 12, 13, 16, 45.
func clrsTable() *FrequencyTable {
	return tableFromCounts(map[Symbol]uint64{0: 5, 1: 9, 2: 12, 3: 13, 4: 16, 5: 45})
}

// fibTable assigns Fibonacci frequencies to symbols 0..n-1, which yields a
// maximally skewed tree of depth n-1.
func fibTable(n int) *FrequencyTable {
	counts := make(map[Symbol]uint64, n)
	a, b := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		counts[Symbol(i)] = a
		a, b = b, a+b
	}
	return tableFromCounts(counts)
}

// shape renders a tree as nested parentheses, e.g. "(a (b c))".
func shape(node Node) string {
	switch x := node.(type) {
	case *Leaf:
		return escapeSymbol(x.Symbol())
	case *Internal:
		return "(" + shape(x.Left()) + " " + shape(x.Right()) + ")"
	}
	panic("unreachable")
}

func checkSums(t *testing.T, node Node) {
	t.Helper()
	if in, ok := node.(*Internal); ok {
		assert.Equal(t, in.Left().Frequency()+in.Right().Frequency(), in.Frequency())
		checkSums(t, in.Left())
		checkSums(t, in.Right())
	}
}

func TestBuildTree(t *testing.T) {
	tree, err := BuildTree(clrsTable())
	require.NoError(t, err)

	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, uint64(100), tree.Frequency())
	assert.Equal(t, "(0x05 ((0x02 0x03) ((0x00 0x01) 0x04)))", shape(tree.Root()))
	checkSums(t, tree.Root())
}

func TestBuildTree_TieBreak(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect string
	}

	testData := [...]testRow{
		{name: "two", input: "abab", expect: "(a b)"},
		{name: "two reversed", input: "baba", expect: "(a b)"},
		{name: "five", input: "abcde", expect: "((c d) (e (a b)))"},
		{name: "five shuffled", input: "edcba", expect: "((c d) (e (a b)))"},
		{name: "merged after leaf", input: "aabbcc", expect: "(c (a b))"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := BuildTree(NewFrequencyTable([]byte(row.input)))
			require.NoError(t, err)
			assert.Equal(t, row.expect, shape(tree.Root()))
		})
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree, err := BuildTree(NewFrequencyTable([]byte("aaaa")))
	require.NoError(t, err)

	leaf, ok := tree.Root().(*Leaf)
	require.True(t, ok)
	assert.Equal(t, Symbol('a'), leaf.Symbol())
	assert.Equal(t, uint64(4), leaf.Frequency())
	assert.Equal(t, 1, tree.Len())
}

func TestBuildTree_Empty(t *testing.T) {
	_, err := BuildTree(new(FrequencyTable))
	assert.Equal(t, ErrEmptyInput, err)
}

func TestBuildTree_Skewed(t *testing.T) {
	tree, err := BuildTree(fibTable(90))
	require.NoError(t, err)
	checkSums(t, tree.Root())

	depth := 0
	for node := tree.Root(); ; depth++ {
		in, ok := node.(*Internal)
		if !ok {
			break
		}
		node = in.Right()
	}
	assert.Equal(t, 89, depth)
}
