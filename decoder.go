package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder turns a stream of bits back into Symbols by walking a Huffman tree
// from the root: 0 goes left, 1 goes right, and reaching a leaf emits its
// symbol and restarts at the root.
type Decoder struct {
	tree *Tree
	node Node
}

// Init initializes this Decoder to walk the given tree.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t, node: t.Root()}
}

// Reset abandons any partially walked code and returns to the root.
func (d *Decoder) Reset() {
	d.node = d.tree.Root()
}

// Step consumes one bit.  If the bit completes a code, Step returns the
// decoded symbol and true.  For a tree that is a single leaf, the only code
// is "0" and a 1 bit is a *CorruptArtifactError.
func (d *Decoder) Step(bit bool) (Symbol, bool, error) {
	switch x := d.node.(type) {
	case *Leaf:
		// Only reachable at the root of a single-leaf tree.
		if bit {
			return 0, false, corruptf("bit 1 is not a code for single-symbol tree")
		}
		return x.symbol, true, nil

	case *Internal:
		next := x.left
		if bit {
			next = x.right
		}
		if leaf, ok := next.(*Leaf); ok {
			d.node = d.tree.Root()
			return leaf.symbol, true, nil
		}
		d.node = next
		return 0, false, nil
	}
	panic("unreachable")
}

// Pending returns true iff the Decoder is in the middle of a code.
func (d *Decoder) Pending() bool {
	return d.node != d.tree.Root()
}

// Decode looks up a complete Code.  It returns false if hc is not exactly the
// code of some symbol.
func (d *Decoder) Decode(hc Code) (Symbol, bool) {
	var tmp Decoder
	tmp.Init(d.tree)
	for i := byte(0); i < hc.Size; i++ {
		sym, found, err := tmp.Step(hc.Bit(i))
		if err != nil {
			return 0, false
		}
		if found {
			return sym, i == hc.Size-1
		}
	}
	return 0, false
}

// Dump writes a programmer-readable debugging dump of the Decoder's code
// table to the given writer, ordered by code length and then code value.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	cb := NewCodeBook(d.tree)
	entries := make(byCode, 0, cb.Len())
	symbols := make(map[Code]Symbol, cb.Len())
	for sym := 0; sym < NumSymbols; sym++ {
		if hc := cb.codes[sym]; hc.Size != 0 {
			entries = append(entries, hc)
			symbols[hc] = Symbol(sym)
		}
	}
	entries.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.MaxSize())
	for _, hc := range entries {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbols[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	for k := range a.Bits {
		if a.Bits[k] != b.Bits[k] {
			return a.Bits[k] < b.Bits[k]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
