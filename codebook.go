package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// CodeBook maps each Symbol of a Huffman tree to its Code.
//
// Codes are the root-to-leaf paths of the tree, 0 for left and 1 for right.
// A tree that is a single leaf assigns that leaf the one-bit Code "0".
type CodeBook struct {
	codes   [NumSymbols]Code
	numSyms int
	minSize byte
	maxSize byte
}

// NewCodeBook derives the CodeBook for the given tree.
func NewCodeBook(t *Tree) *CodeBook {
	cb := new(CodeBook)
	cb.numSyms = t.Len()

	if leaf, ok := t.Root().(*Leaf); ok {
		cb.codes[leaf.symbol] = MakeCode(1, 0)
		cb.minSize, cb.maxSize = 1, 1
		return cb
	}

	// Walk the tree depth-first with an explicit stack, left before right.
	// The code of a stack item is the path to its node, so the stack depth
	// equals the code size of the node's children.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(cb.numSyms)))
	var hasMinMax bool

	processChild := func(child Node, code Code) {
		switch x := child.(type) {
		case *Internal:
			stack = append(stack, stackItem{node: x, code: code})
		case *Leaf:
			cb.codes[x.symbol] = code
			if !hasMinMax {
				hasMinMax = true
				cb.minSize, cb.maxSize = code.Size, code.Size
			} else if cb.minSize > code.Size {
				cb.minSize = code.Size
			} else if cb.maxSize < code.Size {
				cb.maxSize = code.Size
			}
		}
	}

	stack = append(stack, stackItem{node: t.Root().(*Internal)})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.code.Append(false))
		case 1:
			processChild(top.node.right, top.code.Append(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
	return cb
}

// Encode returns the Code for sym, or an *UnknownSymbolError if sym is not
// part of this code.
func (cb *CodeBook) Encode(sym Symbol) (Code, error) {
	hc := cb.codes[sym]
	if hc.Size == 0 {
		return Code{}, &UnknownSymbolError{Symbol: sym}
	}
	return hc, nil
}

// Has returns true iff sym has a Code.
func (cb *CodeBook) Has(sym Symbol) bool {
	return cb.codes[sym].Size != 0
}

// Len returns the number of symbols with a Code.
func (cb *CodeBook) Len() int {
	return cb.numSyms
}

// MinSize is the bit length of the shortest code.
func (cb *CodeBook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest code.
func (cb *CodeBook) MaxSize() byte {
	return cb.maxSize
}

// EncodedBits returns the number of bits that encoding data takes, excluding
// padding.  It fails with an *UnknownSymbolError if any byte of data has no
// Code.
func (cb *CodeBook) EncodedBits(data []byte) (uint64, error) {
	var total uint64
	for _, b := range data {
		size := cb.codes[b].Size
		if size == 0 {
			return 0, &UnknownSymbolError{Symbol: Symbol(b)}
		}
		total += uint64(size)
	}
	return total, nil
}

// Preview renders the encoding of data as text, one '0' or '1' character per
// bit.  It is meant for debugging; the artifact format packs 8 bits per byte.
func (cb *CodeBook) Preview(data []byte) (string, error) {
	total, err := cb.EncodedBits(data)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(int(total))
	for _, b := range data {
		sb.WriteString(cb.codes[b].Text())
	}
	return sb.String(), nil
}

// Dump writes a programmer-readable debugging dump of the CodeBook's current
// state to the given writer.
func (cb *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for sym := 0; sym < NumSymbols; sym++ {
		hc := cb.codes[sym]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", sym, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (cb *CodeBook) DebugString() string {
	var sb strings.Builder
	_, _ = cb.Dump(&sb)
	return sb.String()
}

// String returns a short human-readable description.
func (cb *CodeBook) String() string {
	return fmt.Sprintf("(Huffman code book with %d symbols, with code lengths of %d .. %d bits)", cb.numSyms, cb.minSize, cb.maxSize)
}

// WriteReport writes one line per symbol to w, in ascending symbol order,
// giving the symbol, its frequency in ft, and its code:
//
//     a : 5 : 0110
//
// Whitespace symbols are spelled out so that each line stays on one line.
//
func (cb *CodeBook) WriteReport(w io.Writer, ft *FrequencyTable) (int64, error) {
	var buf bytes.Buffer
	for sym := 0; sym < NumSymbols; sym++ {
		hc := cb.codes[sym]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "%s : %d : %s\n", escapeSymbol(Symbol(sym)), ft.Frequency(Symbol(sym)), hc.Text())
	}
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*CodeBook)(nil)
