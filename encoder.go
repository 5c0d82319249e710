package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Stats describes one compression run.
type Stats struct {
	// InputBytes is the number of input symbols.
	InputBytes uint64

	// Distinct is the number of distinct input symbols.
	Distinct int

	// PayloadBits is the number of coded bits, excluding padding.
	PayloadBits uint64

	// PadBits is the number of zero bits that fill out the last byte.
	PadBits byte

	// ArtifactBytes is the size of the whole artifact.
	ArtifactBytes uint64
}

// SavedBits returns how many bits the coded payload saves over storing the
// input as plain 8-bit bytes.  The artifact framing is not counted.
func (s Stats) SavedBits() int64 {
	return int64(s.InputBytes*8) - int64(s.PayloadBits)
}

// Encoder holds the state of a single compression run: the frequency table,
// the Huffman tree built from it, and the derived CodeBook.
type Encoder struct {
	freq FrequencyTable
	tree *Tree
	book *CodeBook
}

// Init initializes this Encoder from the complete input.  Any state from a
// previous run is discarded.
func (e *Encoder) Init(data []byte) {
	e.initTable(NewFrequencyTable(data))
}

// initTable initializes this Encoder from an already counted table.
func (e *Encoder) initTable(ft *FrequencyTable) {
	*e = Encoder{freq: *ft}
	if e.freq.Len() == 0 {
		return
	}

	tree, err := BuildTree(&e.freq)
	assert.Assertf(err == nil, "BuildTree failed on a non-empty table: %v", err)
	e.tree = tree
	e.book = NewCodeBook(tree)
}

// Frequencies returns the frequency table counted by Init.
func (e *Encoder) Frequencies() *FrequencyTable {
	return &e.freq
}

// Tree returns the Huffman tree, or nil if Init saw no input.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// CodeBook returns the code book, or nil if Init saw no input.
func (e *Encoder) CodeBook() *CodeBook {
	return e.book
}

// Encode writes the artifact for data to w.  The artifact consists of:
//
//   - 1 byte: number of distinct symbols N, with 256 written as 0
//   - the tree section (see writeTree), padded to a byte boundary
//   - 1 byte: number of pad bits at the end of the payload, 0 to 7
//   - the payload: the code of each symbol of data, packed MSB-first
//
// Empty data produces an empty artifact.
//
// Every symbol of data must have been seen by Init.  Otherwise Encode fails
// with an *UnknownSymbolError before writing anything.  Failures of w are
// reported as *OutputWriteError.
//
func (e *Encoder) Encode(w io.Writer, data []byte) (Stats, error) {
	stats := Stats{
		InputBytes: uint64(len(data)),
		Distinct:   e.freq.Len(),
	}

	if e.tree == nil {
		if len(data) != 0 {
			return stats, &UnknownSymbolError{Symbol: Symbol(data[0])}
		}
		return stats, nil
	}

	payloadBits, err := e.book.EncodedBits(data)
	if err != nil {
		return stats, err
	}
	stats.PayloadBits = payloadBits
	stats.PadBits = byte((8 - payloadBits%8) % 8)

	bw := NewBitWriter(w)
	if err := e.writeArtifact(bw, data, stats.PadBits); err != nil {
		return stats, &OutputWriteError{Err: err}
	}
	stats.ArtifactBytes = bw.BitsWritten() / 8
	return stats, nil
}

func (e *Encoder) writeArtifact(bw *BitWriter, data []byte, pad byte) error {
	if err := bw.WriteByte(byte(e.tree.Len())); err != nil {
		return errors.Wrap(err, "symbol count")
	}
	if err := writeTree(bw, e.tree); err != nil {
		return errors.Wrap(err, "tree section")
	}
	if err := bw.WriteByte(pad); err != nil {
		return errors.Wrap(err, "pad-bit count")
	}
	for _, b := range data {
		if err := bw.WriteCode(e.book.codes[b]); err != nil {
			return errors.Wrap(err, "payload")
		}
	}
	skipped, err := bw.Align()
	if err != nil {
		return errors.Wrap(err, "payload")
	}
	assert.Assertf(skipped == pad, "wrote %d pad bits, announced %d", skipped, pad)
	return errors.Wrap(bw.Close(), "flush")
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	if e.book == nil {
		n, err := io.WriteString(w, "Encoder{}\n")
		return int64(n), err
	}
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", e.freq.Total())
	fmt.Fprintf(&buf, "\tLen() = %d\n", e.freq.Len())
	for _, sym := range e.freq.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%d) = %s (frequency %d)\n", sym, e.book.codes[sym], e.freq.Frequency(sym))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
