package huffpack

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Compress returns the artifact for data.  Empty data yields an empty
// artifact.
func Compress(data []byte) ([]byte, error) {
	var e Encoder
	e.Init(data)
	var buf bytes.Buffer
	if _, err := e.Encode(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressStream reads r to EOF and writes the artifact to w.  Read failures
// are reported as *InputReadError, in which case nothing has been written.
func CompressStream(w io.Writer, r io.Reader) (Stats, error) {
	var data bytes.Buffer
	var ft FrequencyTable
	if _, err := ft.ReadFrom(io.TeeReader(r, &data)); err != nil {
		return Stats{}, err
	}
	var e Encoder
	e.initTable(&ft)
	return e.Encode(w, data.Bytes())
}

// Decompress reconstructs the original data from an artifact written by
// Compress.  On any *CorruptArtifactError the returned slice is nil.
//
// The artifact does not record the number of symbols.  A payload cut short
// at a byte boundary is detected only when the cut lands inside a code or
// exposes non-zero bits where padding is expected; a cut that ends on a code
// boundary with zero tail bits decodes to a shorter output without error.
//
func Decompress(artifact []byte) ([]byte, error) {
	if len(artifact) == 0 {
		return []byte{}, nil
	}

	br := NewBitReader(bytes.NewReader(artifact))

	count, err := br.ReadByte()
	if err != nil {
		return nil, corruptWrap(err, "missing symbol count")
	}
	numLeaves := int(count)
	if numLeaves == 0 {
		numLeaves = NumSymbols
	}

	tree, err := readTree(br, numLeaves)
	if err != nil {
		return nil, err
	}

	pad, err := br.ReadByte()
	if err != nil {
		return nil, corruptWrap(err, "missing pad-bit count")
	}
	if pad > 7 {
		return nil, corruptf("pad-bit count %d out of range 0..7", pad)
	}

	payloadBits := (uint64(len(artifact)) - br.BitsRead()/8) * 8
	if payloadBits <= uint64(pad) {
		return nil, corruptf("payload holds no coded bits")
	}
	payloadBits -= uint64(pad)

	var d Decoder
	d.Init(tree)
	out := make([]byte, 0, payloadBits/8)
	for i := uint64(0); i < payloadBits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, corruptWrap(err, "truncated payload")
		}
		sym, found, err := d.Step(bit)
		if err != nil {
			return nil, err
		}
		if found {
			out = append(out, byte(sym))
		}
	}
	if d.Pending() {
		return nil, corruptf("payload ends in the middle of a code")
	}

	for i := byte(0); i < pad; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, corruptWrap(err, "truncated padding")
		}
		if bit {
			return nil, corruptf("non-zero pad bit")
		}
	}
	return out, nil
}

// DecompressStream reads an artifact from r to EOF and writes the decoded data
// to w.  Nothing is written unless the whole artifact decodes.
func DecompressStream(w io.Writer, r io.Reader) (int64, error) {
	artifact, err := io.ReadAll(r)
	if err != nil {
		return 0, &InputReadError{Err: err}
	}
	out, err := Decompress(artifact)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	if err != nil {
		return int64(n), &OutputWriteError{Err: errors.Wrap(err, "decoded data")}
	}
	return int64(n), nil
}
