package huffpack

import (
	"io"

	"github.com/icza/bitio"
)

// BitWriter packs bits into bytes, most significant bit first, and writes the
// bytes to an underlying io.Writer.
type BitWriter struct {
	w *bitio.Writer
	n uint64
}

// NewBitWriter returns a BitWriter that writes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit writes a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return err
	}
	bw.n++
	return nil
}

// WriteByte writes 8 bits, which need not be byte-aligned.
func (bw *BitWriter) WriteByte(b byte) error {
	if err := bw.w.WriteBits(uint64(b), 8); err != nil {
		return err
	}
	bw.n += 8
	return nil
}

// WriteCode writes every bit of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	remaining := hc.Size
	for _, word := range hc.Bits {
		if remaining == 0 {
			break
		}
		size := remaining
		if size > 64 {
			size = 64
		}
		if err := bw.w.WriteBits(word>>(64-size), size); err != nil {
			return err
		}
		bw.n += uint64(size)
		remaining -= size
	}
	return nil
}

// Align pads the current byte with zero bits and returns how many pad bits
// were written, 0 to 7.
func (bw *BitWriter) Align() (byte, error) {
	skipped, err := bw.w.Align()
	bw.n += uint64(skipped)
	return skipped, err
}

// BitsWritten returns the number of bits written so far, padding included.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.n
}

// Close pads the last byte and flushes it.  It does not close the underlying
// io.Writer.
func (bw *BitWriter) Close() error {
	if _, err := bw.Align(); err != nil {
		return err
	}
	return bw.w.Close()
}

var _ io.ByteWriter = (*BitWriter)(nil)

// BitReader unpacks bits from an underlying io.Reader, most significant bit
// first.
type BitReader struct {
	r *bitio.Reader
	n uint64
}

// NewBitReader returns a BitReader that reads from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bitio.NewReader(r)}
}

// ReadBit reads a single bit.  It returns io.EOF if no bits remain.
func (br *BitReader) ReadBit() (bool, error) {
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.n++
	return bit, nil
}

// ReadByte reads 8 bits, which need not be byte-aligned.
func (br *BitReader) ReadByte() (byte, error) {
	u, err := br.r.ReadBits(8)
	if err != nil {
		return 0, err
	}
	br.n += 8
	return byte(u), nil
}

// Align discards the unread bits of the current byte and returns how many
// were discarded.
func (br *BitReader) Align() byte {
	skipped := br.r.Align()
	br.n += uint64(skipped)
	return skipped
}

// BitsRead returns the number of bits consumed so far.
func (br *BitReader) BitsRead() uint64 {
	return br.n
}

var _ io.ByteReader = (*BitReader)(nil)
