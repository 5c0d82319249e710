package huffpack

import (
	"io"
)

// FrequencyTable counts the number of occurrences of each Symbol in an input.
//
// The zero value is an empty table, ready to use.  A table belongs to a single
// compression run; use Reset or a fresh value for unrelated inputs.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	total    uint64
	distinct int
}

// NewFrequencyTable returns a table populated from data.
func NewFrequencyTable(data []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	_, _ = ft.Write(data)
	return ft
}

// Write counts every byte of p.  It never fails.
func (ft *FrequencyTable) Write(p []byte) (int, error) {
	for _, b := range p {
		if ft.counts[b] == 0 {
			ft.distinct++
		}
		ft.counts[b]++
	}
	ft.total += uint64(len(p))
	return len(p), nil
}

// ReadFrom counts every byte of r until EOF.  A read failure is reported as
// an *InputReadError.
func (ft *FrequencyTable) ReadFrom(r io.Reader) (int64, error) {
	var buf [4096]byte
	var n int64
	for {
		m, err := r.Read(buf[:])
		if m > 0 {
			_, _ = ft.Write(buf[:m])
			n += int64(m)
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, &InputReadError{Err: err}
		}
	}
}

// Reset clears the table.
func (ft *FrequencyTable) Reset() {
	*ft = FrequencyTable{}
}

// Frequency returns the number of times sym was seen.
func (ft *FrequencyTable) Frequency(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Has returns true iff sym was seen at least once.
func (ft *FrequencyTable) Has(sym Symbol) bool {
	return ft.counts[sym] != 0
}

// Len returns the number of distinct symbols seen.
func (ft *FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the number of symbols seen, counting repeats.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols lists the distinct symbols seen, in ascending order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for sym := 0; sym < NumSymbols; sym++ {
		if ft.counts[sym] != 0 {
			out = append(out, Symbol(sym))
		}
	}
	return out
}

var (
	_ io.Writer     = (*FrequencyTable)(nil)
	_ io.ReaderFrom = (*FrequencyTable)(nil)
)
