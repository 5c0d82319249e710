package huffpack

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned by BuildTree when the frequency table holds no
// symbols at all.  The codec maps empty input to an empty artifact instead.
var ErrEmptyInput = errors.New("huffpack: cannot build a Huffman tree from empty input")

// InputReadError is returned when the byte source could not be read to
// completion.  No output has been produced.
type InputReadError struct {
	Err error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("huffpack: failed to read input: %v", e.Err)
}

func (e *InputReadError) Cause() error  { return e.Err }
func (e *InputReadError) Unwrap() error { return e.Err }

// UnknownSymbolError is returned when the data being encoded contains a
// Symbol that the CodeBook has no code for.  This means the input changed
// between the counting pass and the encoding pass.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffpack: symbol %d (%s) is not in the code book", byte(e.Symbol), escapeSymbol(e.Symbol))
}

// CorruptArtifactError is returned by the decoding side when the artifact is
// truncated or malformed.  No partial output accompanies it.
type CorruptArtifactError struct {
	Err error
}

func (e *CorruptArtifactError) Error() string {
	return fmt.Sprintf("huffpack: corrupt artifact: %v", e.Err)
}

func (e *CorruptArtifactError) Cause() error  { return e.Err }
func (e *CorruptArtifactError) Unwrap() error { return e.Err }

// OutputWriteError is returned when the byte sink rejected a write.  The
// sink may hold a partial artifact, which must not be trusted.
type OutputWriteError struct {
	Err error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("huffpack: failed to write output: %v", e.Err)
}

func (e *OutputWriteError) Cause() error  { return e.Err }
func (e *OutputWriteError) Unwrap() error { return e.Err }

func corruptf(format string, args ...interface{}) error {
	return &CorruptArtifactError{Err: errors.Errorf(format, args...)}
}

func corruptWrap(err error, message string) error {
	return &CorruptArtifactError{Err: errors.Wrap(err, message)}
}

var (
	_ error = (*InputReadError)(nil)
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*CorruptArtifactError)(nil)
	_ error = (*OutputWriteError)(nil)
)
