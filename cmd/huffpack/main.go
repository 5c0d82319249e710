// Command huffpack compresses or decompresses a single file.
//
//     huffpack [-v] input output
//     huffpack -d [-v] input output
//
// It prints OK on success, or one of "Input file error", "Output file error",
// "Corrupt artifact" or "Internal error", and exits non-zero on failure.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

const (
	resultOK          = "OK"
	resultInputError  = "Input file error"
	resultOutputError = "Output file error"
	resultCorrupt     = "Corrupt artifact"
	resultInternal    = "Internal error"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	decompress := fs.Bool("d", false, "decompress input instead of compressing it")
	verbose := fs.Bool("v", false, "print the code table and space savings")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huffpack [-d] [-v] input output")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	log := logger.New(stderr, *verbose)
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	var err error
	if *decompress {
		err = decompressFile(log, inputPath, outputPath)
	} else {
		err = compressFile(log, stdout, *verbose, inputPath, outputPath)
	}

	result := describe(err)
	if err != nil {
		log.Errorf("%v", err)
	}
	fmt.Fprintln(stdout, result)
	if result != resultOK {
		return 1
	}
	return 0
}

func describe(err error) string {
	var (
		readErr    *huffpack.InputReadError
		writeErr   *huffpack.OutputWriteError
		corruptErr *huffpack.CorruptArtifactError
	)
	switch {
	case err == nil:
		return resultOK
	case errors.As(err, &readErr):
		return resultInputError
	case errors.As(err, &writeErr):
		return resultOutputError
	case errors.As(err, &corruptErr):
		return resultCorrupt
	}
	return resultInternal
}

func compressFile(log logger.Logger, stdout io.Writer, verbose bool, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return &huffpack.InputReadError{Err: err}
	}

	var e huffpack.Encoder
	e.Init(data)
	if verbose && e.CodeBook() != nil {
		if _, err := e.CodeBook().WriteReport(stdout, e.Frequencies()); err != nil {
			return &huffpack.OutputWriteError{Err: errors.Wrap(err, "report")}
		}
	}

	stats, err := writeFile(outputPath, func(w io.Writer) (huffpack.Stats, error) {
		return e.Encode(w, data)
	})
	if err != nil {
		return err
	}

	log.Infof("%s: %d bytes in, %d bytes out, %d distinct symbols", inputPath, stats.InputBytes, stats.ArtifactBytes, stats.Distinct)
	if verbose {
		fmt.Fprintf(stdout, "Computed space savings: %d bits\n", stats.SavedBits())
	}
	return nil
}

func decompressFile(log logger.Logger, inputPath, outputPath string) error {
	artifact, err := os.ReadFile(inputPath)
	if err != nil {
		return &huffpack.InputReadError{Err: err}
	}

	// Decode fully before creating the output, so that a corrupt artifact
	// leaves nothing behind.
	data, err := huffpack.Decompress(artifact)
	if err != nil {
		return err
	}

	_, err = writeFile(outputPath, func(w io.Writer) (huffpack.Stats, error) {
		if _, err := w.Write(data); err != nil {
			return huffpack.Stats{}, &huffpack.OutputWriteError{Err: err}
		}
		return huffpack.Stats{}, nil
	})
	if err != nil {
		return err
	}

	log.Infof("%s: %d bytes in, %d bytes out", inputPath, len(artifact), len(data))
	return nil
}

// writeFile creates path, hands it to fn, and closes it on every path.  A
// failure to create or close the file is an *OutputWriteError.
func writeFile(path string, fn func(io.Writer) (huffpack.Stats, error)) (stats huffpack.Stats, err error) {
	f, err := os.Create(path)
	if err != nil {
		return stats, &huffpack.OutputWriteError{Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &huffpack.OutputWriteError{Err: closeErr}
		}
	}()
	return fn(f)
}
