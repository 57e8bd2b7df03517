// Package xlsplit splits the first sheet of a workbook into several smaller workbooks.
package xlsplit

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultRowsPerFile is the default number of source rows per output file.
	DefaultRowsPerFile = 300
	// DefaultHeaderRows is the default number of header rows repeated on every page after the first.
	DefaultHeaderRows = 1
)

// Options configures split behavior.
type Options struct {
	// RowsPerFile is the number of source rows per output file. Must be at least 1.
	RowsPerFile int
	// HeaderRows is the number of leading source rows repeated at the top of
	// pages 2..N. Zero disables the header.
	HeaderRows int
	// OutputDir is the directory receiving the output files.
	// If empty, the directory of the input file is used.
	OutputDir string
	// Logger receives debug and info events. If nil, logging is disabled.
	Logger *zap.Logger
	// Observer is notified of progress. If nil, progress is not reported.
	Observer Observer
}

// DefaultOptions returns default split options.
func DefaultOptions() Options {
	return Options{
		RowsPerFile: DefaultRowsPerFile,
		HeaderRows:  DefaultHeaderRows,
	}
}

// Validate checks the numeric options.
func (o Options) Validate() error {
	if o.RowsPerFile < 1 {
		return fmt.Errorf("%w: rows per file must be at least 1, got %d", ErrInvalidOptions, o.RowsPerFile)
	}
	if o.HeaderRows < 0 {
		return fmt.Errorf("%w: header rows must not be negative, got %d", ErrInvalidOptions, o.HeaderRows)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) observer() Observer {
	if o.Observer != nil {
		return o.Observer
	}
	return NopObserver{}
}
