package xlsplit

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates the split options are out of range.
var ErrInvalidOptions = errors.New("invalid options")

// ReadError represents a failure to open or parse the input workbook.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error (%s): %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// CreateError represents a failure to construct or create an output file.
type CreateError struct {
	Path string
	Page int
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create error (page %d, %s): %v", e.Page, e.Path, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// NewCreateError creates a new CreateError.
func NewCreateError(path string, page int, err error) *CreateError {
	return &CreateError{Path: path, Page: page, Err: err}
}

// WriteError represents a failure to write a cell or to flush an output file.
type WriteError struct {
	Path string
	Page int
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error (page %d, %s): %v", e.Page, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, page int, err error) *WriteError {
	return &WriteError{Path: path, Page: page, Err: err}
}
