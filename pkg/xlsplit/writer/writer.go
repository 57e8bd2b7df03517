// Package writer creates the per-page output workbooks.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the only worksheet in every output file.
const SheetName = "Sheet1"

// ErrInvalidName indicates an output name cannot be derived from the input path.
var ErrInvalidName = errors.New("input path has no file stem or extension")

// ErrClosed indicates the output file was already closed.
var ErrClosed = errors.New("output file already closed")

// OutputName returns "{stem}-{page}.{ext}" for the base name of input.
func OutputName(input string, page int) (string, error) {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" || ext == "." || stem == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, input)
	}
	return fmt.Sprintf("%s-%d%s", stem, page, ext), nil
}

// File is one output workbook. It is created on disk by Create and
// written out by Close; after Close every method returns ErrClosed.
type File struct {
	path string
	page int
	out  *os.File
	book *excelize.File
	rows int
}

// Create creates the output file for page in dir.
func Create(dir, input string, page int) (*File, error) {
	name, err := OutputName(input, page)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	// NewFile starts with a single worksheet named Sheet1
	book := excelize.NewFile()
	if idx, err := book.GetSheetIndex(SheetName); err != nil || idx == -1 {
		book.Close()
		out.Close()
		return nil, fmt.Errorf("new workbook has no %s sheet", SheetName)
	}

	return &File{
		path: path,
		page: page,
		out:  out,
		book: book,
	}, nil
}

// Path returns the output file path.
func (f *File) Path() string {
	return f.path
}

// Page returns the 1-based page number.
func (f *File) Page() int {
	return f.page
}

// Rows returns the number of rows written so far.
func (f *File) Rows() int {
	return f.rows
}

// WriteRow writes cells on the 0-based output row.
func (f *File) WriteRow(row int, cells models.Row) error {
	if f.book == nil {
		return ErrClosed
	}
	if err := WriteRow(f.book, SheetName, row, cells); err != nil {
		return err
	}
	if row+1 > f.rows {
		f.rows = row + 1
	}
	return nil
}

// Discard closes the file handle without encoding the workbook.
// The file is left on disk as created.
func (f *File) Discard() error {
	if f.book == nil {
		return ErrClosed
	}
	book, out := f.book, f.out
	f.book, f.out = nil, nil

	err := out.Close()
	if cerr := book.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close encodes the workbook into the file and closes it.
func (f *File) Close() error {
	if f.book == nil {
		return ErrClosed
	}
	book, out := f.book, f.out
	f.book, f.out = nil, nil

	err := book.Write(out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if cerr := book.Close(); err == nil {
		err = cerr
	}
	return err
}
