// Package parser provides workbook reading utilities.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/extrame/xls"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither an OOXML nor a BIFF workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoSheets indicates the workbook has no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// Format is a workbook container format.
type Format string

const (
	// FormatXLSX is an OOXML (zip) workbook: .xlsx, .xlsm, .xltx, .xltm.
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy BIFF (OLE2) workbook.
	FormatXLS Format = "xls"
)

var (
	zipMagic = []byte{'P', 'K', 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Workbook is an open source workbook.
type Workbook struct {
	format Format
	xlsx   *excelize.File
	xls    *xls.WorkBook
	// file backs xls; sheets are decoded from it lazily.
	file *os.File
}

// Open opens the workbook at path. The container format is detected from the
// file contents, not from the extension.
func Open(path string) (*Workbook, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	wb := &Workbook{format: format}
	switch format {
	case FormatXLS:
		wb.file, wb.xls, err = openXLS(path)
	default:
		wb.xlsx, err = excelize.OpenFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return wb, nil
}

// openXLS opens a BIFF workbook. The codec panics on some malformed OLE
// streams, so panics are reported as errors.
func openXLS(path string) (f *os.File, wb *xls.WorkBook, err error) {
	f, err = os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed xls file: %v", r)
		}
		if err != nil {
			f.Close()
			f, wb = nil, nil
		}
	}()

	wb, err = xls.OpenReader(f, "utf-8")
	if err == nil && wb == nil {
		err = errors.New("no workbook stream")
	}
	return f, wb, err
}

// DetectFormat reads the leading bytes of the file at path to tell OOXML and BIFF apart.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", err
	}
	defer f.Close()

	head := make([]byte, len(oleMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, zipMagic):
		return FormatXLSX, nil
	case bytes.Equal(head, oleMagic):
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
}

// Format returns the detected container format.
func (w *Workbook) Format() Format {
	return w.format
}

// FirstSheet returns the used range of the worksheet at index 0.
func (w *Workbook) FirstSheet() (*models.Sheet, error) {
	if w.xls != nil {
		return firstXLSSheet(w.xls)
	}

	sheetList := w.xlsx.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := ExtractCells(w.xlsx, sheetList[0])
	if err != nil {
		return nil, err
	}
	return newSheet(sheetList[0], rows), nil
}

// newSheet clips rows to their used range, dropping leading blank rows and columns.
func newSheet(name string, rows []models.Row) *models.Sheet {
	return &models.Sheet{
		Name:      name,
		UsedRange: UsedRange(rows),
		Rows:      ClipToUsedRange(rows),
	}
}

// Close releases the underlying workbook.
func (w *Workbook) Close() error {
	if w.xlsx != nil {
		return w.xlsx.Close()
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
