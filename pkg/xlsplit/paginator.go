package xlsplit

import (
	"path/filepath"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/writer"
	"go.uber.org/zap"
)

// TotalPages returns ceil(rows / rowsPerFile), and 1 for an empty sheet.
func TotalPages(rows, rowsPerFile int) int {
	if rowsPerFile < 1 {
		return 0
	}
	if rows <= 0 {
		return 1
	}
	return (rows + rowsPerFile - 1) / rowsPerFile
}

// paginator owns the pagination state of one split run: the page counter,
// the output row cursor and the single open output file.
type paginator struct {
	input      string
	outputDir  string
	count      int
	header     []models.Row
	totalPages int

	page     int
	rowIndex int
	current  *writer.File
	pages    []models.PageResult

	logger   *zap.Logger
	observer Observer
}

// run writes every source row, opening a new output file every count rows.
// Page 1 starts with the source rows themselves; pages 2..N start with the header.
func (p *paginator) run(rows []models.Row) (err error) {
	defer func() {
		if err != nil && p.current != nil {
			p.current.Discard()
			p.current = nil
		}
	}()

	p.page = 1
	if err := p.open(); err != nil {
		return err
	}

	for i, row := range rows {
		if i == p.count*p.page {
			if err := p.closeCurrent(); err != nil {
				return err
			}
			p.page++
			if err := p.open(); err != nil {
				return err
			}
			if err := p.writeHeader(); err != nil {
				return err
			}
		}

		if err := p.write(row); err != nil {
			return err
		}
	}

	return p.closeCurrent()
}

// open creates the output file for the current page and resets the row cursor.
func (p *paginator) open() error {
	f, err := writer.Create(p.outputDir, p.input, p.page)
	if err != nil {
		return NewCreateError(p.outputPath(), p.page, err)
	}
	p.current = f
	p.rowIndex = 0
	p.logger.Debug("opened output file", zap.Int("page", p.page), zap.String("path", f.Path()))
	return nil
}

func (p *paginator) writeHeader() error {
	for _, row := range p.header {
		if err := p.write(row); err != nil {
			return err
		}
	}
	return nil
}

func (p *paginator) write(row models.Row) error {
	if err := p.current.WriteRow(p.rowIndex, row); err != nil {
		return NewWriteError(p.current.Path(), p.page, err)
	}
	p.rowIndex++
	return nil
}

// closeCurrent finalizes the open output file. The handle is dropped even on failure.
func (p *paginator) closeCurrent() error {
	f := p.current
	p.current = nil
	if err := f.Close(); err != nil {
		return NewWriteError(f.Path(), p.page, err)
	}

	headerRows := 0
	if f.Page() > 1 {
		headerRows = len(p.header)
	}
	p.pages = append(p.pages, models.PageResult{
		Page:       f.Page(),
		Path:       f.Path(),
		Rows:       f.Rows(),
		HeaderRows: headerRows,
	})
	p.logger.Info("saved output file",
		zap.Int("page", f.Page()),
		zap.Int("total_pages", p.totalPages),
		zap.Int("rows", f.Rows()),
		zap.String("path", f.Path()),
	)
	p.observer.PageClosed(f.Page(), p.totalPages)
	return nil
}

// outputPath returns the path of the current page's file, or the input path
// when no output name can be derived from it.
func (p *paginator) outputPath() string {
	name, err := writer.OutputName(p.input, p.page)
	if err != nil {
		return p.input
	}
	return filepath.Join(p.outputDir, name)
}
