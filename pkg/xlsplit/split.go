package xlsplit

import (
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/parser"
	"go.uber.org/zap"
)

// Split splits the first sheet of the workbook at path into files of at most
// opts.RowsPerFile source rows each.
//
// On failure the returned result lists the pages that were closed before the
// error; their files are complete. The file of the failing page may be
// missing or truncated.
func Split(path string, opts Options) (*models.SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.logger()
	observer := opts.observer()

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(path)
	}

	observer.StepStarted(StepRead)
	wb, err := parser.Open(path)
	if err != nil {
		return nil, NewReadError(path, err)
	}

	observer.StepStarted(StepParse)
	sheet, err := wb.FirstSheet()
	if cerr := wb.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, NewReadError(path, err)
	}

	header := sheet.Head(opts.HeaderRows)
	result := &models.SplitResult{
		Source:      path,
		SheetName:   sheet.Name,
		UsedRange:   sheet.UsedRange,
		TotalRows:   sheet.Len(),
		HeaderRows:  len(header),
		RowsPerFile: opts.RowsPerFile,
		TotalPages:  TotalPages(sheet.Len(), opts.RowsPerFile),
	}
	logger.Debug("read source sheet",
		zap.String("path", path),
		zap.String("format", string(wb.Format())),
		zap.String("sheet", sheet.Name),
		zap.String("used_range", result.UsedRange),
		zap.Int("rows", result.TotalRows),
		zap.Int("header_rows", result.HeaderRows),
	)

	observer.StepStarted(StepSave)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return result, NewCreateError(outputDir, 1, err)
	}

	p := &paginator{
		input:      path,
		outputDir:  outputDir,
		count:      opts.RowsPerFile,
		header:     header,
		totalPages: result.TotalPages,
		logger:     logger,
		observer:   observer,
	}
	err = p.run(sheet.Rows)
	result.Pages = p.pages
	if err != nil {
		return result, err
	}

	observer.Finished()
	return result, nil
}
