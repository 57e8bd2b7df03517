package models

// SplitResult describes the output of a split run.
type SplitResult struct {
	// Source is the input workbook path.
	Source string `json:"source"`
	// SheetName is the name of the sheet that was split.
	SheetName string `json:"sheet_name"`
	// UsedRange is the bounding box of non-empty source cells (e.g. "A1:D10").
	UsedRange string `json:"used_range,omitempty"`
	// TotalRows is the number of rows read from the source sheet.
	TotalRows int `json:"total_rows"`
	// HeaderRows is the number of rows captured as the repeated header.
	HeaderRows int `json:"header_rows"`
	// RowsPerFile is the configured page size.
	RowsPerFile int `json:"rows_per_file"`
	// TotalPages is the number of pages expected for TotalRows.
	TotalPages int `json:"total_pages"`
	// Pages lists every output file that was closed successfully, in page order.
	Pages []PageResult `json:"pages"`
}

// PageResult describes one output file.
type PageResult struct {
	// Page is the 1-based page number.
	Page int `json:"page"`
	// Path is the output file path.
	Path string `json:"path"`
	// Rows is the number of rows written, header rows included.
	Rows int `json:"rows"`
	// HeaderRows is the number of reinjected header rows at the top of the file.
	HeaderRows int `json:"header_rows,omitempty"`
}
