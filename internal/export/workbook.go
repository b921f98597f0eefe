package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/paywallkit/offertext/internal/placeholder"
)

// WorkbookWriter implements RowWriter by writing a local xlsx workbook with a
// header row of placeholder names and one row per offer.
type WorkbookWriter struct {
	path  string
	sheet string
}

// NewWorkbookWriter creates a WorkbookWriter targeting the given file path
// and sheet name.
func NewWorkbookWriter(path, sheet string) *WorkbookWriter {
	return &WorkbookWriter{path: path, sheet: sheet}
}

// Write creates the workbook, fills the preview sheet and saves it.
func (w *WorkbookWriter) Write(rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", w.sheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	header := append([]string{"OFFER"}, placeholder.Names...)
	if err := w.writeRow(f, 1, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := w.writeRow(f, i+2, append([]string{row.Offer}, row.Values...)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func (w *WorkbookWriter) writeRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(w.sheet, cell, &values)
}
