package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mds03339-alt/Update-Feed-Inventory/internal/models"
)

// ReportXLSX writes a one-sheet workbook for a report. The sheet name
// carries the report parameters (Daily-<date>, Monthly-<yyyy-mm>,
// PL-<from>-to-<to>), matching the download file name chosen by the caller.
func ReportXLSX(w io.Writer, sheet string, rows []models.Sale) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := []interface{}{"Date", "Product", "Qty", "Total", "Profit"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.Date, s.ProductName, s.Qty, s.Total, s.Profit}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
