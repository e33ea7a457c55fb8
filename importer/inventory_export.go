package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/LarzzCode/LarGarage/models"
)

const exportSheet = "Stok"

// ExportHeader matches the first synonym of each field so exports re-import cleanly.
var ExportHeader = []interface{}{"Nama Barang", "Merek", "Kategori", "Harga", "Stok", "SKU"}

// WriteInventory writes items as an xlsx workbook.
func WriteInventory(w io.Writer, items []models.InventoryItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{it.Name, it.Brand, it.Category, it.Price, it.Stock, it.SKU}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "A", 32); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
