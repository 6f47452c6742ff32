package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"trainings-module/models"
)

var exportHeader = []string{
	"ID", "Title", "Provider", "Category", "Type", "Price", "Duration",
	"Location", "City", "State", "Status", "Featured", "Created At",
}

// WriteTrainingsExcel writes the collection as an xlsx workbook to w, one
// training per row on Sheet1.
func WriteTrainingsExcel(w io.Writer, trainings []models.Training) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("error building export header: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("error writing export header: %w", err)
		}
	}

	for i, t := range trainings {
		row := []interface{}{
			t.ID, t.Title, t.Provider, t.Category, t.Type, t.Price, t.Duration,
			deref(t.Location), deref(t.City), deref(t.State), t.Status,
			t.Featured, t.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("error building export row: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("error writing export row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
