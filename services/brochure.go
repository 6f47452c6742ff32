package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"trainings-module/models"
)

// GenerateBrochure creates a one-page PDF flyer for a training listing.
func GenerateBrochure(t *models.Training) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(40, 10, t.Title)
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, fmt.Sprintf("Provider: %s", t.Provider))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Category: %s | Type: %s", t.Category, t.Type))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Duration: %s", t.Duration))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Price: NGN %d", t.Price))
	pdf.Ln(8)
	if t.Location != nil {
		pdf.Cell(40, 8, fmt.Sprintf("Location: %s", *t.Location))
		pdf.Ln(8)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(180, 6, t.Description, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating brochure PDF: %w", err)
	}
	return buf.Bytes(), nil
}
