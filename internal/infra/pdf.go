package infra

// pdf.go — register report export using go-pdf/fpdf. Produces the same table
// the cajas view prints: one row per register with opening data and status.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OvidioSandoval/peluqueria-sub000/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCajasPDF writes the register report to storagePath and returns the
// absolute path of the generated file.
func GenerateCajasPDF(cajas []model.Caja, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cajas_%s.pdf", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Reporte de Cajas", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Fecha: "+time.Now().Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	headers := []string{"ID", "Nombre", "Fecha", "Empleado", "Apertura", "Cierre", "M. Inicial", "M. Final", "Estado"}
	widths := []float64{0.05, 0.18, 0.11, 0.18, 0.09, 0.09, 0.11, 0.11, 0.08}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(93, 64, 55)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(contentW*widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, caja := range cajas {
		empleado := "-"
		if caja.Empleado != nil {
			empleado = caja.Empleado.NombreCompleto
		}
		montoFinal := "-"
		if caja.MontoFinal != nil {
			montoFinal = caja.MontoFinal.StringFixed(0)
		}
		cols := []string{
			fmt.Sprintf("%d", caja.ID),
			caja.Nombre,
			caja.Fecha,
			empleado,
			horaODefecto(caja.HoraApertura),
			horaODefecto(caja.HoraCierre),
			caja.MontoInicial.StringFixed(0),
			montoFinal,
			caja.Estado,
		}
		for i, col := range cols {
			pdf.CellFormat(contentW*widths[i], 6, col, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

func horaODefecto(hora *string) string {
	if hora == nil || *hora == "" {
		return "-"
	}
	return *hora
}
