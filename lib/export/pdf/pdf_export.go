package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// OfferLetterData - данные для письма с предложением о работе.
type OfferLetterData struct {
	CompanyName   string
	ApplicantFio  string
	PositionTitle string
	GradeBand     string
	Salary        int
	StartDate     string
}

func GenerateOfferLetter(data OfferLetterData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOfferLetter panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 12, data.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, "Предложение о работе", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 3
	pdf.MultiCell(0, lineHt, fmt.Sprintf("Уважаемый(ая) %v!", data.ApplicantFio), "", "L", false)
	pdf.Ln(3)
	body := fmt.Sprintf(
		"Рады предложить вам позицию «%v»%v с окладом %v руб. Предполагаемая дата выхода: %v.",
		data.PositionTitle, gradePart(data.GradeBand), data.Salary, data.StartDate)
	pdf.MultiCell(0, lineHt, body, "", "L", false)
	pdf.Ln(3)
	pdf.MultiCell(0, lineHt, "Предложение согласовано руководителем подразделения и операционным директором. Ждем вашего решения.", "", "L", false)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gradePart(grade string) string {
	if grade == "" {
		return ""
	}
	return fmt.Sprintf(" (грейд %v)", grade)
}
