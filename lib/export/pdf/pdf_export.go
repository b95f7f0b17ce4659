package pdfexport

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
)

// GenerateVacancyCard карточка вакансии в pdf (A4, встроенный шрифт Helvetica)
func GenerateVacancyCard(item vacancyapimodels.VacancyView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateVacancyCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	title := item.Slug
	if item.Name != nil && *item.Name != "" {
		title = *item.Name
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	_, lineHt := pdf.GetFontSize()
	lineHt += 2
	rows := [][2]string{
		{"ID", item.ID},
		{"Slug", item.Slug},
		{"Status", string(item.Status)},
		{"Created", item.Created},
		{"Skills", strings.Join(item.Skills, ", ")},
	}
	if item.IsArchived {
		rows = append(rows, [2]string{"Archived", "yes"})
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(30, lineHt, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineHt, tr(row[1]), "", "L", false)
	}
	pdf.Ln(4)
	pdf.MultiCell(0, lineHt, tr(item.Text), "", "L", false)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка записи pdf")
	}
	return buf.Bytes(), nil
}
