package xlsexport

import "github.com/xuri/excelize/v2"

const fontFamily = "Times New Roman"

type column struct {
	title string
	width float64
}

func writeCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func cellRange(colFrom, rowFrom, colTo, rowTo int) (first, last string, err error) {
	first, err = excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return "", "", err
	}
	last, err = excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}

// writeHeader пишет строку заголовка с шириной колонок, возвращает номер записанной строки
func writeHeader(f *excelize.File, sheet string, row int, columns []column) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
	})
	if err != nil {
		return row, err
	}
	first, last, err := cellRange(1, row, len(columns), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, first, last, style); err != nil {
		return row, err
	}
	for idx, col := range columns {
		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, name, name, col.width); err != nil {
			return row, err
		}
		if err = writeCell(f, sheet, idx+1, row, col.title); err != nil {
			return row, err
		}
	}
	return row, nil
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	})
	if err != nil {
		return err
	}
	first, last, err := cellRange(colFrom, rowFrom, colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
