package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	usersapimodels "vacancies-backend/models/api/users"
)

type Provider interface {
	ExportUserVacancies(list []usersapimodels.UserVacancies) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const userVacanciesSheet = "Вакансии пользователей"

var userVacanciesColumns = []column{
	{title: "ИД", width: 40},
	{title: "Пользователь", width: 30},
	{title: "Вакансий", width: 12},
}

func (i impl) ExportUserVacancies(list []usersapimodels.UserVacancies) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, userVacanciesColumns)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(userVacanciesColumns), row+len(list)); err != nil {
			return nil, errors.Wrap(err, "ошибка оформления таблицы в xlsx")
		}
		for _, item := range list {
			row++
			values := []interface{}{item.ID, item.Name, item.Vacancies}
			for idx, value := range values {
				if err = writeCell(f, sheet, idx+1, row, value); err != nil {
					return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
				}
			}
		}
	}
	if err = f.SetSheetName(sheet, userVacanciesSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}
