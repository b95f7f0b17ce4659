package usershandler

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"vacancies-backend/db"
	xlsexport "vacancies-backend/lib/export/xls"
	usersstore "vacancies-backend/lib/users/store"
	vacancystore "vacancies-backend/lib/vacancy/store"
	apimodels "vacancies-backend/models/api"
	usersapimodels "vacancies-backend/models/api/users"
	dbmodels "vacancies-backend/models/db"
)

type Provider interface {
	Create(request usersapimodels.CreateUser) (user usersapimodels.UserView, err error)
	Delete(id string) error
	VacanciesReport(page int) (report usersapimodels.UserVacanciesReport, err error)
	ExportVacanciesReport() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler(perPage int) {
	Instance = impl{
		store:   usersstore.NewInstance(db.DB),
		inTx:    dbTransaction(db.DB),
		perPage: perPage,
	}
}

type txStores struct {
	users   usersstore.Provider
	vacancy vacancystore.Provider
}

type txFunc func(fn func(stores txStores) error) error

func dbTransaction(DB *gorm.DB) txFunc {
	return func(fn func(stores txStores) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(txStores{
				users:   usersstore.NewInstance(tx),
				vacancy: vacancystore.NewInstance(tx),
			})
		})
	}
}

type impl struct {
	store   usersstore.Provider
	inTx    txFunc
	perPage int
}

func (i impl) Create(request usersapimodels.CreateUser) (user usersapimodels.UserView, err error) {
	request.Username = strings.TrimSpace(request.Username)
	err = request.Validate()
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	exist, err := i.store.ExistByUsername(request.Username)
	if err != nil {
		return usersapimodels.UserView{}, errors.Wrap(err, "ошибка проверки уже существующего пользователя")
	}
	if exist {
		verr := apimodels.ValidationError{}
		verr.Add("username", "A user with that username already exists.")
		return usersapimodels.UserView{}, verr
	}
	rec := dbmodels.User{
		Username: request.Username,
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		return usersapimodels.UserView{}, errors.Wrap(err, "ошибка создания пользователя")
	}
	log.WithField("user_id", rec.ID).Info("создан пользователь")
	return usersapimodels.UserConvert(rec), nil
}

// Delete удаляет пользователя. В той же транзакции все его вакансии
// архивируются и отвязываются от владельца.
func (i impl) Delete(id string) error {
	logger := log.WithField("user_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec == nil {
		return apimodels.NewNotFound("Not found")
	}
	var archived int64
	err = i.inTx(func(stores txStores) error {
		archived, err = stores.vacancy.ArchiveByUser(id)
		if err != nil {
			return err
		}
		return stores.users.Delete(id)
	})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления пользователя")
	}
	logger.
		WithField("archived_vacancies", archived).
		Info("удален пользователь")
	return nil
}

func (i impl) VacanciesReport(page int) (report usersapimodels.UserVacanciesReport, err error) {
	pagination := apimodels.Pagination{
		Page:    page,
		PerPage: i.perPage,
	}
	report = usersapimodels.UserVacanciesReport{
		Items:   []usersapimodels.UserVacancies{},
		PerPage: pagination.GetLimit(),
	}
	report.Total, err = i.store.Count()
	if err != nil {
		return usersapimodels.UserVacanciesReport{}, err
	}
	report.TotalAvg, err = i.store.AvgVacancyCount()
	if err != nil {
		return usersapimodels.UserVacanciesReport{}, err
	}
	if !pagination.InRange(report.Total) {
		return report, nil
	}
	list, err := i.store.ListWithVacancyCount(pagination)
	if err != nil {
		return usersapimodels.UserVacanciesReport{}, err
	}
	report.Items = usersapimodels.UserVacanciesConvert(list)
	report.Avg = usersapimodels.PageAvg(report.Items)
	return report, nil
}

func (i impl) ExportVacanciesReport() (*bytes.Buffer, error) {
	total, err := i.store.Count()
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListWithVacancyCount(apimodels.Pagination{PerPage: int(total)})
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportUserVacancies(usersapimodels.UserVacanciesConvert(list))
}
