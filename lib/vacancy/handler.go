package vacancyhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"vacancies-backend/db"
	pdfexport "vacancies-backend/lib/export/pdf"
	skillhandler "vacancies-backend/lib/skill"
	skillstore "vacancies-backend/lib/skill/store"
	usersstore "vacancies-backend/lib/users/store"
	vacancystore "vacancies-backend/lib/vacancy/store"
	apimodels "vacancies-backend/models/api"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
	dbmodels "vacancies-backend/models/db"
)

// Provider операции над вакансиями.
// Create и Update создают недостающие навыки по именам из запроса.
type Provider interface {
	Create(data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error)
	GetByID(id string) (item vacancyapimodels.VacancyView, err error)
	Update(id string, data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error)
	Delete(id string) error
	List(filter vacancyapimodels.VacancyFilter) (page apimodels.PageResponse, err error)
	ExportPdf(id string) (body []byte, err error)
}

var Instance Provider

func NewHandler(rules vacancyapimodels.ValidationRules, perPage int) {
	Instance = impl{
		store:     vacancystore.NewInstance(db.DB),
		userStore: usersstore.NewInstance(db.DB),
		inTx:      dbTransaction(db.DB),
		rules:     rules,
		perPage:   perPage,
		now:       time.Now,
	}
}

type txStores struct {
	vacancy vacancystore.Provider
	skill   skillstore.Provider
}

type txFunc func(fn func(stores txStores) error) error

func dbTransaction(DB *gorm.DB) txFunc {
	return func(fn func(stores txStores) error) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(txStores{
				vacancy: vacancystore.NewInstance(tx),
				skill:   skillstore.NewInstance(tx),
			})
		})
	}
}

type impl struct {
	store     vacancystore.Provider
	userStore usersstore.Provider
	inTx      txFunc
	rules     vacancyapimodels.ValidationRules
	perPage   int
	now       func() time.Time
}

func (i impl) Create(data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error) {
	err = data.Validate(i.rules, i.now(), true)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	err = i.checkOwner(data.UserID)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}

	rec := dbmodels.Vacancy{
		UserID:  data.UserID,
		Slug:    data.Slug,
		Name:    data.Name,
		Text:    data.Text,
		Status:  data.GetStatus(),
		Created: data.GetCreated(i.now()),
	}
	recID := ""
	err = i.inTx(func(stores txStores) error {
		recID, err = stores.vacancy.Create(rec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания вакансии")
		}
		skills, err := skillhandler.ResolveSkills(stores.skill, data.Skills, nil)
		if err != nil {
			return errors.Wrap(err, "ошибка получения навыков")
		}
		return stores.vacancy.AddSkills(recID, skills)
	})
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	i.getLogger(recID).Info("создана вакансия")
	return i.GetByID(recID)
}

func (i impl) GetByID(id string) (item vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apimodels.NewNotFound("Not found")
	}
	return vacancyapimodels.VacancyConvert(*rec), nil
}

func (i impl) Update(id string, data vacancyapimodels.VacancyData) (item vacancyapimodels.VacancyView, err error) {
	logger := i.getLogger(id)
	err = data.Validate(i.rules, i.now(), false)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apimodels.NewNotFound("Not found")
	}

	updMap := map[string]interface{}{
		"Slug":   data.Slug,
		"Text":   data.Text,
		"Status": data.Status,
	}
	if data.Name != nil {
		updMap["Name"] = *data.Name
	}
	err = i.inTx(func(stores txStores) error {
		err := stores.vacancy.Update(id, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка обновления вакансии")
		}
		skills, err := skillhandler.ResolveSkills(stores.skill, data.Skills, rec.Skills)
		if err != nil {
			return errors.Wrap(err, "ошибка получения навыков")
		}
		return stores.vacancy.AddSkills(id, skills)
	})
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	logger.Info("обновлена вакансия")
	return i.GetByID(id)
}

func (i impl) Delete(id string) error {
	found, err := i.store.Delete(id)
	if err != nil {
		return errors.Wrap(err, "ошибка удаления вакансии")
	}
	if !found {
		return apimodels.NewNotFound("Not found")
	}
	i.getLogger(id).Info("удалена вакансия")
	return nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (page apimodels.PageResponse, err error) {
	filter.PerPage = i.perPage
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return apimodels.PageResponse{}, err
	}
	items := []vacancyapimodels.VacancyListItem{}
	if !filter.InRange(rowCount) {
		return apimodels.NewPageResponse(items, rowCount, filter.GetLimit()), nil
	}

	recList, err := i.store.List(filter)
	if err != nil {
		return apimodels.PageResponse{}, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	for _, rec := range recList {
		items = append(items, vacancyapimodels.VacancyListItemConvert(rec))
	}
	return apimodels.NewPageResponse(items, rowCount, filter.GetLimit()), nil
}

func (i impl) ExportPdf(id string) (body []byte, err error) {
	item, err := i.GetByID(id)
	if err != nil {
		return nil, err
	}
	body, err = pdfexport.GenerateVacancyCard(item)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return body, nil
}

func (i impl) checkOwner(userID *string) error {
	if userID == nil {
		return nil
	}
	user, err := i.userStore.GetByID(*userID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil {
		verr := apimodels.ValidationError{}
		verr.Add("user_id", fmt.Sprintf("user instance with id %s does not exist.", *userID))
		return verr
	}
	return nil
}

func (i impl) getLogger(vacancyID string) *log.Entry {
	logger := log.NewEntry(log.StandardLogger())
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	return logger
}
