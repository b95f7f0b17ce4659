package vacancystore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	apimodels "vacancies-backend/models/api"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
	dbmodels "vacancies-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) (found bool, err error)
	ListCount(filter vacancyapimodels.VacancyFilter) (count int64, err error)
	List(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error)
	AddSkills(id string, skills []dbmodels.Skill) error
	ArchiveByUser(userID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Omit("User", "Skills").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload("User").
		Preload("Skills").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	err := tx.Error
	if err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

// Delete удаляет вакансию вместе со связями с навыками, сами навыки остаются
func (i impl) Delete(id string) (found bool, err error) {
	rec := dbmodels.Vacancy{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	tx := i.db.
		Select("Skills").
		Delete(&rec)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) ListCount(filter vacancyapimodels.VacancyFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества вакансий")
		return 0, errors.New("ошибка получения общего количества вакансий")
	}
	return rowCount, nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	i.addSort(tx)
	i.setPage(tx, filter.Pagination)
	err = tx.
		Preload("User").
		Preload("Skills").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// AddSkills добавляет связи с навыками, уже существующие связи не дублируются
func (i impl) AddSkills(id string, skills []dbmodels.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	rec := dbmodels.Vacancy{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Model(&rec).
		Association("Skills").
		Append(skills)
	if err != nil {
		return errors.Wrap(err, "ошибка добавления навыков вакансии")
	}
	return nil
}

// ArchiveByUser архивирует вакансии пользователя и отвязывает их от него
func (i impl) ArchiveByUser(userID string) (count int64, err error) {
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"is_archived": true,
			"user_id":     nil,
		})
	if tx.Error != nil {
		return 0, errors.Wrap(tx.Error, "ошибка архивации вакансий пользователя")
	}
	return tx.RowsAffected, nil
}

func (i impl) addSort(tx *gorm.DB) {
	tx.Order("vacancies.name asc nulls last").
		Order("vacancies.created_at asc")
}

func (i impl) addFilter(tx *gorm.DB, filter vacancyapimodels.VacancyFilter) {
	if filter.Text != "" {
		tx.Where("vacancies.text = ?", filter.Text)
	}
}

func (i impl) setPage(tx *gorm.DB, page apimodels.Pagination) {
	tx.Limit(page.GetLimit()).Offset(page.GetOffset())
}
