package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	apimodels "vacancies-backend/models/api"
	dbmodels "vacancies-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	ExistByUsername(username string) (bool, error)
	Delete(id string) error
	Count() (count int64, err error)
	ListWithVacancyCount(page apimodels.Pagination) (list []dbmodels.UserVacancyCount, err error)
	AvgVacancyCount() (avg float64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Omit("Vacancies").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) ExistByUsername(username string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("username = ?", username).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount != 0, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.User{}).
		Count(&count).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения количества пользователей")
	}
	return count, nil
}

func (i impl) ListWithVacancyCount(page apimodels.Pagination) (list []dbmodels.UserVacancyCount, err error) {
	list = []dbmodels.UserVacancyCount{}
	err = i.vacancyCountQuery().
		Order("users.username asc").
		Limit(page.GetLimit()).
		Offset(page.GetOffset()).
		Scan(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	return list, nil
}

// AvgVacancyCount среднее кол-во вакансий на пользователя по всем пользователям
func (i impl) AvgVacancyCount() (avg float64, err error) {
	err = i.db.
		Table("(?) as t", i.vacancyCountQuery()).
		Select("COALESCE(AVG(t.vacancies), 0)").
		Scan(&avg).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчета среднего количества вакансий")
	}
	return avg, nil
}

func (i impl) vacancyCountQuery() *gorm.DB {
	return i.db.
		Model(&dbmodels.User{}).
		Select("users.id, users.username, count(vacancies.id) as vacancies").
		Joins("left join vacancies on vacancies.user_id = users.id").
		Group("users.id, users.username")
}
