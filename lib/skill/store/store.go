package skillstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "vacancies-backend/models/db"
)

type Provider interface {
	FindByName(name string) (rec *dbmodels.Skill, err error)
	FindOrCreate(name string) (rec dbmodels.Skill, err error)
	List() (list []dbmodels.Skill, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) FindByName(name string) (*dbmodels.Skill, error) {
	rec := dbmodels.Skill{}
	err := i.db.
		Where("name = ?", name).
		Order("created_at asc").
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

// FindOrCreate возвращает навык по точному имени, создавая его при отсутствии.
// Уникальность имени не закреплена в БД, поэтому внутри транзакции
// параллельные вызовы с одним именем сериализуются advisory-блокировкой.
func (i impl) FindOrCreate(name string) (dbmodels.Skill, error) {
	err := i.db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "skill:"+name).Error
	if err != nil {
		return dbmodels.Skill{}, errors.Wrap(err, "ошибка блокировки навыка")
	}
	existed, err := i.FindByName(name)
	if err != nil {
		return dbmodels.Skill{}, errors.Wrap(err, "ошибка поиска навыка")
	}
	if existed != nil {
		return *existed, nil
	}
	rec := dbmodels.Skill{Name: name}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return dbmodels.Skill{}, errors.Wrap(err, "ошибка создания навыка")
	}
	return rec, nil
}

func (i impl) List() (list []dbmodels.Skill, err error) {
	list = []dbmodels.Skill{}
	err = i.db.
		Model(&dbmodels.Skill{}).
		Order("name asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
