package dbmodels

import (
	"sort"
	"time"

	"vacancies-backend/models"
)

type Vacancy struct {
	BaseModel
	UserID     *string              `gorm:"type:varchar(36);index"`
	User       *User                `gorm:"constraint:OnDelete:SET NULL"`
	Slug       string               `gorm:"type:varchar(50)"`
	Name       *string              `gorm:"type:varchar(50)"`
	Text       string               `gorm:"type:varchar(1000);index"`
	Status     models.VacancyStatus `gorm:"type:varchar(10);default:draft"`
	Created    time.Time            `gorm:"type:date"`
	IsArchived bool                 `gorm:"default:false"`
	Skills     []Skill              `gorm:"many2many:vacancy_skills"`
}

// GetUsername имя владельца, пустая строка если владельца нет
func (v Vacancy) GetUsername() string {
	if v.User == nil {
		return ""
	}
	return v.User.Username
}

// SkillNames имена навыков в алфавитном порядке
func (v Vacancy) SkillNames() []string {
	result := make([]string, 0, len(v.Skills))
	for _, skill := range v.Skills {
		result = append(result, skill.Name)
	}
	sort.Strings(result)
	return result
}
