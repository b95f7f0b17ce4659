package vacancyapimodels

import (
	"fmt"
	"time"
	"unicode/utf8"

	"vacancies-backend/models"
	apimodels "vacancies-backend/models/api"
	dbmodels "vacancies-backend/models/db"
)

type VacancyData struct {
	UserID  *string              `json:"user_id" validate:"omitempty,uuid"`                // ид владельца
	Slug    string               `json:"slug" validate:"required,max=50,slug"`             // короткий идентификатор
	Name    *string              `json:"name" validate:"omitempty,max=50"`                 // название вакансии
	Text    string               `json:"text" validate:"required,max=1000"`                // текст вакансии
	Status  models.VacancyStatus `json:"status"`                                           // статус
	Created string               `json:"created" validate:"omitempty,datetime=2006-01-02"` // дата создания YYYY-MM-DD
	Skills  []string             `json:"skills" validate:"dive,required,max=20"`           // навыки, недостающие создаются
}

// Validate проверка данных вакансии, isCreate - проверка при создании.
// Возвращает apimodels.ValidationError со всеми найденными ошибками полей
func (v VacancyData) Validate(rules ValidationRules, now time.Time, isCreate bool) error {
	verr := apimodels.ValidationError{}
	validateStruct(v, &verr)

	if rules.SlugMinLength > 0 && v.Slug != "" {
		if length := utf8.RuneCountInString(v.Slug); length < rules.SlugMinLength {
			verr.Add("slug", fmt.Sprintf("Ensure this value has at least %d characters (it has %d).", rules.SlugMinLength, length))
		}
	}
	if v.Status != "" {
		if err := v.Status.Validate(); err != nil {
			verr.Add("status", fmt.Sprintf("Value %q is not a valid choice.", string(v.Status)))
		}
	} else if !isCreate {
		verr.Add("status", "This field cannot be blank.")
	}
	if isCreate && rules.CreatedNotPast && v.Created != "" {
		created, err := time.Parse(DateLayout, v.Created)
		if err == nil && created.Before(truncateToDate(now)) {
			verr.Add("created", fmt.Sprintf("%s is in the past", v.Created))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// GetCreated дата создания из запроса, по умолчанию - текущая дата
func (v VacancyData) GetCreated(now time.Time) time.Time {
	if v.Created != "" {
		created, err := time.Parse(DateLayout, v.Created)
		if err == nil {
			return created
		}
	}
	return truncateToDate(now)
}

func (v VacancyData) GetStatus() models.VacancyStatus {
	if v.Status == "" {
		return models.VacancyStatusDraft
	}
	return v.Status
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type VacancyFilter struct {
	Text string // точное совпадение текста вакансии, пустое значение - без фильтра
	apimodels.Pagination
}

type VacancyView struct {
	ID         string               `json:"id"`
	Name       *string              `json:"name"`
	Text       string               `json:"text"`
	UserID     *string              `json:"user_id"`
	Slug       string               `json:"slug"`
	Status     models.VacancyStatus `json:"status"`
	Skills     []string             `json:"skills"`
	Created    string               `json:"created"`
	IsArchived bool                 `json:"is_archived"`
}

type VacancyListItem struct {
	ID       string   `json:"id"`
	Name     *string  `json:"name"`
	Text     string   `json:"text"`
	Username string   `json:"username"` // имя владельца, пустое если владельца нет
	Skills   []string `json:"skills"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		ID:         rec.ID,
		Name:       rec.Name,
		Text:       rec.Text,
		UserID:     rec.UserID,
		Slug:       rec.Slug,
		Status:     rec.Status,
		Skills:     rec.SkillNames(),
		Created:    rec.Created.Format(DateLayout),
		IsArchived: rec.IsArchived,
	}
}

func VacancyListItemConvert(rec dbmodels.Vacancy) VacancyListItem {
	return VacancyListItem{
		ID:       rec.ID,
		Name:     rec.Name,
		Text:     rec.Text,
		Username: rec.GetUsername(),
		Skills:   rec.SkillNames(),
	}
}
