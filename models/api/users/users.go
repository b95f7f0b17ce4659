package usersapimodels

import (
	"strings"

	apimodels "vacancies-backend/models/api"
	dbmodels "vacancies-backend/models/db"
)

type CreateUser struct {
	Username string `json:"username"`
}

func (r CreateUser) Validate() error {
	verr := apimodels.ValidationError{}
	username := strings.TrimSpace(r.Username)
	if username == "" {
		verr.Add("username", "This field cannot be blank.")
	}
	if len([]rune(username)) > 150 {
		verr.Add("username", "Ensure this value has at most 150 characters.")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:       rec.ID,
		Username: rec.Username,
	}
}

type UserVacancies struct {
	ID        string `json:"id"`
	Name      string `json:"name"`      // имя пользователя
	Vacancies int64  `json:"vacancies"` // кол-во вакансий, включая архивные
}

type UserVacanciesReport struct {
	Items    []UserVacancies `json:"items"`
	Avg      float64         `json:"avg"`       // среднее по текущей странице
	TotalAvg float64         `json:"total_avg"` // среднее по всем пользователям
	Total    int64           `json:"total"`
	PerPage  int             `json:"per_page"`
}

func UserVacanciesConvert(list []dbmodels.UserVacancyCount) []UserVacancies {
	result := make([]UserVacancies, 0, len(list))
	for _, rec := range list {
		result = append(result, UserVacancies{
			ID:        rec.ID,
			Name:      rec.Username,
			Vacancies: rec.Vacancies,
		})
	}
	return result
}

// PageAvg среднее кол-во вакансий по переданным пользователям, 0 для пустого списка
func PageAvg(items []UserVacancies) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum int64
	for _, item := range items {
		sum += item.Vacancies
	}
	return float64(sum) / float64(len(items))
}
