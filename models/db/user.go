package dbmodels

// User запись пользователя, ведется подсистемой авторизации.
type User struct {
	BaseModel
	Username  string `gorm:"type:varchar(150);uniqueIndex"`
	Vacancies []Vacancy
}

// UserVacancyCount пользователь с количеством его вакансий (архивные тоже считаются)
type UserVacancyCount struct {
	ID        string
	Username  string
	Vacancies int64
}
