package initializers

import (
	"vacancies-backend/config"
	"vacancies-backend/fiberlog"
	xlsexport "vacancies-backend/lib/export/xls"
	skillhandler "vacancies-backend/lib/skill"
	usershandler "vacancies-backend/lib/users"
	vacancyhandler "vacancies-backend/lib/vacancy"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	xlsexport.NewHandler()
	skillhandler.NewHandler()
	usershandler.NewHandler(config.Conf.Pagination.TotalOnPage)
	vacancyhandler.NewHandler(vacancyRules(), config.Conf.Pagination.TotalOnPage)
}

func vacancyRules() vacancyapimodels.ValidationRules {
	return vacancyapimodels.ValidationRules{
		SlugMinLength:  *config.Conf.Validation.SlugMinLength,
		CreatedNotPast: *config.Conf.Validation.CreatedNotPast,
	}
}
