package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		BodyLimit     int64  `default:"1048576" env:"APP_BODY_LIMIT"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
	}
	Database struct {
		Host               string `default:"127.0.0.1" env:"DB_HOST"`
		Port               string `default:"5432" env:"DB_PORT"`
		Name               string `default:"vacancies" env:"DB_NAME"`
		User               string `default:"postgres" env:"DB_USER"`
		Password           string `default:"postgres" env:"DB_PASSWORD"`
		SSLMode            string `default:"disable" env:"DB_SSL_MODE"`
		MaxOpenConns       int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns       int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnMaxLifetimeMin int    `default:"30" env:"DB_CONN_MAX_LIFETIME_MIN"` // минуты, 0 - без ограничения
		MigrateOnStart     *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode          *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Pagination struct {
		TotalOnPage int `default:"10" env:"PAGINATION_TOTAL_ON_PAGE"`
	}
	Validation struct {
		SlugMinLength  *int  `default:"3" env:"VALIDATION_SLUG_MIN_LENGTH"` // 0 - проверка отключена
		CreatedNotPast *bool `default:"true" env:"VALIDATION_CREATED_NOT_PAST"`
	}
	Swagger struct {
		FilePath string `default:"./docs/swagger.json" env:"SWAGGER_FILE_PATH"`
	}
}

// configFiles yaml файлы конфигурации, APP_CONFIG переопределяет путь к основному файлу
func configFiles() []string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return []string{path}
	}
	return []string{"config.yml"}
}

// Load читает конфигурацию без установки глобального Conf
func Load(files ...string) (*Configuration, error) {
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, files...)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения конфигурации")
	}
	return conf, nil
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf, err := Load(configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
