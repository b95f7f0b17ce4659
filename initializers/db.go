package initializers

import (
	"time"

	"vacancies-backend/config"
	"vacancies-backend/db"
)

func InitDBConnection() {
	dbConf := config.Conf.Database
	err := db.Connect(db.Settings{
		Host:            dbConf.Host,
		Port:            dbConf.Port,
		Name:            dbConf.Name,
		User:            dbConf.User,
		Password:        dbConf.Password,
		SSLMode:         dbConf.SSLMode,
		MaxOpenConns:    dbConf.MaxOpenConns,
		MaxIdleConns:    dbConf.MaxIdleConns,
		ConnMaxLifetime: time.Duration(dbConf.ConnMaxLifetimeMin) * time.Minute,
		DebugMode:       *dbConf.DebugMode,
		MigrateOnStart:  *dbConf.MigrateOnStart,
	})
	if err != nil {
		panic(err.Error())
	}
}
