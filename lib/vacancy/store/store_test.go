package vacancystore

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"vacancies-backend/models"
	apimodels "vacancies-backend/models/api"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
	dbmodels "vacancies-backend/models/db"
)

// тесты работают с настоящим postgres, адрес задается в TEST_DB_DSN
// (docker compose -f docker-compose.test.yml up -d), изменения откатываются
func openTestTx(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN не задан")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gorm_logrus.New()})
	require.Nil(t, err)
	require.Nil(t, conn.AutoMigrate(&dbmodels.User{}, &dbmodels.Skill{}, &dbmodels.Vacancy{}))
	tx := conn.Begin()
	require.Nil(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func newVacancy(text string, name *string, userID *string) dbmodels.Vacancy {
	return dbmodels.Vacancy{
		UserID:  userID,
		Slug:    "slug",
		Name:    name,
		Text:    text,
		Status:  models.VacancyStatusDraft,
		Created: time.Now(),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestVacancyStore(t *testing.T) {
	t.Run(`delete check`, func(t *testing.T) {
		tx := openTestTx(t)
		store := NewInstance(tx)
		skill := dbmodels.Skill{Name: "s-" + uuid.NewString()[:8]}
		require.Nil(t, tx.Create(&skill).Error)
		id, err := store.Create(newVacancy("text-"+uuid.NewString(), nil, nil))
		require.Nil(t, err)
		require.Nil(t, store.AddSkills(id, []dbmodels.Skill{skill}))

		found, err := store.Delete(id)
		require.Nil(t, err)
		require.True(t, found)
		rec, err := store.GetByID(id)
		require.Nil(t, err)
		require.Nil(t, rec)

		// навык остается после удаления вакансии
		var skillCount int64
		require.Nil(t, tx.Model(&dbmodels.Skill{}).Where("id = ?", skill.ID).Count(&skillCount).Error)
		require.Equal(t, int64(1), skillCount)

		found, err = store.Delete(id)
		require.Nil(t, err)
		require.False(t, found)
		found, err = store.Delete(uuid.NewString())
		require.Nil(t, err)
		require.False(t, found)
	})
	t.Run(`add skills twice check`, func(t *testing.T) {
		tx := openTestTx(t)
		store := NewInstance(tx)
		skill := dbmodels.Skill{Name: "s-" + uuid.NewString()[:8]}
		require.Nil(t, tx.Create(&skill).Error)
		id, err := store.Create(newVacancy("text-"+uuid.NewString(), nil, nil))
		require.Nil(t, err)
		require.Nil(t, store.AddSkills(id, []dbmodels.Skill{skill}))
		require.Nil(t, store.AddSkills(id, []dbmodels.Skill{skill}))

		rec, err := store.GetByID(id)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.Len(t, rec.Skills, 1)
	})
	t.Run(`list filter and order check`, func(t *testing.T) {
		tx := openTestTx(t)
		store := NewInstance(tx)
		text := "text-" + uuid.NewString()
		noNameID, err := store.Create(newVacancy(text, nil, nil))
		require.Nil(t, err)
		bID, err := store.Create(newVacancy(text, strPtr("b"), nil))
		require.Nil(t, err)
		aID, err := store.Create(newVacancy(text, strPtr("a"), nil))
		require.Nil(t, err)
		_, err = store.Create(newVacancy(text+" other", strPtr("a"), nil))
		require.Nil(t, err)

		filter := vacancyapimodels.VacancyFilter{
			Text:       text,
			Pagination: apimodels.Pagination{Page: 0, PerPage: 2},
		}
		count, err := store.ListCount(filter)
		require.Nil(t, err)
		require.Equal(t, int64(3), count)

		list, err := store.List(filter)
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, aID, list[0].ID)
		require.Equal(t, bID, list[1].ID)

		filter.Page = 1
		list, err = store.List(filter)
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, noNameID, list[0].ID)
	})
	t.Run(`archive by user check`, func(t *testing.T) {
		tx := openTestTx(t)
		store := NewInstance(tx)
		user := dbmodels.User{Username: "u-" + uuid.NewString()}
		require.Nil(t, tx.Create(&user).Error)
		id, err := store.Create(newVacancy("text-"+uuid.NewString(), nil, &user.ID))
		require.Nil(t, err)

		count, err := store.ArchiveByUser(user.ID)
		require.Nil(t, err)
		require.Equal(t, int64(1), count)

		rec, err := store.GetByID(id)
		require.Nil(t, err)
		require.NotNil(t, rec)
		require.True(t, rec.IsArchived)
		require.Nil(t, rec.UserID)
		require.Equal(t, "", rec.GetUsername())
	})
}
