package vacancyhandler

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"vacancies-backend/models"
	apimodels "vacancies-backend/models/api"
	vacancyapimodels "vacancies-backend/models/api/vacancy"
	dbmodels "vacancies-backend/models/db"
)

type fakeSkillStore struct {
	recs []dbmodels.Skill
}

func (s *fakeSkillStore) FindByName(name string) (*dbmodels.Skill, error) {
	for _, rec := range s.recs {
		if rec.Name == name {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *fakeSkillStore) FindOrCreate(name string) (dbmodels.Skill, error) {
	existed, _ := s.FindByName(name)
	if existed != nil {
		return *existed, nil
	}
	rec := dbmodels.Skill{Name: name}
	rec.ID = uuid.NewString()
	s.recs = append(s.recs, rec)
	return rec, nil
}

func (s *fakeSkillStore) List() ([]dbmodels.Skill, error) {
	return s.recs, nil
}

type fakeUserStore struct {
	users map[string]dbmodels.User
}

func (s *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = uuid.NewString()
	s.users[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeUserStore) ExistByUsername(username string) (bool, error) {
	for _, rec := range s.users {
		if rec.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Delete(id string) error {
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) Count() (int64, error) {
	return int64(len(s.users)), nil
}

func (s *fakeUserStore) ListWithVacancyCount(page apimodels.Pagination) ([]dbmodels.UserVacancyCount, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeUserStore) AvgVacancyCount() (float64, error) {
	return 0, errors.New("not implemented")
}

// fakeVacancyStore хранит вакансии в порядке добавления
type fakeVacancyStore struct {
	recs    []dbmodels.Vacancy
	users   *fakeUserStore
	failAdd bool
}

func (s *fakeVacancyStore) find(id string) int {
	for idx, rec := range s.recs {
		if rec.ID == id {
			return idx
		}
	}
	return -1
}

func (s *fakeVacancyStore) withUser(rec dbmodels.Vacancy) dbmodels.Vacancy {
	rec.User = nil
	if rec.UserID != nil {
		rec.User, _ = s.users.GetByID(*rec.UserID)
	}
	rec.Skills = append([]dbmodels.Skill{}, rec.Skills...)
	return rec
}

func (s *fakeVacancyStore) Create(rec dbmodels.Vacancy) (string, error) {
	rec.ID = uuid.NewString()
	rec.Skills = nil
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *fakeVacancyStore) GetByID(id string) (*dbmodels.Vacancy, error) {
	idx := s.find(id)
	if idx < 0 {
		return nil, nil
	}
	rec := s.withUser(s.recs[idx])
	return &rec, nil
}

func (s *fakeVacancyStore) Update(id string, updMap map[string]interface{}) error {
	idx := s.find(id)
	if idx < 0 {
		return errors.New("запись не найдена")
	}
	rec := &s.recs[idx]
	for key, value := range updMap {
		switch key {
		case "Slug":
			rec.Slug = value.(string)
		case "Text":
			rec.Text = value.(string)
		case "Status":
			rec.Status = value.(models.VacancyStatus)
		case "Name":
			name := value.(string)
			rec.Name = &name
		default:
			return errors.Errorf("unexpected field %s", key)
		}
	}
	return nil
}

func (s *fakeVacancyStore) Delete(id string) (bool, error) {
	idx := s.find(id)
	if idx < 0 {
		return false, nil
	}
	s.recs = append(s.recs[:idx], s.recs[idx+1:]...)
	return true, nil
}

func (s *fakeVacancyStore) filtered(filter vacancyapimodels.VacancyFilter) []dbmodels.Vacancy {
	result := []dbmodels.Vacancy{}
	for _, rec := range s.recs {
		if filter.Text != "" && rec.Text != filter.Text {
			continue
		}
		result = append(result, s.withUser(rec))
	}
	return result
}

func (s *fakeVacancyStore) ListCount(filter vacancyapimodels.VacancyFilter) (int64, error) {
	return int64(len(s.filtered(filter))), nil
}

func (s *fakeVacancyStore) List(filter vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	list := s.filtered(filter)
	from := filter.GetOffset()
	if from < 0 {
		from = 0
	}
	if from > len(list) {
		from = len(list)
	}
	to := from + filter.GetLimit()
	if to > len(list) {
		to = len(list)
	}
	return list[from:to], nil
}

func (s *fakeVacancyStore) AddSkills(id string, skills []dbmodels.Skill) error {
	if s.failAdd {
		return errors.New("db is down")
	}
	idx := s.find(id)
	if idx < 0 {
		return errors.New("запись не найдена")
	}
	s.recs[idx].Skills = append(s.recs[idx].Skills, skills...)
	return nil
}

func (s *fakeVacancyStore) ArchiveByUser(userID string) (int64, error) {
	var count int64
	for idx := range s.recs {
		if s.recs[idx].UserID != nil && *s.recs[idx].UserID == userID {
			s.recs[idx].UserID = nil
			s.recs[idx].IsArchived = true
			count++
		}
	}
	return count, nil
}

func (s *fakeVacancyStore) snapshot() []dbmodels.Vacancy {
	result := make([]dbmodels.Vacancy, 0, len(s.recs))
	for _, rec := range s.recs {
		rec.Skills = append([]dbmodels.Skill{}, rec.Skills...)
		result = append(result, rec)
	}
	return result
}

type testEnv struct {
	handler impl
	vacancy *fakeVacancyStore
	skill   *fakeSkillStore
	users   *fakeUserStore
}

func newTestEnv(perPage int) testEnv {
	users := &fakeUserStore{users: map[string]dbmodels.User{}}
	env := testEnv{
		vacancy: &fakeVacancyStore{users: users},
		skill:   &fakeSkillStore{},
		users:   users,
	}
	env.handler = impl{
		store:     env.vacancy,
		userStore: users,
		inTx: func(fn func(stores txStores) error) error {
			vacancies := env.vacancy.snapshot()
			skills := append([]dbmodels.Skill{}, env.skill.recs...)
			err := fn(txStores{vacancy: env.vacancy, skill: env.skill})
			if err != nil {
				env.vacancy.recs = vacancies
				env.skill.recs = skills
			}
			return err
		},
		rules: vacancyapimodels.ValidationRules{
			SlugMinLength:  3,
			CreatedNotPast: true,
		},
		perPage: perPage,
		now: func() time.Time {
			return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		},
	}
	return env
}

func vacancyData(slug, text string, skills ...string) vacancyapimodels.VacancyData {
	return vacancyapimodels.VacancyData{
		Slug:   slug,
		Text:   text,
		Skills: skills,
	}
}

func listItems(t *testing.T, page apimodels.PageResponse) []vacancyapimodels.VacancyListItem {
	items, ok := page.Items.([]vacancyapimodels.VacancyListItem)
	require.True(t, ok)
	return items
}

func TestVacancyCreate(t *testing.T) {
	t.Run(`create check`, func(t *testing.T) {
		env := newTestEnv(10)
		item, err := env.handler.Create(vacancyData("go-dev", "Go developer", "SQL", "Go", "Go"))
		require.Nil(t, err)
		require.NotEmpty(t, item.ID)
		require.Equal(t, models.VacancyStatusDraft, item.Status)
		require.Equal(t, "2026-10-19", item.Created)
		require.Equal(t, []string{"Go", "SQL"}, item.Skills)
		require.Nil(t, item.Name)
		require.False(t, item.IsArchived)
		require.Len(t, env.skill.recs, 2)
	})

	t.Run(`validation error check`, func(t *testing.T) {
		env := newTestEnv(10)
		_, err := env.handler.Create(vacancyData("ab", "Go developer", "Go"))
		var verr apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Contains(t, verr.Fields, "slug")
		require.Empty(t, env.vacancy.recs)
		require.Empty(t, env.skill.recs)
	})

	t.Run(`unknown owner check`, func(t *testing.T) {
		env := newTestEnv(10)
		data := vacancyData("go-dev", "Go developer")
		userID := uuid.NewString()
		data.UserID = &userID
		_, err := env.handler.Create(data)
		var verr apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, []string{fmt.Sprintf("user instance with id %s does not exist.", userID)}, verr.Fields["user_id"])
		require.Empty(t, env.vacancy.recs)
	})

	t.Run(`owner check`, func(t *testing.T) {
		env := newTestEnv(10)
		userID, _ := env.users.Create(dbmodels.User{Username: "alice"})
		data := vacancyData("go-dev", "Go developer")
		data.UserID = &userID
		item, err := env.handler.Create(data)
		require.Nil(t, err)
		require.Equal(t, &userID, item.UserID)

		page, err := env.handler.List(vacancyapimodels.VacancyFilter{})
		require.Nil(t, err)
		require.Equal(t, "alice", listItems(t, page)[0].Username)
	})

	t.Run(`rollback check`, func(t *testing.T) {
		env := newTestEnv(10)
		env.vacancy.failAdd = true
		_, err := env.handler.Create(vacancyData("go-dev", "Go developer", "Go"))
		require.NotNil(t, err)
		require.Empty(t, env.vacancy.recs)
		require.Empty(t, env.skill.recs)
	})
}

func TestVacancyUpdate(t *testing.T) {
	t.Run(`update check`, func(t *testing.T) {
		env := newTestEnv(10)
		name := "Backend"
		data := vacancyData("go-dev", "Go developer", "Go")
		data.Name = &name
		created, err := env.handler.Create(data)
		require.Nil(t, err)

		upd := vacancyData("go-senior", "Senior Go developer", "SQL", "Go")
		upd.Status = models.VacancyStatusOpen
		item, err := env.handler.Update(created.ID, upd)
		require.Nil(t, err)
		require.Equal(t, "go-senior", item.Slug)
		require.Equal(t, "Senior Go developer", item.Text)
		require.Equal(t, models.VacancyStatusOpen, item.Status)
		require.Equal(t, &name, item.Name)
		require.Equal(t, []string{"Go", "SQL"}, item.Skills)

		// навыки только добавляются
		upd.Skills = []string{"Docker"}
		item, err = env.handler.Update(created.ID, upd)
		require.Nil(t, err)
		require.Equal(t, []string{"Docker", "Go", "SQL"}, item.Skills)
		require.Len(t, env.skill.recs, 3)
	})

	t.Run(`not found check`, func(t *testing.T) {
		env := newTestEnv(10)
		upd := vacancyData("go-dev", "Go developer")
		upd.Status = models.VacancyStatusOpen
		_, err := env.handler.Update(uuid.NewString(), upd)
		var notFound apimodels.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})

	t.Run(`status required check`, func(t *testing.T) {
		env := newTestEnv(10)
		created, err := env.handler.Create(vacancyData("go-dev", "Go developer"))
		require.Nil(t, err)
		_, err = env.handler.Update(created.ID, vacancyData("go-dev", "changed"))
		var verr apimodels.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Contains(t, verr.Fields, "status")

		item, err := env.handler.GetByID(created.ID)
		require.Nil(t, err)
		require.Equal(t, "Go developer", item.Text)
	})
}

func TestVacancyDelete(t *testing.T) {
	t.Run(`delete check`, func(t *testing.T) {
		env := newTestEnv(10)
		created, err := env.handler.Create(vacancyData("go-dev", "Go developer"))
		require.Nil(t, err)
		require.Nil(t, env.handler.Delete(created.ID))

		_, err = env.handler.GetByID(created.ID)
		var notFound apimodels.NotFoundError
		require.True(t, errors.As(err, &notFound))

		err = env.handler.Delete(created.ID)
		require.True(t, errors.As(err, &notFound))
	})

	t.Run(`shared skill check`, func(t *testing.T) {
		env := newTestEnv(10)
		first, err := env.handler.Create(vacancyData("first", "First", "Go"))
		require.Nil(t, err)
		second, err := env.handler.Create(vacancyData("second", "Second", "Go", "SQL"))
		require.Nil(t, err)
		require.Len(t, env.skill.recs, 2)

		require.Nil(t, env.handler.Delete(first.ID))
		item, err := env.handler.GetByID(second.ID)
		require.Nil(t, err)
		require.Equal(t, []string{"Go", "SQL"}, item.Skills)
		require.Len(t, env.skill.recs, 2)
	})
}

func TestVacancyList(t *testing.T) {
	t.Run(`exact text filter check`, func(t *testing.T) {
		env := newTestEnv(10)
		for idx, text := range []string{"Go", "Go developer", "go", "Go"} {
			_, err := env.handler.Create(vacancyData(fmt.Sprintf("slug-%d", idx), text))
			require.Nil(t, err)
		}
		page, err := env.handler.List(vacancyapimodels.VacancyFilter{Text: "Go"})
		require.Nil(t, err)
		require.Equal(t, int64(2), page.Total)
		for _, item := range listItems(t, page) {
			require.Equal(t, "Go", item.Text)
		}

		page, err = env.handler.List(vacancyapimodels.VacancyFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(4), page.Total)
		require.Len(t, listItems(t, page), 4)
	})

	t.Run(`page window check`, func(t *testing.T) {
		env := newTestEnv(2)
		for idx := 0; idx < 5; idx++ {
			_, err := env.handler.Create(vacancyData(fmt.Sprintf("slug-%d", idx), "Go"))
			require.Nil(t, err)
		}
		expected := []int{2, 2, 1, 0, 0}
		for pageNum, count := range expected {
			filter := vacancyapimodels.VacancyFilter{Pagination: apimodels.Pagination{Page: pageNum}}
			page, err := env.handler.List(filter)
			require.Nil(t, err)
			require.Equal(t, int64(5), page.Total)
			require.Equal(t, 2, page.PerPage)
			require.Len(t, listItems(t, page), count, "page %d", pageNum)
		}

		pageNum, err := apimodels.ParsePage("922337203685477581")
		require.Nil(t, err)
		filter := vacancyapimodels.VacancyFilter{Pagination: apimodels.Pagination{Page: pageNum}}
		page, err := env.handler.List(filter)
		require.Nil(t, err)
		require.Equal(t, int64(5), page.Total)
		require.Empty(t, listItems(t, page))
	})

	t.Run(`empty list check`, func(t *testing.T) {
		env := newTestEnv(10)
		page, err := env.handler.List(vacancyapimodels.VacancyFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(0), page.Total)
		require.Empty(t, listItems(t, page))
	})
}

func TestVacancyExportPdf(t *testing.T) {
	t.Run(`pdf check`, func(t *testing.T) {
		env := newTestEnv(10)
		created, err := env.handler.Create(vacancyData("go-dev", "Разработчик Go", "Go"))
		require.Nil(t, err)
		body, err := env.handler.ExportPdf(created.ID)
		require.Nil(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF")))

		_, err = env.handler.ExportPdf(uuid.NewString())
		var notFound apimodels.NotFoundError
		require.True(t, errors.As(err, &notFound))
	})
}
