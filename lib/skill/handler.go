package skillhandler

import (
	"github.com/pkg/errors"
	"vacancies-backend/db"
	skillstore "vacancies-backend/lib/skill/store"
	skillapimodels "vacancies-backend/models/api/skill"
	dbmodels "vacancies-backend/models/db"
)

type Provider interface {
	List() (list []skillapimodels.SkillView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: skillstore.NewInstance(db.DB),
	}
}

type impl struct {
	store skillstore.Provider
}

func (i impl) List() (list []skillapimodels.SkillView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка навыков")
	}
	return skillapimodels.SkillConvert(recList), nil
}

// ResolveSkills сопоставляет запрошенные имена навыков с записями, создавая
// недостающие навыки. Возвращает только навыки, которых еще нет среди attached;
// повторы имен в запросе схлопываются.
func ResolveSkills(store skillstore.Provider, names []string, attached []dbmodels.Skill) ([]dbmodels.Skill, error) {
	seen := make(map[string]bool, len(attached)+len(names))
	attachedIDs := make(map[string]bool, len(attached))
	for _, skill := range attached {
		seen[skill.Name] = true
		attachedIDs[skill.ID] = true
	}
	result := make([]dbmodels.Skill, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		rec, err := store.FindOrCreate(name)
		if err != nil {
			return nil, errors.Wrapf(err, "навык %q", name)
		}
		if attachedIDs[rec.ID] {
			continue
		}
		attachedIDs[rec.ID] = true
		result = append(result, rec)
	}
	return result, nil
}
